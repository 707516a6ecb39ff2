// Package parse extracts thoughts, actions, and final answers from raw
// model replies.
//
// Parsers in this package never fail. A reply with no recognizable tags
// degrades to an empty ParsedResponse and an action block with a malformed
// body is silently dropped; both keep the loop alive so the model can
// self-correct on the next turn.
package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/reactkit/reactor"
)

// Errors returned by action body decoders. Decoder errors never escape a
// parser; they only decide whether a block is kept or dropped.
var (
	ErrInvalidJSON     = errors.New("action body is not a valid JSON object")
	ErrInvalidYAML     = errors.New("action body is not a valid YAML mapping")
	ErrMissingToolName = errors.New("action body has no tool name")
)

// Tag matching is case-insensitive and non-greedy, tolerant of free text
// around and between tags.
var (
	thoughtRe = regexp.MustCompile(`(?si)<Thought>(.*?)</Thought>`)
	actionRe  = regexp.MustCompile(`(?si)<Action>(.*?)</Action>`)
	finalRe   = regexp.MustCompile(`(?si)<FinalAnswer>(.*?)</FinalAnswer>`)
)

// ActionDecoder turns one <Action> tag body into an Action.
type ActionDecoder func(body string) (*reactor.Action, error)

// Tagged parses the canonical wire format: <Thought>, <Action> with a
// JSON object body, and <FinalAnswer>.
type Tagged struct {
	decode ActionDecoder
}

// New creates a parser for the canonical format with JSON action bodies.
func New() *Tagged {
	return &Tagged{decode: DecodeJSON}
}

// NewYAML creates a parser that reads YAML mappings inside <Action> tags,
// for models that refuse to emit clean JSON. Tag structure is unchanged.
func NewYAML() *Tagged {
	return &Tagged{decode: DecodeYAML}
}

// WithActionDecoder replaces the action body decoder. Returns the parser
// for chaining.
func (t *Tagged) WithActionDecoder(decode ActionDecoder) *Tagged {
	t.decode = decode
	return t
}

// Parse extracts all thoughts, all well-formed actions, and the first
// final answer from text. The three extractions are independent; ordering
// between tags in the reply does not matter.
func (t *Tagged) Parse(text string) *reactor.ParsedResponse {
	parsed := &reactor.ParsedResponse{}

	for _, m := range thoughtRe.FindAllStringSubmatch(text, -1) {
		parsed.Thoughts = append(parsed.Thoughts, strings.TrimSpace(m[1]))
	}

	for _, m := range actionRe.FindAllStringSubmatch(text, -1) {
		action, err := t.decode(strings.TrimSpace(m[1]))
		if err != nil {
			// Malformed action blocks are dropped, not fatal.
			continue
		}
		parsed.Actions = append(parsed.Actions, action)
	}

	if m := finalRe.FindStringSubmatch(text); m != nil {
		parsed.FinalAnswer = strings.TrimSpace(m[1])
	}

	return parsed
}

// Models routinely emit trailing commas; strip them before decoding.
// The replacement is textual and could in principle touch a comma inside
// a string literal, an accepted trade-off for keeping malformed-but-
// obvious action bodies usable.
var trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)

// DecodeJSON parses an action body as a single JSON object with a
// required "tool" string and an optional "parameters" object. Trailing
// commas are normalized away first.
func DecodeJSON(body string) (*reactor.Action, error) {
	normalized := trailingCommaRe.ReplaceAllString(body, "$1")

	var raw struct {
		Tool       string         `json:"tool"`
		Parameters map[string]any `json:"parameters"`
	}
	if err := json.Unmarshal([]byte(normalized), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if strings.TrimSpace(raw.Tool) == "" {
		return nil, ErrMissingToolName
	}
	if raw.Parameters == nil {
		raw.Parameters = map[string]any{}
	}

	return &reactor.Action{Tool: raw.Tool, Parameters: raw.Parameters}, nil
}

// Compile-time check that Tagged implements reactor.Parser.
var _ reactor.Parser = (*Tagged)(nil)
