package parse

import (
	"regexp"
	"strings"

	"github.com/reactkit/reactor"
)

// Legacy parses the older wire format still found in stored transcripts:
// action bodies are "Tool:" / "Parameters:" lines instead of a JSON
// object, and the final answer tag is <Final_Answer>.
//
//	<Action>
//	Tool: calculator
//	Parameters: {"expression": "2+2"}
//	</Action>
//	<Final_Answer>4</Final_Answer>
//
// Nothing in this module produces the legacy format; use it only to
// replay old conversations.
type Legacy struct{}

var legacyFinalRe = regexp.MustCompile(`(?si)<Final_Answer>(.*?)</Final_Answer>`)

// NewLegacy creates a parser for the legacy wire format.
func NewLegacy() *Legacy {
	return &Legacy{}
}

// Parse extracts thoughts, line-format actions, and the first
// <Final_Answer> from text. Same failure policy as the canonical parser:
// malformed blocks are dropped, nothing is fatal.
func (l *Legacy) Parse(text string) *reactor.ParsedResponse {
	parsed := &reactor.ParsedResponse{}

	for _, m := range thoughtRe.FindAllStringSubmatch(text, -1) {
		parsed.Thoughts = append(parsed.Thoughts, strings.TrimSpace(m[1]))
	}

	for _, m := range actionRe.FindAllStringSubmatch(text, -1) {
		action, err := decodeLegacyBody(strings.TrimSpace(m[1]))
		if err != nil {
			continue
		}
		parsed.Actions = append(parsed.Actions, action)
	}

	if m := legacyFinalRe.FindStringSubmatch(text); m != nil {
		parsed.FinalAnswer = strings.TrimSpace(m[1])
	}

	return parsed
}

// decodeLegacyBody reads "Tool: name" and an optional "Parameters:" line
// whose remainder is a JSON object. Key matching is case-insensitive.
func decodeLegacyBody(body string) (*reactor.Action, error) {
	var tool string
	params := map[string]any{}

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)

		switch {
		case strings.HasPrefix(lower, "tool:"):
			tool = strings.TrimSpace(trimmed[len("tool:"):])
		case strings.HasPrefix(lower, "parameters:"):
			rest := strings.TrimSpace(trimmed[len("parameters:"):])
			if rest == "" {
				continue
			}
			decoded, err := DecodeJSON(`{"tool": "_", "parameters": ` + rest + `}`)
			if err != nil {
				return nil, err
			}
			params = decoded.Parameters
		}
	}

	if tool == "" {
		return nil, ErrMissingToolName
	}

	return &reactor.Action{Tool: tool, Parameters: params}, nil
}

// Compile-time check that Legacy implements reactor.Parser.
var _ reactor.Parser = (*Legacy)(nil)
