package reactor

import "encoding/json"

// Action is a single tool invocation request parsed from a model reply.
type Action struct {
	Tool       string
	Parameters map[string]any
}

// String renders the action as a single-line JSON object, the same shape
// the model is instructed to emit inside <Action> tags.
func (a *Action) String() string {
	b, err := json.Marshal(map[string]any{
		"tool":       a.Tool,
		"parameters": a.Parameters,
	})
	if err != nil {
		return a.Tool
	}
	return string(b)
}

// ParsedResponse is the transient result of parsing one raw model reply.
// It is derived fresh each iteration and never persisted.
type ParsedResponse struct {
	// Thoughts holds the bodies of all <Thought> tags, in order, trimmed.
	Thoughts []string

	// Actions holds every well-formed action block. The loop only
	// dispatches the first one; the rest are ignored.
	Actions []*Action

	// FinalAnswer is the trimmed body of the first final-answer tag, or
	// empty when the reply contains none. An empty tag body counts as no
	// final answer.
	FinalAnswer string
}

// HasFinalAnswer reports whether the reply terminates the loop.
func (p *ParsedResponse) HasFinalAnswer() bool {
	return p.FinalAnswer != ""
}

// Empty reports whether the reply contained no actionable content at all.
func (p *ParsedResponse) Empty() bool {
	return len(p.Thoughts) == 0 && len(p.Actions) == 0 && !p.HasFinalAnswer()
}

// Parser extracts structured directives from raw model text.
//
// Implementations must never fail: malformed input degrades to an empty
// ParsedResponse, which the loop treats as "no actionable content" and
// answers with a corrective reminder.
type Parser interface {
	Parse(text string) *ParsedResponse
}
