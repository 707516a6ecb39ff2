package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacyParseLineFormatAction(t *testing.T) {
	p := NewLegacy()

	parsed := p.Parse(`<Thought>old transcript</Thought>
<Action>
Tool: calculator
Parameters: {"expression": "2+2"}
</Action>`)

	require.Len(t, parsed.Actions, 1)
	assert.Equal(t, "calculator", parsed.Actions[0].Tool)
	assert.Equal(t, map[string]any{"expression": "2+2"}, parsed.Actions[0].Parameters)
	assert.Equal(t, []string{"old transcript"}, parsed.Thoughts)
}

func TestLegacyParseFinalAnswerTag(t *testing.T) {
	p := NewLegacy()

	parsed := p.Parse(`<Final_Answer>forty-two</Final_Answer>`)

	assert.Equal(t, "forty-two", parsed.FinalAnswer)
}

func TestLegacyParseKeysCaseInsensitive(t *testing.T) {
	p := NewLegacy()

	parsed := p.Parse(`<Action>
tool: lookup
PARAMETERS: {"id": 7}
</Action>`)

	require.Len(t, parsed.Actions, 1)
	assert.Equal(t, "lookup", parsed.Actions[0].Tool)
	assert.Equal(t, map[string]any{"id": float64(7)}, parsed.Actions[0].Parameters)
}

func TestLegacyParseMissingToolLineDropped(t *testing.T) {
	p := NewLegacy()

	parsed := p.Parse(`<Action>
Parameters: {"id": 7}
</Action>`)

	assert.Empty(t, parsed.Actions)
}

func TestLegacyParseParametersOptional(t *testing.T) {
	p := NewLegacy()

	parsed := p.Parse(`<Action>
Tool: ping
</Action>`)

	require.Len(t, parsed.Actions, 1)
	assert.NotNil(t, parsed.Actions[0].Parameters)
	assert.Empty(t, parsed.Actions[0].Parameters)
}

func TestLegacyParseIgnoresCanonicalFinalAnswerTag(t *testing.T) {
	p := NewLegacy()

	parsed := p.Parse(`<FinalAnswer>wrong tag for this format</FinalAnswer>`)

	assert.False(t, parsed.HasFinalAnswer())
}
