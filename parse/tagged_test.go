package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaggedParseFullReply(t *testing.T) {
	p := New()

	parsed := p.Parse(`Some preamble the model added.
<Thought>I should calculate this.</Thought>
<Action>{"tool": "calculator", "parameters": {"expression": "2+2"}}</Action>
Trailing chatter.`)

	require.Len(t, parsed.Thoughts, 1)
	assert.Equal(t, "I should calculate this.", parsed.Thoughts[0])

	require.Len(t, parsed.Actions, 1)
	assert.Equal(t, "calculator", parsed.Actions[0].Tool)
	assert.Equal(t, map[string]any{"expression": "2+2"}, parsed.Actions[0].Parameters)

	assert.False(t, parsed.HasFinalAnswer())
}

func TestTaggedParseMultipleThoughtsInOrder(t *testing.T) {
	p := New()

	parsed := p.Parse(`<Thought>first</Thought>
<Thought>second</Thought>
<Thought>third</Thought>`)

	assert.Equal(t, []string{"first", "second", "third"}, parsed.Thoughts)
}

func TestTaggedParseTrailingCommaNormalized(t *testing.T) {
	p := New()

	parsed := p.Parse(`<Action>{"tool":"x","parameters":{"a":1,}}</Action>`)

	require.Len(t, parsed.Actions, 1)
	assert.Equal(t, "x", parsed.Actions[0].Tool)
	assert.Equal(t, map[string]any{"a": float64(1)}, parsed.Actions[0].Parameters)
}

func TestTaggedParseTrailingCommaInArray(t *testing.T) {
	p := New()

	parsed := p.Parse(`<Action>{"tool":"x","parameters":{"items":[1,2,],}}</Action>`)

	require.Len(t, parsed.Actions, 1)
	assert.Equal(t,
		map[string]any{"items": []any{float64(1), float64(2)}},
		parsed.Actions[0].Parameters,
	)
}

func TestTaggedParseMalformedActionDropped(t *testing.T) {
	p := New()

	t.Run("invalid JSON", func(t *testing.T) {
		parsed := p.Parse(`<Thought>hm</Thought><Action>not json at all</Action>`)
		assert.Empty(t, parsed.Actions)
		assert.Len(t, parsed.Thoughts, 1, "thoughts survive a bad action block")
	})

	t.Run("missing tool key", func(t *testing.T) {
		parsed := p.Parse(`<Action>{"parameters": {"a": 1}}</Action>`)
		assert.Empty(t, parsed.Actions)
	})

	t.Run("one bad block does not drop the good one", func(t *testing.T) {
		parsed := p.Parse(`<Action>{broken</Action><Action>{"tool":"ok"}</Action>`)
		require.Len(t, parsed.Actions, 1)
		assert.Equal(t, "ok", parsed.Actions[0].Tool)
	})
}

func TestTaggedParseOmittedParametersDefaultEmpty(t *testing.T) {
	p := New()

	parsed := p.Parse(`<Action>{"tool": "ping"}</Action>`)

	require.Len(t, parsed.Actions, 1)
	assert.NotNil(t, parsed.Actions[0].Parameters)
	assert.Empty(t, parsed.Actions[0].Parameters)
}

func TestTaggedParseFirstFinalAnswerWins(t *testing.T) {
	p := New()

	parsed := p.Parse(`<FinalAnswer>first</FinalAnswer>
<FinalAnswer>second</FinalAnswer>`)

	assert.Equal(t, "first", parsed.FinalAnswer)
}

func TestTaggedParseEmptyFinalAnswerIsNoAnswer(t *testing.T) {
	p := New()

	parsed := p.Parse(`<FinalAnswer></FinalAnswer>`)

	assert.False(t, parsed.HasFinalAnswer())
}

func TestTaggedParseFinalAnswerAlongsideActions(t *testing.T) {
	p := New()

	parsed := p.Parse(`<Thought>done</Thought>
<Action>{"tool": "calculator", "parameters": {"expression": "2+2"}}</Action>
<FinalAnswer>The answer is 4.</FinalAnswer>`)

	// The parser reports everything; the precedence tie break belongs to
	// the loop.
	assert.Len(t, parsed.Actions, 1)
	assert.Equal(t, "The answer is 4.", parsed.FinalAnswer)
}

func TestTaggedParseCaseInsensitiveTags(t *testing.T) {
	p := New()

	parsed := p.Parse(`<thought>lower</thought><FINALANSWER>shouty</FINALANSWER>`)

	assert.Equal(t, []string{"lower"}, parsed.Thoughts)
	assert.Equal(t, "shouty", parsed.FinalAnswer)
}

func TestTaggedParseBareTextIsEmpty(t *testing.T) {
	p := New()

	parsed := p.Parse("The model just chatted without any tags.")

	assert.True(t, parsed.Empty())
}

func TestTaggedParseMultilineBodiesTrimmed(t *testing.T) {
	p := New()

	parsed := p.Parse(`<Thought>
  spans
  lines
</Thought>`)

	require.Len(t, parsed.Thoughts, 1)
	assert.Equal(t, "spans\n  lines", parsed.Thoughts[0])
}

func TestDecodeYAMLActionBody(t *testing.T) {
	p := NewYAML()

	parsed := p.Parse(`<Action>
tool: search
parameters:
  query: golang
  limit: 3
</Action>`)

	require.Len(t, parsed.Actions, 1)
	assert.Equal(t, "search", parsed.Actions[0].Tool)
	assert.Equal(t, map[string]any{"query": "golang", "limit": 3}, parsed.Actions[0].Parameters)
}

func TestDecodeYAMLMissingToolDropped(t *testing.T) {
	p := NewYAML()

	parsed := p.Parse(`<Action>
parameters:
  query: golang
</Action>`)

	assert.Empty(t, parsed.Actions)
}
