package reactor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReasoningContextMessagesAreCopied(t *testing.T) {
	rc := NewReasoningContext("task", 3)
	rc.AppendMessages(SystemMessage("sys"), UserMessage("task"))

	msgs := rc.Messages()
	msgs[0].Content = "mutated"

	assert.Equal(t, "sys", rc.Messages()[0].Content)
}

func TestReasoningContextThoughtBackfill(t *testing.T) {
	rc := NewReasoningContext("task", 3)
	rc.StartIteration()
	rc.AddThought("first")
	rc.AddThought("second")

	action := &Action{Tool: "calculator", Parameters: map[string]any{}}
	rc.RecordAction(action, "4")

	thoughts := rc.Thoughts()
	require.Len(t, thoughts, 2)
	assert.Nil(t, thoughts[0].Action)
	assert.Equal(t, action, thoughts[1].Action)
	assert.Equal(t, "4", thoughts[1].Observation)
}

func TestReasoningContextBackfillWithoutThoughtsIsNoop(t *testing.T) {
	rc := NewReasoningContext("task", 3)
	rc.StartIteration()

	assert.NotPanics(t, func() {
		rc.RecordAction(&Action{Tool: "x"}, "obs")
	})
	assert.Empty(t, rc.Thoughts())
}

func TestReasoningContextIterationCounter(t *testing.T) {
	rc := NewReasoningContext("task", 2)

	assert.Equal(t, 0, rc.Iteration())
	assert.Equal(t, 1, rc.StartIteration())
	assert.Equal(t, 2, rc.StartIteration())
	assert.Equal(t, 2, rc.Iteration())
}

func TestReasoningContextEmitWithoutSink(t *testing.T) {
	rc := NewReasoningContext("task", 1)

	assert.NotPanics(t, func() {
		rc.Emit(Event{Type: EventThought, Content: "hm"})
	})
}

func TestReasoningContextStats(t *testing.T) {
	rc := NewReasoningContext("task", 5)
	rc.RecordModelCall(&GenerationInfo{InputTokens: 10, OutputTokens: 5, TotalTokens: 15})
	rc.RecordModelCall(nil)
	rc.RecordToolCall()

	stats := rc.Stats()
	assert.Equal(t, 2, stats.ModelCalls)
	assert.Equal(t, 1, stats.ToolCalls)
	assert.Equal(t, 10, stats.InputTokens)
	assert.Equal(t, 5, stats.OutputTokens)
	assert.Equal(t, 15, stats.TotalTokens)
}

func TestActionStringRendersJSON(t *testing.T) {
	a := &Action{Tool: "search", Parameters: map[string]any{"query": "go"}}

	assert.JSONEq(t, `{"tool":"search","parameters":{"query":"go"}}`, a.String())
}

func TestParsedResponseHelpers(t *testing.T) {
	assert.True(t, (&ParsedResponse{}).Empty())
	assert.False(t, (&ParsedResponse{Thoughts: []string{"x"}}).Empty())
	assert.False(t, (&ParsedResponse{}).HasFinalAnswer())
	assert.True(t, (&ParsedResponse{FinalAnswer: "done"}).HasFinalAnswer())
}

func TestToolErrorTypes(t *testing.T) {
	notFound := &ToolNotFoundError{Tool: "ghost"}
	assert.Equal(t, `tool "ghost" is not registered`, notFound.Error())

	wrapped := &ToolExecutionError{Tool: "flaky", Err: assert.AnError}
	assert.Contains(t, wrapped.Error(), "flaky")
	assert.ErrorIs(t, wrapped, assert.AnError)
}
