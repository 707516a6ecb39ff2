package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactkit/reactor"
)

func TestBufferKeepsOrder(t *testing.T) {
	b := NewBuffer()
	b.Append(reactor.UserMessage("one"))
	b.Append(reactor.AssistantMessage("two"), reactor.UserMessage("three"))

	msgs := b.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "one", msgs[0].Content)
	assert.Equal(t, "two", msgs[1].Content)
	assert.Equal(t, "three", msgs[2].Content)
}

func TestBufferMessagesIsACopy(t *testing.T) {
	b := NewBuffer()
	b.Append(reactor.UserMessage("original"))

	msgs := b.Messages()
	msgs[0].Content = "mutated"

	assert.Equal(t, "original", b.Messages()[0].Content)
}

func TestBufferClear(t *testing.T) {
	b := NewBuffer()
	b.Append(reactor.UserMessage("x"))
	b.Clear()

	assert.Zero(t, b.Len())
	assert.Empty(t, b.Messages())
}

func TestSlidingWindowEvictsOldest(t *testing.T) {
	w := NewSlidingWindow(2)
	w.Append(reactor.UserMessage("a"))
	w.Append(reactor.UserMessage("b"))
	w.Append(reactor.UserMessage("c"))

	msgs := w.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "b", msgs[0].Content)
	assert.Equal(t, "c", msgs[1].Content)
}

func TestSlidingWindowBulkAppendLargerThanWindow(t *testing.T) {
	w := NewSlidingWindow(2)
	w.Append(
		reactor.UserMessage("a"),
		reactor.UserMessage("b"),
		reactor.UserMessage("c"),
		reactor.UserMessage("d"),
	)

	msgs := w.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "c", msgs[0].Content)
	assert.Equal(t, "d", msgs[1].Content)
}

func TestSlidingWindowMinimumSize(t *testing.T) {
	w := NewSlidingWindow(0)
	w.Append(reactor.UserMessage("a"), reactor.UserMessage("b"))

	require.Equal(t, 1, w.Len())
	assert.Equal(t, "b", w.Messages()[0].Content)
}
