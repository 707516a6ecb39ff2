package memory

import (
	"sync"

	"github.com/reactkit/reactor"
)

// SlidingWindow keeps only the most recent messages. Older messages are
// discarded on append once the window is full, which bounds the prompt
// size of long-running conversations.
type SlidingWindow struct {
	mu   sync.Mutex
	max  int
	msgs []reactor.Message
}

// NewSlidingWindow creates a window keeping the last max messages.
// max must be at least 1.
func NewSlidingWindow(max int) *SlidingWindow {
	if max < 1 {
		max = 1
	}
	return &SlidingWindow{max: max}
}

// Messages returns a copy of the retained messages, oldest first.
func (w *SlidingWindow) Messages() []reactor.Message {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]reactor.Message, len(w.msgs))
	copy(out, w.msgs)
	return out
}

// Append stores messages, evicting from the front past the window size.
func (w *SlidingWindow) Append(messages ...reactor.Message) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.msgs = append(w.msgs, messages...)
	if len(w.msgs) > w.max {
		// Copy the tail so the evicted prefix can be collected.
		kept := make([]reactor.Message, w.max)
		copy(kept, w.msgs[len(w.msgs)-w.max:])
		w.msgs = kept
	}
}

// Len returns the number of retained messages.
func (w *SlidingWindow) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.msgs)
}

// Compile-time check that SlidingWindow implements reactor.Memory.
var _ reactor.Memory = (*SlidingWindow)(nil)
