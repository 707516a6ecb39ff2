// Package memory provides conversation memory injected into new
// reasoning calls. Memory messages are inserted between the system
// prompt and the user task, in stored order.
package memory

import (
	"sync"

	"github.com/reactkit/reactor"
)

// Buffer is a flat ordered message list that retains everything.
type Buffer struct {
	mu   sync.Mutex
	msgs []reactor.Message
}

// NewBuffer creates an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Messages returns a copy of the stored messages in insertion order.
func (b *Buffer) Messages() []reactor.Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]reactor.Message, len(b.msgs))
	copy(out, b.msgs)
	return out
}

// Append stores messages at the end of the buffer.
func (b *Buffer) Append(messages ...reactor.Message) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.msgs = append(b.msgs, messages...)
}

// Len returns the number of stored messages.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.msgs)
}

// Clear drops all stored messages.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.msgs = nil
}

// Compile-time check that Buffer implements reactor.Memory.
var _ reactor.Memory = (*Buffer)(nil)
