package reactor

// Memory supplies prior conversation messages to a new reasoning call.
// Its messages are inserted after the system prompt and before the user
// task, in the order Messages returns them.
//
// The engine appends the task and the final answer back to memory after a
// successful call. Implementations decide retention (see memory.Buffer and
// memory.SlidingWindow).
type Memory interface {
	Messages() []Message
	Append(messages ...Message)
}
