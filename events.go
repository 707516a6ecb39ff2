package reactor

// EventType classifies the events emitted while a reasoning call runs.
type EventType string

const (
	// EventThought fires for each <Thought> parsed from a model reply.
	EventThought EventType = "thought"

	// EventAction fires when the loop is about to dispatch a tool call.
	// Content is the action rendered as a single-line JSON object.
	EventAction EventType = "action"

	// EventObservation fires after a tool call succeeds. Content is the
	// tool's string output.
	EventObservation EventType = "observation"

	// EventFinalAnswer fires when a final answer terminates the loop.
	EventFinalAnswer EventType = "final_answer"

	// EventError fires on tool failures and when the iteration budget is
	// exhausted. Errors reported this way are recoverable; fatal transport
	// errors propagate out of Reason instead.
	EventError EventType = "error"
)

// Event is delivered synchronously to the EventSink as the loop runs.
// Events for iteration k are always fully delivered before iteration k+1
// starts, so a sink can reconstruct the exact transcript from event order.
type Event struct {
	Type    EventType
	Content string
}

// EventSink receives events during a reasoning call. A nil sink is valid
// and changes nothing about control flow. The sink is invoked on the
// calling goroutine; slow sinks slow the loop.
type EventSink func(Event)
