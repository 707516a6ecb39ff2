package tt

import "github.com/reactkit/reactor"

// EventRecorder collects events emitted during a reasoning call.
type EventRecorder struct {
	Events []reactor.Event
}

// NewEventRecorder creates an empty recorder.
func NewEventRecorder() *EventRecorder {
	return &EventRecorder{}
}

// Sink returns an EventSink that appends to the recorder.
func (r *EventRecorder) Sink() reactor.EventSink {
	return func(e reactor.Event) {
		r.Events = append(r.Events, e)
	}
}

// Types returns the recorded event types in order.
func (r *EventRecorder) Types() []reactor.EventType {
	types := make([]reactor.EventType, len(r.Events))
	for i, e := range r.Events {
		types[i] = e.Type
	}
	return types
}

// ContentsOf returns the contents of all events of the given type, in
// order.
func (r *EventRecorder) ContentsOf(typ reactor.EventType) []string {
	var out []string
	for _, e := range r.Events {
		if e.Type == typ {
			out = append(out, e.Content)
		}
	}
	return out
}
