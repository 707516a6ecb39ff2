package reactor

import (
	"sync"
	"time"
)

// ReasoningContext is the mutable per-call state of one reasoning loop:
// the task, the accumulated message list, the thought trace, the iteration
// counter, and the event sink.
//
// A context is created at the start of one Reason call, exclusively owned
// by that call, and discarded at its end. It must never be shared between
// concurrent calls. The mutex only guards against hooks or sinks reading
// the context from another goroutine; the loop itself is single-threaded.
type ReasoningContext struct {
	mu sync.RWMutex

	task             string
	messages         []Message
	thoughts         []ThoughtRecord
	iteration        int
	maxIterations    int
	thinkingLanguage string
	sink             EventSink
	stats            Stats
	startedAt        time.Time
}

// NewReasoningContext creates the state for one reasoning call.
// maxIterations must be at least 1.
func NewReasoningContext(task string, maxIterations int) *ReasoningContext {
	return &ReasoningContext{
		task:          task,
		maxIterations: maxIterations,
		startedAt:     time.Now(),
	}
}

// SetSink installs the event sink. A nil sink disables event delivery
// without changing control flow.
func (rc *ReasoningContext) SetSink(sink EventSink) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.sink = sink
}

// SetThinkingLanguage records the language the model is directed to
// reason in. Informational; the prompt builder does the actual directing.
func (rc *ReasoningContext) SetThinkingLanguage(lang string) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.thinkingLanguage = lang
}

// Task returns the input task.
func (rc *ReasoningContext) Task() string {
	return rc.task
}

// MaxIterations returns the fixed iteration budget.
func (rc *ReasoningContext) MaxIterations() int {
	return rc.maxIterations
}

// ThinkingLanguage returns the configured reasoning language, or "".
func (rc *ReasoningContext) ThinkingLanguage() string {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return rc.thinkingLanguage
}

// Iteration returns the current 1-based iteration number, or 0 before the
// first StartIteration. It never exceeds MaxIterations.
func (rc *ReasoningContext) Iteration() int {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return rc.iteration
}

// StartIteration advances the iteration counter and returns the new
// iteration number.
func (rc *ReasoningContext) StartIteration() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.iteration++
	return rc.iteration
}

// AppendMessages appends to the conversation. Append-only: messages are
// never removed or rewritten during a call.
func (rc *ReasoningContext) AppendMessages(messages ...Message) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.messages = append(rc.messages, messages...)
}

// Messages returns a copy of the conversation so far.
func (rc *ReasoningContext) Messages() []Message {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	out := make([]Message, len(rc.messages))
	copy(out, rc.messages)
	return out
}

// AddThought appends a ThoughtRecord for a parsed thought, stamped with
// the current iteration.
func (rc *ReasoningContext) AddThought(thought string) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.thoughts = append(rc.thoughts, ThoughtRecord{
		Step:    rc.iteration,
		Thought: thought,
	})
}

// RecordAction back-fills the last ThoughtRecord with the dispatched
// action and its observation. When the reply carried an action but no
// thought there is no record to fill and the call is a no-op; the trace
// only ever holds parsed thoughts.
func (rc *ReasoningContext) RecordAction(action *Action, observation string) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if len(rc.thoughts) == 0 {
		return
	}
	last := &rc.thoughts[len(rc.thoughts)-1]
	last.Action = action
	last.Observation = observation
}

// Thoughts returns a copy of the reasoning trace.
func (rc *ReasoningContext) Thoughts() []ThoughtRecord {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	out := make([]ThoughtRecord, len(rc.thoughts))
	copy(out, rc.thoughts)
	return out
}

// Emit delivers an event to the sink, if one is installed.
func (rc *ReasoningContext) Emit(event Event) {
	rc.mu.RLock()
	sink := rc.sink
	rc.mu.RUnlock()
	if sink != nil {
		sink(event)
	}
}

// RecordModelCall updates usage stats after a model call. info may be nil.
func (rc *ReasoningContext) RecordModelCall(info *GenerationInfo) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.stats.ModelCalls++
	if info != nil {
		rc.stats.InputTokens += info.InputTokens
		rc.stats.OutputTokens += info.OutputTokens
		rc.stats.TotalTokens += info.TotalTokens
	}
}

// RecordToolCall updates usage stats after a tool dispatch.
func (rc *ReasoningContext) RecordToolCall() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.stats.ToolCalls++
}

// Stats returns a snapshot of the usage counters.
func (rc *ReasoningContext) Stats() Stats {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return rc.stats
}

// StartedAt returns when the context was created.
func (rc *ReasoningContext) StartedAt() time.Time {
	return rc.startedAt
}

// Elapsed returns the wall-clock time since the context was created.
func (rc *ReasoningContext) Elapsed() time.Duration {
	return time.Since(rc.startedAt)
}
