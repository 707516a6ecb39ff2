package reactor

import (
	"context"
	"time"
)

// Lifecycle hook interfaces. A hook value registered with hooks.Registry
// can implement any combination of these; it only receives the events for
// the interfaces it implements. Hooks run synchronously on the loop's
// goroutine, in registration order, and cannot alter control flow.

// BeforeReasoningEvent fires once, before the first model call.
type BeforeReasoningEvent struct {
	Task string
}

// AfterReasoningEvent fires once, after the terminal Result is built.
// It does not fire when a transport error aborts the call.
type AfterReasoningEvent struct {
	Result *Result
}

// BeforeIterationEvent fires at the top of each iteration.
type BeforeIterationEvent struct {
	Iteration int
}

// AfterIterationEvent fires after an iteration's events and messages have
// been fully processed.
type AfterIterationEvent struct {
	Iteration int
	Parsed    *ParsedResponse
	Duration  time.Duration
}

// BeforeModelCallEvent fires right before the model client is invoked.
type BeforeModelCallEvent struct {
	Messages []Message
}

// AfterModelCallEvent fires after the model client returns.
type AfterModelCallEvent struct {
	Response *ChatResponse
	Err      error
	Duration time.Duration
}

// BeforeToolCallEvent fires right before a dispatch.
type BeforeToolCallEvent struct {
	Action *Action
}

// AfterToolCallEvent fires after a dispatch returns.
type AfterToolCallEvent struct {
	Action      *Action
	Observation string
	Err         error
	Duration    time.Duration
}

type BeforeReasoningHook interface {
	OnBeforeReasoning(ctx context.Context, rc *ReasoningContext, event BeforeReasoningEvent)
}

type AfterReasoningHook interface {
	OnAfterReasoning(ctx context.Context, rc *ReasoningContext, event AfterReasoningEvent)
}

type BeforeIterationHook interface {
	OnBeforeIteration(ctx context.Context, rc *ReasoningContext, event BeforeIterationEvent)
}

type AfterIterationHook interface {
	OnAfterIteration(ctx context.Context, rc *ReasoningContext, event AfterIterationEvent)
}

type BeforeModelCallHook interface {
	OnBeforeModelCall(ctx context.Context, rc *ReasoningContext, event BeforeModelCallEvent)
}

type AfterModelCallHook interface {
	OnAfterModelCall(ctx context.Context, rc *ReasoningContext, event AfterModelCallEvent)
}

type BeforeToolCallHook interface {
	OnBeforeToolCall(ctx context.Context, rc *ReasoningContext, event BeforeToolCallEvent)
}

type AfterToolCallHook interface {
	OnAfterToolCall(ctx context.Context, rc *ReasoningContext, event AfterToolCallEvent)
}
