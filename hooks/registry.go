// Package hooks dispatches engine lifecycle events to registered hooks.
//
// A hook is any value implementing one or more of the hook interfaces in
// the root package (reactor.BeforeIterationHook, reactor.AfterToolCallHook,
// and so on). Register it once; it receives exactly the events for the
// interfaces it implements, in registration order.
//
//	registry := hooks.NewRegistry().
//	    Register(&LoggingHook{}).
//	    Register(&MetricsHook{})
//
//	eng := engine.New(client).WithHooks(registry)
//
// Hooks are informational: they cannot alter control flow, and they run
// synchronously on the loop's goroutine. Register everything before the
// first Reason call; Registry is not safe for concurrent mutation.
package hooks

import (
	"context"

	"github.com/reactkit/reactor"
)

// Registry stores hooks and fires events at them.
type Registry struct {
	hooks []any
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a hook. Returns the registry for chaining.
func (r *Registry) Register(hook any) *Registry {
	r.hooks = append(r.hooks, hook)
	return r
}

// Len returns the number of registered hooks.
func (r *Registry) Len() int {
	return len(r.hooks)
}

// FireBeforeReasoning dispatches to all BeforeReasoningHook implementations.
func (r *Registry) FireBeforeReasoning(
	ctx context.Context,
	rc *reactor.ReasoningContext,
	event reactor.BeforeReasoningEvent,
) {
	for _, h := range r.hooks {
		if hook, ok := h.(reactor.BeforeReasoningHook); ok {
			hook.OnBeforeReasoning(ctx, rc, event)
		}
	}
}

// FireAfterReasoning dispatches to all AfterReasoningHook implementations.
func (r *Registry) FireAfterReasoning(
	ctx context.Context,
	rc *reactor.ReasoningContext,
	event reactor.AfterReasoningEvent,
) {
	for _, h := range r.hooks {
		if hook, ok := h.(reactor.AfterReasoningHook); ok {
			hook.OnAfterReasoning(ctx, rc, event)
		}
	}
}

// FireBeforeIteration dispatches to all BeforeIterationHook implementations.
func (r *Registry) FireBeforeIteration(
	ctx context.Context,
	rc *reactor.ReasoningContext,
	event reactor.BeforeIterationEvent,
) {
	for _, h := range r.hooks {
		if hook, ok := h.(reactor.BeforeIterationHook); ok {
			hook.OnBeforeIteration(ctx, rc, event)
		}
	}
}

// FireAfterIteration dispatches to all AfterIterationHook implementations.
func (r *Registry) FireAfterIteration(
	ctx context.Context,
	rc *reactor.ReasoningContext,
	event reactor.AfterIterationEvent,
) {
	for _, h := range r.hooks {
		if hook, ok := h.(reactor.AfterIterationHook); ok {
			hook.OnAfterIteration(ctx, rc, event)
		}
	}
}

// FireBeforeModelCall dispatches to all BeforeModelCallHook implementations.
func (r *Registry) FireBeforeModelCall(
	ctx context.Context,
	rc *reactor.ReasoningContext,
	event reactor.BeforeModelCallEvent,
) {
	for _, h := range r.hooks {
		if hook, ok := h.(reactor.BeforeModelCallHook); ok {
			hook.OnBeforeModelCall(ctx, rc, event)
		}
	}
}

// FireAfterModelCall dispatches to all AfterModelCallHook implementations.
func (r *Registry) FireAfterModelCall(
	ctx context.Context,
	rc *reactor.ReasoningContext,
	event reactor.AfterModelCallEvent,
) {
	for _, h := range r.hooks {
		if hook, ok := h.(reactor.AfterModelCallHook); ok {
			hook.OnAfterModelCall(ctx, rc, event)
		}
	}
}

// FireBeforeToolCall dispatches to all BeforeToolCallHook implementations.
func (r *Registry) FireBeforeToolCall(
	ctx context.Context,
	rc *reactor.ReasoningContext,
	event reactor.BeforeToolCallEvent,
) {
	for _, h := range r.hooks {
		if hook, ok := h.(reactor.BeforeToolCallHook); ok {
			hook.OnBeforeToolCall(ctx, rc, event)
		}
	}
}

// FireAfterToolCall dispatches to all AfterToolCallHook implementations.
func (r *Registry) FireAfterToolCall(
	ctx context.Context,
	rc *reactor.ReasoningContext,
	event reactor.AfterToolCallEvent,
) {
	for _, h := range r.hooks {
		if hook, ok := h.(reactor.AfterToolCallHook); ok {
			hook.OnAfterToolCall(ctx, rc, event)
		}
	}
}
