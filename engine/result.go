package engine

import "github.com/reactkit/reactor"

// resultBuilder is the default reactor.ResultBuilder: pure assembly of
// the context's accumulated state plus wall-clock timing.
type resultBuilder struct{}

// NewResultBuilder returns the default result builder.
func NewResultBuilder() reactor.ResultBuilder {
	return resultBuilder{}
}

func (resultBuilder) Build(
	rc *reactor.ReasoningContext,
	finalAnswer string,
	status reactor.Status,
	err error,
) *reactor.Result {
	return &reactor.Result{
		Input:         rc.Task(),
		Thoughts:      rc.Thoughts(),
		FinalAnswer:   finalAnswer,
		Status:        status,
		Err:           err,
		ExecutionTime: rc.Elapsed(),
		Stats:         rc.Stats(),
	}
}
