package reactor

import "time"

// Status is the terminal state of a reasoning call.
type Status string

const (
	// StatusPending is the zero value before a terminal status is
	// assigned. A Result returned from Reason never carries it.
	StatusPending Status = "pending"

	// StatusSuccess means a final answer was parsed within the budget.
	StatusSuccess Status = "success"

	// StatusMaxIterations means the iteration budget ran out before a
	// final answer was produced. Soft-terminal, not an error.
	StatusMaxIterations Status = "max_iterations_reached"

	// StatusFailed means the loop aborted on a tool failure under
	// FailAbort policy. Result.Err carries the failure.
	StatusFailed Status = "failed"

	// StatusTimeout is reserved for callers that wrap Reason in their own
	// deadline supervision. The engine itself never produces it.
	StatusTimeout Status = "timeout"
)

// ThoughtRecord is one entry in the reasoning trace. A record is appended
// per parsed thought; when a tool runs, the action and its observation are
// back-filled onto the last record of that iteration.
type ThoughtRecord struct {
	// Step is the 1-based iteration the thought was produced in.
	Step int

	Thought string

	// Action is the tool call dispatched after this thought, if any.
	Action *Action

	// Observation is the tool output (or error text) fed back to the
	// model. Empty when no action ran.
	Observation string
}

// Result is the immutable outcome of one reasoning call. Exactly one
// Result is produced per Reason invocation; it is never mutated after
// construction.
type Result struct {
	// Input is the task the call was started with.
	Input string

	// Thoughts is the full reasoning trace, in order.
	Thoughts []ThoughtRecord

	// FinalAnswer is the model's answer on success, or a fixed
	// explanation string when the iteration budget was exhausted.
	FinalAnswer string

	Status Status

	// Err is set for StatusFailed.
	Err error

	// ExecutionTime is the wall-clock duration of the whole call.
	ExecutionTime time.Duration

	// Stats summarizes model and tool usage during the call.
	Stats Stats
}

// ResultBuilder assembles the terminal Result from the reasoning context.
// Pure assembly: no I/O, no side effects.
type ResultBuilder interface {
	Build(rc *ReasoningContext, finalAnswer string, status Status, err error) *Result
}
