package reactor

// ToolFailurePolicy decides what the loop does when a dispatch fails with
// ToolNotFoundError or ToolExecutionError. The policy is fixed at engine
// construction; it never varies per call.
type ToolFailurePolicy int

const (
	// FailContinue feeds the error text back to the model as an
	// observation so it can self-correct on the next turn. Default.
	FailContinue ToolFailurePolicy = iota

	// FailAbort terminates the loop immediately with StatusFailed.
	FailAbort
)

func (p ToolFailurePolicy) String() string {
	switch p {
	case FailContinue:
		return "continue_with_observation"
	case FailAbort:
		return "abort"
	default:
		return "unknown"
	}
}
