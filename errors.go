package reactor

import "fmt"

// ToolNotFoundError is returned by a ToolDispatcher when the action names
// a tool that is not registered.
type ToolNotFoundError struct {
	// Tool is the name the model asked for, as written in the action.
	Tool string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("tool %q is not registered", e.Tool)
}

// ToolExecutionError wraps any failure raised while running a registered
// tool, including parameter validation failures and recovered panics. The
// dispatcher never lets an arbitrary error type escape unwrapped.
type ToolExecutionError struct {
	Tool string
	Err  error
}

func (e *ToolExecutionError) Error() string {
	return fmt.Sprintf("tool %q failed: %v", e.Tool, e.Err)
}

func (e *ToolExecutionError) Unwrap() error {
	return e.Err
}
