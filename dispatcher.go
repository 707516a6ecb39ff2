package reactor

import "context"

// ToolDispatcher resolves a parsed action to a registered tool and runs
// it. Resolution is case-insensitive against each tool's declared name.
//
// Dispatch returns *ToolNotFoundError for unknown tools and
// *ToolExecutionError for anything that goes wrong inside a known tool.
// The dispatcher itself is stateless beyond its registration set, which
// is immutable for the duration of a reasoning call.
type ToolDispatcher interface {
	Dispatch(ctx context.Context, tool string, params map[string]any) (string, error)

	// Tools returns the registered tools in registration order, for the
	// prompt builder's catalog.
	Tools() []Tool
}
