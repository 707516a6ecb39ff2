package reactor

import "context"

// Tool is a named capability the model can invoke through an <Action>.
//
// Tools receive the parameters parsed from the action body and return a
// string observation for the model. Implementations own any side effects;
// the dispatcher only resolves, validates, and invokes.
type Tool interface {
	// Name returns the identifier the model uses to call this tool.
	// Matching against action names is case-insensitive.
	Name() string

	// Description is rendered into the system prompt's tool catalog.
	Description() string

	// ParameterSchema returns the JSON Schema for the tool's parameters
	// as a raw map, or nil if the tool takes none.
	ParameterSchema() map[string]any

	// Execute runs the tool. The returned string is fed back to the model
	// as an observation. Errors are wrapped by the dispatcher; tools never
	// need to care about the failure policy.
	Execute(ctx context.Context, params map[string]any) (string, error)
}

// ToolFunc adapts a plain function into a Tool.
type ToolFunc struct {
	name        string
	description string
	schema      map[string]any
	fn          func(ctx context.Context, params map[string]any) (string, error)
}

// NewToolFunc creates a Tool from a function plus its catalog metadata.
//
// Example:
//
//	echo := reactor.NewToolFunc(
//	    "echo",
//	    "Repeats the given text",
//	    schema.Object(map[string]*schema.Property{
//	        "text": schema.String("Text to repeat"),
//	    }, "text"),
//	    func(ctx context.Context, params map[string]any) (string, error) {
//	        return params["text"].(string), nil
//	    },
//	)
func NewToolFunc(
	name, description string,
	schema map[string]any,
	fn func(ctx context.Context, params map[string]any) (string, error),
) *ToolFunc {
	return &ToolFunc{
		name:        name,
		description: description,
		schema:      schema,
		fn:          fn,
	}
}

// Name returns the tool's identifier.
func (t *ToolFunc) Name() string { return t.name }

// Description returns the catalog description.
func (t *ToolFunc) Description() string { return t.description }

// ParameterSchema returns the raw JSON Schema for the parameters.
func (t *ToolFunc) ParameterSchema() map[string]any { return t.schema }

// Execute invokes the wrapped function.
func (t *ToolFunc) Execute(ctx context.Context, params map[string]any) (string, error) {
	return t.fn(ctx, params)
}

// Compile-time check that ToolFunc implements Tool.
var _ Tool = (*ToolFunc)(nil)
