// Package dispatch resolves parsed actions to registered tools and runs
// them with validated parameters.
package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/reactkit/reactor"
	"github.com/reactkit/reactor/schema"
)

// Dispatcher holds the registered tool set for a reasoning call. The set
// is built up front with RegisterTool and treated as immutable once the
// loop starts; Dispatch itself is stateless and safe to call repeatedly.
type Dispatcher struct {
	tools   map[string]reactor.Tool
	schemas map[string]*schema.Schema
	order   []string
}

// New creates an empty Dispatcher.
func New() *Dispatcher {
	return &Dispatcher{
		tools:   make(map[string]reactor.Tool),
		schemas: make(map[string]*schema.Schema),
	}
}

// RegisterTool adds a tool, compiling its parameter schema once. Panics
// on an invalid schema, which is a programmer error, not model input.
// Registering a second tool under the same name (case-insensitively)
// replaces the first. Returns the dispatcher for chaining.
func (d *Dispatcher) RegisterTool(tool reactor.Tool) *Dispatcher {
	key := strings.ToLower(tool.Name())
	if _, exists := d.tools[key]; !exists {
		d.order = append(d.order, key)
	}
	d.tools[key] = tool
	d.schemas[key] = schema.MustCompile(tool.ParameterSchema())
	return d
}

// Tools returns the registered tools in registration order.
func (d *Dispatcher) Tools() []reactor.Tool {
	out := make([]reactor.Tool, 0, len(d.order))
	for _, key := range d.order {
		out = append(out, d.tools[key])
	}
	return out
}

// Dispatch resolves name case-insensitively, validates params against the
// tool's schema, and runs the tool.
//
// Unknown names return *reactor.ToolNotFoundError. Everything that goes
// wrong past resolution, validation failures, tool errors, and recovered
// panics alike, comes back as *reactor.ToolExecutionError.
func (d *Dispatcher) Dispatch(
	ctx context.Context,
	name string,
	params map[string]any,
) (result string, err error) {
	key := strings.ToLower(strings.TrimSpace(name))
	tool, ok := d.tools[key]
	if !ok {
		return "", &reactor.ToolNotFoundError{Tool: name}
	}

	params = coerceKeys(params, tool.ParameterSchema())

	if verr := d.schemas[key].Validate(params); verr != nil {
		return "", &reactor.ToolExecutionError{Tool: tool.Name(), Err: verr}
	}

	// A panicking tool must not take the loop down with it.
	defer func() {
		if r := recover(); r != nil {
			result = ""
			err = &reactor.ToolExecutionError{
				Tool: tool.Name(),
				Err:  fmt.Errorf("panic: %v", r),
			}
		}
	}()

	result, execErr := tool.Execute(ctx, params)
	if execErr != nil {
		return "", &reactor.ToolExecutionError{Tool: tool.Name(), Err: execErr}
	}
	return result, nil
}

// coerceKeys renames parameter keys that differ from the declared schema
// property spelling only by case, so "Expression" satisfies a tool that
// declared "expression". Keys with no declared counterpart pass through.
func coerceKeys(params map[string]any, raw map[string]any) map[string]any {
	if params == nil {
		return map[string]any{}
	}
	props, _ := raw["properties"].(map[string]any)
	if len(props) == 0 {
		return params
	}

	declared := make(map[string]string, len(props))
	for name := range props {
		declared[strings.ToLower(name)] = name
	}

	out := make(map[string]any, len(params))
	for key, value := range params {
		if canonical, ok := declared[strings.ToLower(key)]; ok {
			out[canonical] = value
		} else {
			out[key] = value
		}
	}
	return out
}

// Compile-time check that Dispatcher implements reactor.ToolDispatcher.
var _ reactor.ToolDispatcher = (*Dispatcher)(nil)
