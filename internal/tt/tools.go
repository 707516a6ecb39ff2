package tt

import (
	"context"

	"github.com/reactkit/reactor"
)

// MockTool is a configurable reactor.Tool that records its invocations.
type MockTool struct {
	name        string
	description string
	schema      map[string]any
	result      string
	err         error
	panicValue  any

	// Calls holds the parameters of every Execute invocation.
	Calls []map[string]any
}

// NewMockTool creates a tool that returns "ok" by default.
func NewMockTool(name string) *MockTool {
	return &MockTool{name: name, description: "mock tool " + name, result: "ok"}
}

// WithDescription sets the catalog description.
func (t *MockTool) WithDescription(description string) *MockTool {
	t.description = description
	return t
}

// WithSchema sets the parameter schema.
func (t *MockTool) WithSchema(schema map[string]any) *MockTool {
	t.schema = schema
	return t
}

// WithResult sets the observation Execute returns.
func (t *MockTool) WithResult(result string) *MockTool {
	t.result = result
	return t
}

// WithError makes Execute fail with err.
func (t *MockTool) WithError(err error) *MockTool {
	t.err = err
	return t
}

// WithPanic makes Execute panic with value.
func (t *MockTool) WithPanic(value any) *MockTool {
	t.panicValue = value
	return t
}

// CallCount returns how many times Execute ran.
func (t *MockTool) CallCount() int {
	return len(t.Calls)
}

func (t *MockTool) Name() string                    { return t.name }
func (t *MockTool) Description() string             { return t.description }
func (t *MockTool) ParameterSchema() map[string]any { return t.schema }

func (t *MockTool) Execute(_ context.Context, params map[string]any) (string, error) {
	t.Calls = append(t.Calls, params)
	if t.panicValue != nil {
		panic(t.panicValue)
	}
	if t.err != nil {
		return "", t.err
	}
	return t.result, nil
}

// Compile-time check that MockTool implements reactor.Tool.
var _ reactor.Tool = (*MockTool)(nil)
