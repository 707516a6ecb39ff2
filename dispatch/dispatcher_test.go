package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactkit/reactor"
	"github.com/reactkit/reactor/schema"
)

func echoTool() reactor.Tool {
	return reactor.NewToolFunc(
		"echo",
		"Repeats the given text",
		schema.Object(map[string]*schema.Property{
			"text": schema.String("Text to repeat"),
		}, "text"),
		func(_ context.Context, params map[string]any) (string, error) {
			return params["text"].(string), nil
		},
	)
}

func TestDispatchKnownTool(t *testing.T) {
	d := New().RegisterTool(echoTool())

	out, err := d.Dispatch(context.Background(), "echo", map[string]any{"text": "hi"})

	require.NoError(t, err)
	assert.Equal(t, "hi", out)
}

func TestDispatchCaseInsensitiveName(t *testing.T) {
	d := New().RegisterTool(echoTool())

	out, err := d.Dispatch(context.Background(), "ECHO", map[string]any{"text": "hi"})

	require.NoError(t, err)
	assert.Equal(t, "hi", out)
}

func TestDispatchCaseInsensitiveParameterKeys(t *testing.T) {
	d := New().RegisterTool(echoTool())

	out, err := d.Dispatch(context.Background(), "echo", map[string]any{"Text": "hi"})

	require.NoError(t, err)
	assert.Equal(t, "hi", out)
}

func TestDispatchUnknownTool(t *testing.T) {
	d := New().RegisterTool(echoTool())

	_, err := d.Dispatch(context.Background(), "missing", nil)

	var notFound *reactor.ToolNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.Tool)
}

func TestDispatchToolErrorWrapped(t *testing.T) {
	boom := errors.New("backend unavailable")
	d := New().RegisterTool(reactor.NewToolFunc(
		"flaky", "Always fails", nil,
		func(_ context.Context, _ map[string]any) (string, error) {
			return "", boom
		},
	))

	_, err := d.Dispatch(context.Background(), "flaky", nil)

	var execErr *reactor.ToolExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, "flaky", execErr.Tool)
	assert.ErrorIs(t, err, boom)
}

func TestDispatchValidationFailure(t *testing.T) {
	d := New().RegisterTool(echoTool())

	_, err := d.Dispatch(context.Background(), "echo", map[string]any{})

	var execErr *reactor.ToolExecutionError
	require.ErrorAs(t, err, &execErr)
	var verr *schema.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestDispatchRecoversPanic(t *testing.T) {
	d := New().RegisterTool(reactor.NewToolFunc(
		"panicky", "Panics", nil,
		func(_ context.Context, _ map[string]any) (string, error) {
			panic("tool went sideways")
		},
	))

	out, err := d.Dispatch(context.Background(), "panicky", nil)

	assert.Empty(t, out)
	var execErr *reactor.ToolExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Contains(t, execErr.Error(), "tool went sideways")
}

func TestToolsReturnsRegistrationOrder(t *testing.T) {
	a := reactor.NewToolFunc("alpha", "a", nil, func(_ context.Context, _ map[string]any) (string, error) { return "", nil })
	b := reactor.NewToolFunc("beta", "b", nil, func(_ context.Context, _ map[string]any) (string, error) { return "", nil })
	c := reactor.NewToolFunc("gamma", "c", nil, func(_ context.Context, _ map[string]any) (string, error) { return "", nil })

	d := New().RegisterTool(c).RegisterTool(a).RegisterTool(b)

	tools := d.Tools()
	require.Len(t, tools, 3)
	assert.Equal(t, "gamma", tools[0].Name())
	assert.Equal(t, "alpha", tools[1].Name())
	assert.Equal(t, "beta", tools[2].Name())
}

func TestRegisterToolReplacesSameName(t *testing.T) {
	first := reactor.NewToolFunc("dup", "first", nil, func(_ context.Context, _ map[string]any) (string, error) { return "first", nil })
	second := reactor.NewToolFunc("DUP", "second", nil, func(_ context.Context, _ map[string]any) (string, error) { return "second", nil })

	d := New().RegisterTool(first).RegisterTool(second)

	require.Len(t, d.Tools(), 1)
	out, err := d.Dispatch(context.Background(), "dup", nil)
	require.NoError(t, err)
	assert.Equal(t, "second", out)
}
