// Package arith provides a small end-to-end fixture: a working
// calculator tool set wired into a fully assembled engine, used by the
// scenario tests and the interactive CLI harness.
package arith

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/reactkit/reactor"
	"github.com/reactkit/reactor/schema"
)

var exprRe = regexp.MustCompile(
	`^\s*(-?\d+(?:\.\d+)?)\s*([-+*/])\s*(-?\d+(?:\.\d+)?)\s*$`,
)

// Eval evaluates a binary arithmetic expression like "2+2" or "3.5 * 4".
func Eval(expr string) (string, error) {
	m := exprRe.FindStringSubmatch(expr)
	if m == nil {
		return "", fmt.Errorf("unsupported expression %q; expected <number> <op> <number>", expr)
	}

	left, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return "", err
	}
	right, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return "", err
	}

	var value float64
	switch m[2] {
	case "+":
		value = left + right
	case "-":
		value = left - right
	case "*":
		value = left * right
	case "/":
		if right == 0 {
			return "", fmt.Errorf("division by zero in %q", expr)
		}
		value = left / right
	}

	if value == math.Trunc(value) && math.Abs(value) < 1e15 {
		return strconv.FormatInt(int64(value), 10), nil
	}
	return strconv.FormatFloat(value, 'f', -1, 64), nil
}

// NewCalculatorTool returns a tool evaluating binary arithmetic
// expressions.
func NewCalculatorTool() reactor.Tool {
	return reactor.NewToolFunc(
		"calculator",
		"Evaluates a simple arithmetic expression with one operator, e.g. \"2+2\" or \"10 / 4\"",
		schema.Object(map[string]*schema.Property{
			"expression": schema.String("The expression to evaluate"),
		}, "expression"),
		func(_ context.Context, params map[string]any) (string, error) {
			expr, _ := params["expression"].(string)
			return Eval(expr)
		},
	)
}

// NewUppercaseTool returns a trivial second tool so scenarios can cover
// multi-tool catalogs and tool selection.
func NewUppercaseTool() reactor.Tool {
	return reactor.NewToolFunc(
		"uppercase",
		"Converts text to upper case",
		schema.Object(map[string]*schema.Property{
			"text": schema.String("Text to convert"),
		}, "text"),
		func(_ context.Context, params map[string]any) (string, error) {
			text, _ := params["text"].(string)
			return strings.ToUpper(text), nil
		},
	)
}

// Tools returns the full fixture tool set.
func Tools() []reactor.Tool {
	return []reactor.Tool{NewCalculatorTool(), NewUppercaseTool()}
}
