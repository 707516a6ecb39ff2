// Package schema builds and validates JSON Schemas for tool parameters.
//
// Tools declare their parameters as a raw map[string]any schema, usually
// via the builders here:
//
//	schema.Object(map[string]*schema.Property{
//	    "expression": schema.String("Arithmetic expression to evaluate"),
//	    "precision":  schema.Integer("Decimal places").Min(0).Max(10),
//	}, "expression")
//
// The dispatcher compiles the schema once at registration and validates
// every parsed action's parameters before the tool runs. The prompt
// builder uses Flatten to render the same schema into the tool catalog.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema pairs the raw map form (for prompts and serialization) with a
// compiled validator.
type Schema struct {
	raw      map[string]any
	compiled *jsonschema.Schema
}

// Raw returns the underlying map representation. Nil-safe.
func (s *Schema) Raw() map[string]any {
	if s == nil {
		return nil
	}
	return s.raw
}

// Validate checks params against the compiled schema. A nil Schema
// accepts everything.
func (s *Schema) Validate(params map[string]any) error {
	if s == nil || s.compiled == nil {
		return nil
	}
	if err := s.compiled.Validate(anyMap(params)); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

// anyMap converts to the generic shape the validator expects. Parameters
// come out of encoding/json or yaml.v3 as map[string]any already; this
// covers hand-built test input.
func anyMap(params map[string]any) any {
	if params == nil {
		return map[string]any{}
	}
	return params
}

// ValidationError wraps a validator failure with a stable message prefix.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("parameter validation failed: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Compile turns a raw schema map into a Schema with a compiled validator.
// A nil raw schema compiles to a nil Schema, which accepts everything.
func Compile(raw map[string]any) (*Schema, error) {
	if raw == nil {
		return nil, nil
	}

	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	return &Schema{raw: raw, compiled: compiled}, nil
}

// MustCompile is Compile but panics on error. For schemas declared at
// registration time, where a bad schema is a programmer error.
func MustCompile(raw map[string]any) *Schema {
	s, err := Compile(raw)
	if err != nil {
		panic(err)
	}
	return s
}

// Param is one flattened parameter row for the prompt catalog.
type Param struct {
	Name        string
	Type        string
	Description string
	Required    bool
}

// Flatten converts an object schema's top-level properties into ordered
// Param rows: required parameters first, alphabetical within each group.
// Deterministic so the rendered system prompt is byte-stable.
func Flatten(raw map[string]any) []Param {
	props, _ := raw["properties"].(map[string]any)
	if len(props) == 0 {
		return nil
	}

	required := map[string]bool{}
	if names, ok := raw["required"].([]string); ok {
		for _, n := range names {
			required[n] = true
		}
	} else if names, ok := raw["required"].([]any); ok {
		for _, n := range names {
			if s, ok := n.(string); ok {
				required[s] = true
			}
		}
	}

	params := make([]Param, 0, len(props))
	for name, def := range props {
		p := Param{Name: name, Required: required[name]}
		if m, ok := def.(map[string]any); ok {
			p.Type, _ = m["type"].(string)
			p.Description, _ = m["description"].(string)
		}
		params = append(params, p)
	}

	sort.Slice(params, func(i, j int) bool {
		if params[i].Required != params[j].Required {
			return params[i].Required
		}
		return params[i].Name < params[j].Name
	})

	return params
}
