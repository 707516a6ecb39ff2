package parse

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/reactkit/reactor"
)

// DecodeYAML parses an action body as a YAML mapping with a required
// "tool" key and an optional "parameters" mapping.
func DecodeYAML(body string) (*reactor.Action, error) {
	var raw struct {
		Tool       string         `yaml:"tool"`
		Parameters map[string]any `yaml:"parameters"`
	}
	if err := yaml.Unmarshal([]byte(body), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	if strings.TrimSpace(raw.Tool) == "" {
		return nil, ErrMissingToolName
	}
	if raw.Parameters == nil {
		raw.Parameters = map[string]any{}
	}

	return &reactor.Action{Tool: raw.Tool, Parameters: raw.Parameters}, nil
}
