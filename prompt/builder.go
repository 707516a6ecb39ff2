// Package prompt renders the system prompt that opens every reasoning
// call.
package prompt

import (
	"bytes"
	_ "embed"
	"text/template"

	"github.com/reactkit/reactor"
	"github.com/reactkit/reactor/schema"
)

//go:embed system.tmpl
var systemTemplateContent string

// DefaultPreamble is the ReAct framing sentence used when no custom
// instructions are supplied.
const DefaultPreamble = "You are a reasoning agent. You solve tasks by " +
	"thinking step by step, calling tools when you need information or " +
	"computation, and observing their results before deciding what to do next."

// DefaultSystemTemplate renders the system prompt sections in fixed
// order: preamble, tool catalog, iteration-limit warning, thinking-
// language directive, output-format contract. Replace it per builder via
// WithTemplate.
var DefaultSystemTemplate = template.Must(
	template.New("system").Parse(systemTemplateContent),
)

// templateData is what the system template is executed against.
type templateData struct {
	Preamble         string
	ScopeNote        bool
	Tools            []toolEntry
	MaxIterations    int
	ThinkingLanguage string
}

type toolEntry struct {
	Name        string
	Description string
	Params      []schema.Param
}

// Builder renders system prompts. A Builder is a pure function of its
// arguments: identical inputs always produce byte-identical prompts.
type Builder struct {
	tmpl *template.Template
}

// New creates a Builder using DefaultSystemTemplate.
func New() *Builder {
	return &Builder{tmpl: DefaultSystemTemplate}
}

// WithTemplate replaces the system template. The template receives the
// same data as the default one. Returns the builder for chaining.
func (b *Builder) WithTemplate(tmpl *template.Template) *Builder {
	b.tmpl = tmpl
	return b
}

// BuildSystemPrompt renders the system prompt. customInstructions, when
// non-empty, replaces the default preamble and is explicitly scoped in
// the rendered text to content within tags, so instructions cannot
// rewrite the tag structure itself. Panics if a replacement template
// fails to execute; the default template cannot fail.
func (b *Builder) BuildSystemPrompt(
	tools []reactor.Tool,
	maxIterations int,
	thinkingLanguage string,
	customInstructions string,
) string {
	data := templateData{
		Preamble:         DefaultPreamble,
		MaxIterations:    maxIterations,
		ThinkingLanguage: thinkingLanguage,
	}
	if customInstructions != "" {
		data.Preamble = customInstructions
		data.ScopeNote = true
	}

	for _, tool := range tools {
		data.Tools = append(data.Tools, toolEntry{
			Name:        tool.Name(),
			Description: tool.Description(),
			Params:      schema.Flatten(tool.ParameterSchema()),
		})
	}

	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, data); err != nil {
		panic(err)
	}
	return buf.String()
}

// Compile-time check that Builder implements reactor.PromptBuilder.
var _ reactor.PromptBuilder = (*Builder)(nil)
