// Package models adapts langchaingo model implementations to the
// reactor.ModelClient interface, normalizing token usage across
// providers.
package models

import (
	"context"
	"errors"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"github.com/reactkit/reactor"
)

// ErrNoChoices is returned when the provider reply carries no choices.
var ErrNoChoices = errors.New("model returned no choices")

// LangChain wraps an llms.Model as a reactor.ModelClient.
//
//	llm, _ := openai.New(openai.WithToken(apiKey))
//	client := models.NewLangChain(llm).WithModelName("gpt-4o-mini")
type LangChain struct {
	model     llms.Model
	modelName string
	options   []llms.CallOption
}

// NewLangChain wraps the given llms.Model.
func NewLangChain(model llms.Model) *LangChain {
	return &LangChain{model: model}
}

// WithModelName overrides the provider's default model for each call.
// Returns the client for chaining.
func (c *LangChain) WithModelName(name string) *LangChain {
	c.modelName = name
	return c
}

// WithCallOptions appends llms call options applied to every call.
// Returns the client for chaining.
func (c *LangChain) WithCallOptions(options ...llms.CallOption) *LangChain {
	c.options = append(c.options, options...)
	return c
}

// Unwrap returns the underlying llms.Model.
func (c *LangChain) Unwrap() llms.Model {
	return c.model
}

// Chat implements reactor.ModelClient. Transport errors are returned
// unchanged for the caller to retry.
func (c *LangChain) Chat(
	ctx context.Context,
	messages []reactor.Message,
) (*reactor.ChatResponse, error) {
	converted := make([]llms.MessageContent, 0, len(messages))
	for _, msg := range messages {
		converted = append(converted, llms.TextParts(convertRole(msg.Role), msg.Content))
	}

	opts := c.options
	if c.modelName != "" {
		opts = append(append([]llms.CallOption{}, opts...), llms.WithModel(c.modelName))
	}

	response, err := c.model.GenerateContent(ctx, converted, opts...)
	if err != nil {
		return nil, err
	}
	if len(response.Choices) == 0 {
		return nil, ErrNoChoices
	}

	choice := response.Choices[0]
	return &reactor.ChatResponse{
		Content: choice.Content,
		Info:    normalizeUsage(choice.GenerationInfo),
	}, nil
}

func convertRole(role reactor.Role) schema.ChatMessageType {
	switch role {
	case reactor.RoleSystem:
		return schema.ChatMessageTypeSystem
	case reactor.RoleAssistant:
		return schema.ChatMessageTypeAI
	default:
		return schema.ChatMessageTypeHuman
	}
}

// normalizeUsage maps provider-specific GenerationInfo keys onto a single
// token accounting. Returns nil when the provider reported nothing.
func normalizeUsage(info map[string]any) *reactor.GenerationInfo {
	if info == nil {
		return nil
	}

	usage := &reactor.GenerationInfo{
		// OpenAI and compatible providers / Anthropic / Bedrock.
		InputTokens: firstInt(info, "PromptTokens", "InputTokens", "input_tokens"),
		OutputTokens: firstInt(info,
			"CompletionTokens", "OutputTokens", "output_tokens"),
		TotalTokens: firstInt(info, "TotalTokens", "total_tokens"),
	}
	if usage.TotalTokens == 0 {
		usage.TotalTokens = usage.InputTokens + usage.OutputTokens
	}
	return usage
}

func firstInt(info map[string]any, keys ...string) int {
	for _, key := range keys {
		if v := intValue(info[key]); v > 0 {
			return v
		}
	}
	return 0
}

func intValue(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float32:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

// Compile-time check that LangChain implements reactor.ModelClient.
var _ reactor.ModelClient = (*LangChain)(nil)
