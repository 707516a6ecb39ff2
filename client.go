package reactor

import "context"

// ModelClient is the transport to a language model. The loop treats any
// error from Chat as fatal and propagates it unchanged; retry and backoff
// belong to the caller, not the core.
type ModelClient interface {
	Chat(ctx context.Context, messages []Message) (*ChatResponse, error)
}

// ChatResponse is one model completion.
type ChatResponse struct {
	// Content is the raw text reply handed to the Parser.
	Content string

	// Info carries normalized usage data when the provider reports it.
	// May be nil.
	Info *GenerationInfo
}

// GenerationInfo holds token usage normalized across providers.
type GenerationInfo struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
