// Package tt holds shared test doubles for engine and integration tests.
package tt

import (
	"context"
	"errors"

	"github.com/reactkit/reactor"
)

// ErrScriptExhausted is returned by MockClient when the test script runs
// out of responses and RepeatLast was not set.
var ErrScriptExhausted = errors.New("mock client: script exhausted")

// MockClient implements reactor.ModelClient with scripted responses.
//
//	client := tt.NewMockClient().
//	    AddResponse(`<Thought>hm</Thought><Action>{"tool":"x"}</Action>`).
//	    AddResponse(`<FinalAnswer>done</FinalAnswer>`)
type MockClient struct {
	responses  []*reactor.ChatResponse
	errors     []error
	callCount  int
	repeatLast bool

	// CapturedMessages stores the message list of every Chat call, for
	// transcript assertions.
	CapturedMessages [][]reactor.Message
}

// NewMockClient creates an empty MockClient. A call past the end of the
// script fails with ErrScriptExhausted, so under-scripted tests fail
// loudly instead of looping.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// AddResponse queues a reply with no usage info.
func (m *MockClient) AddResponse(content string) *MockClient {
	m.responses = append(m.responses, &reactor.ChatResponse{Content: content})
	return m
}

// AddResponseWithUsage queues a reply with token usage.
func (m *MockClient) AddResponseWithUsage(content string, input, output int) *MockClient {
	m.responses = append(m.responses, &reactor.ChatResponse{
		Content: content,
		Info: &reactor.GenerationInfo{
			InputTokens:  input,
			OutputTokens: output,
			TotalTokens:  input + output,
		},
	})
	return m
}

// AddError queues a transport error for the next call.
func (m *MockClient) AddError(err error) *MockClient {
	for len(m.responses) <= len(m.errors) {
		m.responses = append(m.responses, nil)
	}
	m.errors = append(m.errors, err)
	return m
}

// RepeatLast makes the script repeat its final entry forever instead of
// failing when exhausted. For "model never answers" tests.
func (m *MockClient) RepeatLast() *MockClient {
	m.repeatLast = true
	return m
}

// CallCount returns how many times Chat was invoked.
func (m *MockClient) CallCount() int {
	return m.callCount
}

// Chat implements reactor.ModelClient.
func (m *MockClient) Chat(
	_ context.Context,
	messages []reactor.Message,
) (*reactor.ChatResponse, error) {
	idx := m.callCount
	m.callCount++

	captured := make([]reactor.Message, len(messages))
	copy(captured, messages)
	m.CapturedMessages = append(m.CapturedMessages, captured)

	if idx < len(m.errors) && m.errors[idx] != nil {
		return nil, m.errors[idx]
	}
	if idx < len(m.responses) && m.responses[idx] != nil {
		return m.responses[idx], nil
	}
	if m.repeatLast && len(m.responses) > 0 {
		return m.responses[len(m.responses)-1], nil
	}
	return nil, ErrScriptExhausted
}

// Compile-time check that MockClient implements reactor.ModelClient.
var _ reactor.ModelClient = (*MockClient)(nil)
