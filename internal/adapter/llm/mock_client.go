package llm

import (
	"context"
	"fmt"
	"sync"
)

// MockClient is a mock implementation of Generator for testing and local runs.
type MockClient struct {
	mu       sync.Mutex
	requests []GenerateRequest

	// Reply overrides the generated text when non-empty.
	Reply string
	// Err, when set, is returned from every call.
	Err error
}

// NewMockClient creates a new mock generation client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Ensure MockClient implements Generator interface.
var _ Generator = (*MockClient)(nil)

// GenerateContent records the request and returns a canned reply.
func (m *MockClient) GenerateContent(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, cloneRequest(req))
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Reply != "" {
		return &GenerateResponse{Text: m.Reply}, nil
	}
	return &GenerateResponse{Text: m.generateMockResponse(req)}, nil
}

// Requests returns every request received so far.
func (m *MockClient) Requests() []GenerateRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]GenerateRequest(nil), m.requests...)
}

// generateMockResponse echoes the last user turn.
func (m *MockClient) generateMockResponse(req *GenerateRequest) string {
	var lastUserMessage string
	for i := len(req.Turns) - 1; i >= 0; i-- {
		if req.Turns[i].Role == RoleUser && len(req.Turns[i].Parts) > 0 {
			lastUserMessage = req.Turns[i].Parts[0]
			break
		}
	}

	if lastUserMessage == "" {
		return "[MOCK] This is a mock response from the generation client."
	}

	return fmt.Sprintf("[MOCK] Received your message: %q. This is a mock response.", truncate(lastUserMessage, 100))
}

func cloneRequest(req *GenerateRequest) GenerateRequest {
	out := *req
	out.Turns = make([]Turn, len(req.Turns))
	for i, t := range req.Turns {
		out.Turns[i] = Turn{Role: t.Role, Parts: append([]string(nil), t.Parts...)}
	}
	return out
}

// truncate truncates a string to the given length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
