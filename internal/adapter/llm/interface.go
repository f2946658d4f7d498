// Package llm provides an abstraction for text-generation API clients.
package llm

import "context"

// Turn roles understood by every Generator.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is one role-tagged entry in the conversation sent to the model.
type Turn struct {
	Role  string
	Parts []string
}

// GenerateRequest is a single non-streaming generation call.
type GenerateRequest struct {
	Model           string
	Turns           []Turn
	Temperature     float64
	MaxOutputTokens int
}

// GenerateResponse holds the generated text.
type GenerateResponse struct {
	Text string
}

// Generator defines the interface for text-generation APIs.
type Generator interface {
	// GenerateContent runs the turns through the model and returns its reply.
	GenerateContent(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)
}

// Ensure LangChainClient implements Generator interface.
var _ Generator = (*LangChainClient)(nil)
