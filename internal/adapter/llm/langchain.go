package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"
)

// LangChainClient adapts a langchaingo model to Generator.
type LangChainClient struct {
	model llms.Model
}

// NewLangChainClient wraps an already constructed langchaingo model.
func NewLangChainClient(model llms.Model) *LangChainClient {
	return &LangChainClient{model: model}
}

// NewGeminiClient creates a client for the Google Gemini API.
func NewGeminiClient(ctx context.Context, apiKey string) (*LangChainClient, error) {
	model, err := googleai.New(ctx, googleai.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return NewLangChainClient(model), nil
}

// NewOpenAIClient creates a client for an OpenAI-compatible endpoint such as LiteLLM.
func NewOpenAIClient(baseURL, apiKey string) (*LangChainClient, error) {
	opts := []openai.Option{openai.WithToken(apiKey)}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(strings.TrimSuffix(baseURL, "/")))
	}
	model, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai client: %w", err)
	}
	return NewLangChainClient(model), nil
}

// GenerateContent sends the turns to the model and returns the first choice.
func (c *LangChainClient) GenerateContent(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	messages := make([]llms.MessageContent, 0, len(req.Turns))
	for _, turn := range req.Turns {
		role, err := messageType(turn.Role)
		if err != nil {
			return nil, err
		}
		parts := make([]llms.ContentPart, 0, len(turn.Parts))
		for _, p := range turn.Parts {
			parts = append(parts, llms.TextContent{Text: p})
		}
		messages = append(messages, llms.MessageContent{Role: role, Parts: parts})
	}

	resp, err := c.model.GenerateContent(ctx, messages,
		llms.WithModel(req.Model),
		llms.WithTemperature(req.Temperature),
		llms.WithMaxTokens(req.MaxOutputTokens),
	)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("generate content: empty response")
	}

	return &GenerateResponse{Text: resp.Choices[0].Content}, nil
}

func messageType(role string) (llms.ChatMessageType, error) {
	switch role {
	case RoleUser:
		return llms.ChatMessageTypeHuman, nil
	case RoleModel:
		return llms.ChatMessageTypeAI, nil
	default:
		return "", fmt.Errorf("unsupported turn role %q", role)
	}
}
