package llm

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/xiaot623/chatshare/internal/config"
)

// NewGenerator creates a Generator for the configured provider.
// LLM_PROVIDER=mock returns a MockClient.
func NewGenerator(ctx context.Context, cfg config.LLMConfig) (Generator, error) {
	switch cfg.Provider {
	case config.LLMProviderMock:
		log.Warn().Msg("LLM_PROVIDER=mock detected, using mock generation client")
		return NewMockClient(), nil
	case config.LLMProviderOpenAI:
		return NewOpenAIClient(cfg.BaseURL, cfg.APIKey)
	default:
		return NewGeminiClient(ctx, cfg.GoogleAPIKey)
	}
}
