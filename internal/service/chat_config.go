package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/xiaot623/chatshare/internal/domain"
)

// CreateChatConfig stores a new config under a generated id.
func (s *Service) CreateChatConfig(ctx context.Context, settings domain.Settings) (*domain.ChatConfig, error) {
	if err := s.policyEngine.EvaluateSettings(ctx, settings); err != nil {
		return nil, err
	}

	cfg := &domain.ChatConfig{
		ChatConfigID: s.newID(),
		Model:        settings.Model,
		SystemPrompt: settings.SystemPrompt,
		Temperature:  settings.Temperature,
		Title:        settings.Title,
	}
	if err := s.configs.PutChatConfig(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to store chat config: %w", err)
	}
	return cfg, nil
}

// GetChatConfig returns domain.ErrChatConfigNotFound when the id is unknown.
func (s *Service) GetChatConfig(ctx context.Context, chatConfigID string) (*domain.ChatConfig, error) {
	cfg, err := s.configs.GetChatConfig(ctx, chatConfigID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat config: %w", err)
	}
	if cfg == nil {
		return nil, domain.ErrChatConfigNotFound
	}
	return cfg, nil
}

// UpdateChatConfig overwrites every field of the config. Unknown ids are created.
func (s *Service) UpdateChatConfig(ctx context.Context, chatConfigID string, settings domain.Settings) (*domain.ChatConfig, error) {
	if err := s.policyEngine.EvaluateSettings(ctx, settings); err != nil {
		return nil, err
	}

	cfg := &domain.ChatConfig{
		ChatConfigID: chatConfigID,
		Model:        settings.Model,
		SystemPrompt: settings.SystemPrompt,
		Temperature:  settings.Temperature,
		Title:        settings.Title,
	}
	if err := s.configs.PutChatConfig(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to update chat config: %w", err)
	}
	return cfg, nil
}

// ShareableURL returns the frontend link for a config.
func (s *Service) ShareableURL(chatConfigID string) string {
	return strings.TrimRight(s.config.FrontendBaseURL, "/") + "/chat/" + chatConfigID
}
