package service

import (
	"context"
	"fmt"

	"github.com/xiaot623/chatshare/internal/domain"
)

// CreateSession starts a session from a config, copying its settings.
// Returns domain.ErrChatConfigNotFound when the config does not exist.
func (s *Service) CreateSession(ctx context.Context, chatConfigID string) (*domain.Session, error) {
	cfg, err := s.configs.GetChatConfig(ctx, chatConfigID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat config: %w", err)
	}
	if cfg == nil {
		return nil, domain.ErrChatConfigNotFound
	}

	now := s.now()
	session := &domain.Session{
		SessionID:    s.newID(),
		ChatConfigID: chatConfigID,
		Title:        cfg.Title,
		Model:        cfg.Model,
		SystemPrompt: cfg.SystemPrompt,
		Temperature:  cfg.Temperature,
		Messages:     []domain.Message{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.sessions.PutSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// UpdateSessionSettings replaces a session's settings, keeping its history,
// timestamps and config back-reference.
func (s *Service) UpdateSessionSettings(ctx context.Context, sessionID string, settings domain.Settings) (*domain.Session, error) {
	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.policyEngine.EvaluateSettings(ctx, settings); err != nil {
		return nil, err
	}

	session.ApplySettings(settings)
	if err := s.sessions.PutSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	return session, nil
}

func (s *Service) getSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}
