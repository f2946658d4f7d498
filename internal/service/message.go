package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/xiaot623/chatshare/internal/domain"
)

// SendMessage appends a user message, asks the model for a reply and
// persists both. Nothing is stored unless the whole exchange succeeds.
func (s *Service) SendMessage(ctx context.Context, sessionID, content string) (string, error) {
	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return "", err
	}

	session.AppendMessage(domain.RoleUser, content)

	req := buildGenerateRequest(session)
	log.Debug().
		Str("session_id", sessionID).
		Str("model", req.Model).
		Int("turns", len(req.Turns)).
		Msg("generating reply")

	resp, err := s.generator.GenerateContent(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to generate reply: %w", err)
	}

	session.AppendMessage(domain.RoleModel, resp.Text)
	session.UpdatedAt = s.now()

	if err := s.sessions.PutSession(ctx, session); err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}
	return resp.Text, nil
}
