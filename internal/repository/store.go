// Package repository persists chat configs and sessions.
package repository

import (
	"context"

	"github.com/xiaot623/chatshare/internal/domain"
)

// SessionStore defines the interface for session persistence.
// Every write is a full overwrite of the session document.
type SessionStore interface {
	// GetSession returns nil, nil when the session does not exist.
	GetSession(ctx context.Context, sessionID string) (*domain.Session, error)
	PutSession(ctx context.Context, session *domain.Session) error

	// Lifecycle
	Close() error
}

var (
	_ SessionStore = (*SQLiteStore)(nil)
	_ SessionStore = (*RedisStore)(nil)
	_ SessionStore = (*DynamoDBStore)(nil)
)
