package helpers

import (
	"context"

	"github.com/xiaot623/chatshare/internal/adapter/objectstore"
	"github.com/xiaot623/chatshare/internal/domain"
	"github.com/xiaot623/chatshare/internal/repository"
)

// FailingObjectStore wraps a Store and returns GetErr or PutErr when set.
type FailingObjectStore struct {
	objectstore.Store
	GetErr error
	PutErr error
}

func (s *FailingObjectStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	return s.Store.Get(ctx, key)
}

func (s *FailingObjectStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if s.PutErr != nil {
		return s.PutErr
	}
	return s.Store.Put(ctx, key, data, contentType)
}

// FailingSessionStore wraps a SessionStore and returns GetErr or PutErr when set.
type FailingSessionStore struct {
	repository.SessionStore
	GetErr error
	PutErr error
}

func (s *FailingSessionStore) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	return s.SessionStore.GetSession(ctx, sessionID)
}

func (s *FailingSessionStore) PutSession(ctx context.Context, session *domain.Session) error {
	if s.PutErr != nil {
		return s.PutErr
	}
	return s.SessionStore.PutSession(ctx, session)
}
