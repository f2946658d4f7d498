package repository

import (
	"context"
	"encoding/json"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/xiaot623/chatshare/internal/domain"
)

const redisSessionKeyPrefix = "chatshare:session:"

// RedisStore implements SessionStore with one JSON value per session key.
type RedisStore struct {
	redis *redis.Client
}

// NewRedisStore creates a store over an existing client.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{redis: rdb}
}

func redisSessionKey(sessionID string) string {
	return redisSessionKeyPrefix + sessionID
}

// GetSession retrieves a session by ID.
func (s *RedisStore) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	raw, err := s.redis.Get(ctx, redisSessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "redis get session %s", sessionID)
	}

	var record sessionRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, pkgerrors.Wrapf(err, "decode session %s", sessionID)
	}
	return record.toDomain()
}

// PutSession writes the whole session, replacing any previous version.
func (s *RedisStore) PutSession(ctx context.Context, session *domain.Session) error {
	raw, err := json.Marshal(newSessionRecord(session))
	if err != nil {
		return pkgerrors.Wrapf(err, "encode session %s", session.SessionID)
	}
	if err := s.redis.Set(ctx, redisSessionKey(session.SessionID), raw, 0).Err(); err != nil {
		return pkgerrors.Wrapf(err, "redis set session %s", session.SessionID)
	}
	return nil
}

// Close closes the underlying client.
func (s *RedisStore) Close() error {
	return s.redis.Close()
}
