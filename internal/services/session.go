package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"grievance-desk/internal/common/cache"
	stderrors "grievance-desk/internal/common/errors"
	"grievance-desk/internal/models"
)

// ErrSessionNotFound is returned when no cached session exists for a token.
var ErrSessionNotFound = errors.New("session not found")

const sessionKeyPrefix = "session:"

// SessionStore is the Redis-backed client-side session cache. Sessions expire
// with the configured TTL; an expired key simply disappears.
type SessionStore struct {
	redis *cache.RedisClient
	ttl   time.Duration
}

func NewSessionStore(redisClient *cache.RedisClient, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &SessionStore{redis: redisClient, ttl: ttl}
}

// Save caches the session under its token.
func (s *SessionStore) Save(ctx context.Context, session *models.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return stderrors.NewSessionStoreFailedError(err)
	}
	if err := s.redis.Set(ctx, sessionKeyPrefix+session.Token, payload, s.ttl); err != nil {
		return stderrors.NewSessionStoreFailedError(err)
	}
	return nil
}

// Get loads the cached session for a token. Missing or expired keys return
// ErrSessionNotFound, never a stale session.
func (s *SessionStore) Get(ctx context.Context, token string) (*models.Session, error) {
	raw, err := s.redis.Get(ctx, sessionKeyPrefix+token)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, stderrors.NewSessionStoreFailedError(err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, stderrors.NewSessionStoreFailedError(err)
	}
	if session.IsExpired() {
		_ = s.Delete(ctx, token)
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

// Delete removes the cached session for a token.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.redis.Del(ctx, sessionKeyPrefix+token); err != nil {
		return stderrors.NewSessionStoreFailedError(err)
	}
	return nil
}
