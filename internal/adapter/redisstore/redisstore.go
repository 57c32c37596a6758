// Package redisstore implements a Redis-backed session repository.
// Sessions are stored as JSON blobs under a TTL matching their expiry, so
// Redis itself evicts stale sessions.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bankdemo/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "bank:session:"

// SessionRepo implements domain.SessionRepository on Redis.
type SessionRepo struct {
	client *redis.Client
}

// NewSessionRepo creates a session repository on the given client.
func NewSessionRepo(client *redis.Client) *SessionRepo {
	return &SessionRepo{client: client}
}

var _ domain.SessionRepository = (*SessionRepo)(nil)

// Create stores a new session with a TTL running to its expiry.
func (r *SessionRepo) Create(ctx context.Context, s *domain.Session) error {
	return r.set(ctx, s)
}

// GetByToken retrieves a session by token. Returns (nil, nil) when the key
// is absent, which covers both unknown and TTL-evicted tokens.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	data, err := r.client.Get(ctx, keyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

// Save replaces the stored session wholesale, keeping the expiry-aligned TTL.
func (r *SessionRepo) Save(ctx context.Context, s *domain.Session) error {
	return r.set(ctx, s)
}

// Delete deletes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, keyPrefix+token).Err()
}

// DeleteExpired is a no-op; Redis TTLs evict expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	return nil
}

func (r *SessionRepo) set(ctx context.Context, s *domain.Session) error {
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return r.Delete(ctx, s.Token)
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := r.client.Set(ctx, keyPrefix+s.Token, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
