// Package cache contains the Redis implementation of the session store.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pmendes/taskvault/internal/domain"
	"github.com/pmendes/taskvault/internal/store"
)

// ErrRedisUnavailable wraps connectivity and protocol failures so callers
// can distinguish an unreachable cache from an absent session.
var ErrRedisUnavailable = errors.New("redis unavailable")

// keyPrefix namespaces session entries within the Redis keyspace.
const keyPrefix = "session:"

// RedisSessionStore implements store.SessionStore on a Redis client.
// Entries are JSON user snapshots keyed by the lowercased session token and
// expire via Redis TTL; no in-process state is kept, so a store value can be
// shared freely across requests.
type RedisSessionStore struct {
	redis redis.UniversalClient
}

// NewRedisSessionStore creates a session store backed by the given Redis
// client. The client's lifecycle is managed by the caller.
func NewRedisSessionStore(client redis.UniversalClient) *RedisSessionStore {
	return &RedisSessionStore{redis: client}
}

// Ensure RedisSessionStore implements store.SessionStore
var _ store.SessionStore = (*RedisSessionStore)(nil)

// key normalizes the token so lookups are case-insensitive regardless of how
// the client presents the cookie value.
func (s *RedisSessionStore) key(token string) string {
	return keyPrefix + strings.ToLower(token)
}

// Save implements store.SessionStore.Save
func (s *RedisSessionStore) Save(ctx context.Context, token string, user *domain.User, ttl time.Duration) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session snapshot: %w", err)
	}

	if err := s.redis.Set(ctx, s.key(token), data, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}

	return nil
}

// Get implements store.SessionStore.Get
func (s *RedisSessionStore) Get(ctx context.Context, token string) (*domain.User, error) {
	data, err := s.redis.Get(ctx, s.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, store.ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to decode session snapshot: %w", err)
	}

	return &user, nil
}

// Delete implements store.SessionStore.Delete
func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	if err := s.redis.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}
