package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore holds active session ids backed by Redis. A token is honoured
// only while its key exists; expiry is enforced by the key TTL and revocation
// by deletion, so the client never controls session lifetime.
// Key format: session:<sid>
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Save records a session id for username, expiring after ttl.
func (s *SessionStore) Save(ctx context.Context, sid, username string, ttl time.Duration) error {
	return s.client.Set(ctx, s.key(sid), username, ttl).Err()
}

// Exists reports whether the session is still active.
func (s *SessionStore) Exists(ctx context.Context, sid string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(sid)).Result()
	if err != nil {
		return false, fmt.Errorf("session check: %w", err)
	}
	return n > 0, nil
}

// Revoke removes the session. Revoking an unknown session is a no-op.
func (s *SessionStore) Revoke(ctx context.Context, sid string) error {
	return s.client.Del(ctx, s.key(sid)).Err()
}

func (s *SessionStore) key(sid string) string {
	return "session:" + sid
}
