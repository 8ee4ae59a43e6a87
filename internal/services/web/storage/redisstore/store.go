// Package redisstore keeps session records in Redis with a key TTL matching
// the session expiry.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/leasedesk/leasedesk/internal/services/web/storage"
	"github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces session keys.
const DefaultPrefix = "leasedesk:session"

var _ storage.SessionStore = (*SessionStore)(nil)

// ErrRedisUnavailable wraps transport failures talking to Redis.
var ErrRedisUnavailable = errors.New("redis unavailable")

// SessionStore implements storage.SessionStore over Redis.
type SessionStore struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

// NewSessionStore builds a store on client. An empty prefix uses
// DefaultPrefix.
func NewSessionStore(client *redis.Client, prefix string) *SessionStore {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &SessionStore{client: client, prefix: prefix, now: time.Now}
}

// Dial connects to addr and verifies the server answers PING.
func Dial(ctx context.Context, addr string) (*redis.Client, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, errors.New("redis address is required")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: ping %s: %v", ErrRedisUnavailable, addr, err)
	}
	return client, nil
}

func (s *SessionStore) key(sessionID string) string {
	return s.prefix + ":" + sessionID
}

// PutSession stores the session until its expiry.
func (s *SessionStore) PutSession(ctx context.Context, session storage.Session) error {
	if s == nil || s.client == nil {
		return errors.New("redis session store is not configured")
	}
	session.ID = strings.TrimSpace(session.ID)
	session.UserID = strings.TrimSpace(session.UserID)
	if session.ID == "" {
		return fmt.Errorf("session id is required")
	}
	if session.UserID == "" {
		return fmt.Errorf("session user id is required")
	}
	now := s.now()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	ttl := session.ExpiresAt.Sub(now)
	if ttl <= 0 {
		return fmt.Errorf("session %q is already expired", session.ID)
	}
	session.CreatedAt = session.CreatedAt.UTC()
	session.ExpiresAt = session.ExpiresAt.UTC()

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(session.ID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("%w: put session: %v", ErrRedisUnavailable, err)
	}
	return nil
}

// GetSession loads a live session.
func (s *SessionStore) GetSession(ctx context.Context, sessionID string) (storage.Session, error) {
	if s == nil || s.client == nil {
		return storage.Session{}, errors.New("redis session store is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return storage.Session{}, storage.ErrNotFound
	}
	payload, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return storage.Session{}, storage.ErrNotFound
		}
		return storage.Session{}, fmt.Errorf("%w: get session: %v", ErrRedisUnavailable, err)
	}
	var session storage.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return storage.Session{}, fmt.Errorf("decode session %q: %w", sessionID, err)
	}
	if session.Expired(s.now()) {
		return storage.Session{}, storage.ErrNotFound
	}
	return session, nil
}

// DeleteSession removes the session key. Missing keys are not an error.
func (s *SessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	if s == nil || s.client == nil {
		return errors.New("redis session store is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil
	}
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("%w: delete session: %v", ErrRedisUnavailable, err)
	}
	return nil
}
