package auth

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore tracks activity for logged-in sessions. A session that goes
// untouched longer than its TTL is gone, which ends the login even while the
// JWT itself is still within its 8-hour validity.
type SessionStore interface {
	Start(ctx context.Context, sessionID string, ttl time.Duration) error
	// Touch refreshes the sliding window and reports whether the session
	// is still alive.
	Touch(ctx context.Context, sessionID string, ttl time.Duration) (bool, error)
	End(ctx context.Context, sessionID string) error
}

type memorySessionStore struct {
	mu       sync.Mutex
	deadline map[string]time.Time
}

// NewMemorySessionStore builds the in-process fallback store.
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{deadline: make(map[string]time.Time)}
}

func (s *memorySessionStore) Start(_ context.Context, sessionID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deadline[sessionID] = time.Now().Add(ttl)
	return nil
}

func (s *memorySessionStore) Touch(_ context.Context, sessionID string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deadline, ok := s.deadline[sessionID]
	if !ok {
		return false, nil
	}
	if time.Now().After(deadline) {
		delete(s.deadline, sessionID)
		return false, nil
	}
	s.deadline[sessionID] = time.Now().Add(ttl)
	return true, nil
}

func (s *memorySessionStore) End(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.deadline, sessionID)
	return nil
}

const sessionKeyPrefix = "cbos:session:"

type redisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore builds a Redis-backed store so idle logout survives
// process restarts and is shared across instances.
func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client}
}

func (s *redisSessionStore) Start(ctx context.Context, sessionID string, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKeyPrefix+sessionID, "1", ttl).Err()
}

func (s *redisSessionStore) Touch(ctx context.Context, sessionID string, ttl time.Duration) (bool, error) {
	return s.client.Expire(ctx, sessionKeyPrefix+sessionID, ttl).Result()
}

func (s *redisSessionStore) End(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}
