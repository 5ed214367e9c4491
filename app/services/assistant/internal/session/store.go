// Package session keeps the only per-conversation state the assistant has:
// which guided-selection screen is open. Everything else is read fresh per
// message.
package session

import (
	"context"
	"strconv"
	"sync"

	"ScentyAI/app/services/assistant/internal/navigator"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

const screenKeyPrefix = "assistant:screen:"

// Store reads and writes the current screen for one conversation.
type Store interface {
	Screen(ctx context.Context, conversationID string) (navigator.Screen, error)
	SetScreen(ctx context.Context, conversationID string, screen navigator.Screen) error
}

// RedisStore holds screens in redis with a TTL, so an abandoned conversation
// simply expires back to the root menu.
type RedisStore struct {
	rds        *redis.Redis
	ttlSeconds int
}

func NewRedisStore(rds *redis.Redis, ttlSeconds int) *RedisStore {
	return &RedisStore{
		rds:        rds,
		ttlSeconds: ttlSeconds,
	}
}

func (s *RedisStore) Screen(ctx context.Context, conversationID string) (navigator.Screen, error) {
	val, err := s.rds.GetCtx(ctx, screenKeyPrefix+conversationID)
	if err != nil {
		return navigator.ScreenRoot, err
	}
	if val == "" {
		return navigator.ScreenRoot, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return navigator.ScreenRoot, nil
	}
	return navigator.ParseScreen(n), nil
}

func (s *RedisStore) SetScreen(ctx context.Context, conversationID string, screen navigator.Screen) error {
	return s.rds.SetexCtx(ctx, screenKeyPrefix+conversationID, strconv.Itoa(int(screen)), s.ttlSeconds)
}

// MemoryStore is an in-process Store for tests and single-node setups.
type MemoryStore struct {
	mu      sync.Mutex
	screens map[string]navigator.Screen
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{screens: make(map[string]navigator.Screen)}
}

func (s *MemoryStore) Screen(_ context.Context, conversationID string) (navigator.Screen, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screens[conversationID], nil
}

func (s *MemoryStore) SetScreen(_ context.Context, conversationID string, screen navigator.Screen) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screens[conversationID] = screen
	return nil
}
