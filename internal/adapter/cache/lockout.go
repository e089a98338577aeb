package cache

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/thronelight/platform/internal/domain"
)

const lockoutPrefix = "tl:lockout:"

// RedisLockoutStore keeps failed-login tallies in Redis hashes.
type RedisLockoutStore struct {
	client *redis.Client
}

// NewRedisLockoutStore creates a lockout store backed by client.
func NewRedisLockoutStore(client *redis.Client) *RedisLockoutStore {
	return &RedisLockoutStore{client: client}
}

// Get returns the current state for key. Unknown keys are unlocked.
func (s *RedisLockoutStore) Get(ctx context.Context, key string) (domain.LockoutState, error) {
	data, err := s.client.HGetAll(ctx, lockoutPrefix+key).Result()
	if err != nil {
		return domain.LockoutState{}, err
	}

	state := domain.LockoutState{}
	if raw, ok := data["failed_count"]; ok {
		if n, convErr := strconv.Atoi(raw); convErr == nil {
			state.FailedCount = n
		}
	}
	if raw, ok := data["locked_until"]; ok && raw != "" {
		if unix, convErr := strconv.ParseInt(raw, 10, 64); convErr == nil && unix > 0 {
			t := time.Unix(unix, 0).UTC()
			state.LockedUntil = &t
		}
	}
	return state, nil
}

// RecordFailure counts a failed attempt and locks the key for window once
// threshold failures accumulate.
func (s *RedisLockoutStore) RecordFailure(ctx context.Context, key string, now time.Time, threshold int, window time.Duration) (domain.LockoutState, error) {
	redisKey := lockoutPrefix + key

	var incr *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		incr = p.HIncrBy(ctx, redisKey, "failed_count", 1)
		p.Expire(ctx, redisKey, window)
		return nil
	})
	if err != nil {
		return domain.LockoutState{}, fmt.Errorf("record failure: %w", err)
	}

	count := incr.Val()
	state := domain.LockoutState{FailedCount: int(count)}
	if int(count) < threshold {
		return state, nil
	}

	lockedUntil := now.Add(window).UTC().Truncate(time.Second)
	_, err = s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, redisKey, "locked_until", lockedUntil.Unix())
		p.Expire(ctx, redisKey, window)
		return nil
	})
	if err != nil {
		return domain.LockoutState{}, err
	}
	state.LockedUntil = &lockedUntil
	return state, nil
}

// Clear forgets every failure recorded for key.
func (s *RedisLockoutStore) Clear(ctx context.Context, key string) error {
	return s.client.Del(ctx, lockoutPrefix+key).Err()
}

// MemoryLockoutStore is the process-local lockout store used when Redis is
// not configured.
type MemoryLockoutStore struct {
	mu      sync.Mutex
	entries map[string]memoryLockout
}

type memoryLockout struct {
	state     domain.LockoutState
	expiresAt time.Time
}

// NewMemoryLockoutStore creates an empty in-memory lockout store.
func NewMemoryLockoutStore() *MemoryLockoutStore {
	return &MemoryLockoutStore{entries: make(map[string]memoryLockout)}
}

// Get returns the current state for key.
func (s *MemoryLockoutStore) Get(_ context.Context, key string) (domain.LockoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || time.Now().After(e.expiresAt) {
		delete(s.entries, key)
		return domain.LockoutState{}, nil
	}
	return e.state, nil
}

// RecordFailure counts a failed attempt, locking the key at threshold.
func (s *MemoryLockoutStore) RecordFailure(_ context.Context, key string, now time.Time, threshold int, window time.Duration) (domain.LockoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || now.After(e.expiresAt) {
		e = memoryLockout{}
	}
	e.state.FailedCount++
	e.expiresAt = now.Add(window)
	if e.state.FailedCount >= threshold {
		lockedUntil := now.Add(window).UTC()
		e.state.LockedUntil = &lockedUntil
	}
	s.entries[key] = e
	return e.state, nil
}

// Clear forgets key.
func (s *MemoryLockoutStore) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}
