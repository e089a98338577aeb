package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/thronelight/platform/internal/domain"
)

const segmentPrefix = "tl:segment:"

// RedisSegmentCache maps narration segment hashes to their stored segment.
type RedisSegmentCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSegmentCache creates a segment cache whose entries live for ttl.
func NewRedisSegmentCache(client *redis.Client, ttl time.Duration) *RedisSegmentCache {
	return &RedisSegmentCache{client: client, ttl: ttl}
}

// Get returns the cached segment for hash. ok is false on a miss.
func (c *RedisSegmentCache) Get(ctx context.Context, hash string) (*domain.AudioSegment, bool, error) {
	raw, err := c.client.Get(ctx, segmentPrefix+hash).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var seg domain.AudioSegment
	if err := json.Unmarshal(raw, &seg); err != nil {
		return nil, false, fmt.Errorf("decode segment %s: %w", hash, err)
	}
	return &seg, true, nil
}

// Set stores seg under its hash.
func (c *RedisSegmentCache) Set(ctx context.Context, seg *domain.AudioSegment) error {
	raw, err := json.Marshal(seg)
	if err != nil {
		return fmt.Errorf("encode segment: %w", err)
	}
	return c.client.Set(ctx, segmentPrefix+seg.Hash, raw, c.ttl).Err()
}

// MemorySegmentCache is the in-process segment cache.
type MemorySegmentCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]memorySegment
}

type memorySegment struct {
	seg       domain.AudioSegment
	expiresAt time.Time
}

// NewMemorySegmentCache creates an empty in-memory segment cache.
func NewMemorySegmentCache(ttl time.Duration) *MemorySegmentCache {
	return &MemorySegmentCache{ttl: ttl, entries: make(map[string]memorySegment)}
}

// Get returns the cached segment for hash.
func (c *MemorySegmentCache) Get(_ context.Context, hash string) (*domain.AudioSegment, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[hash]
	c.mu.RUnlock()
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false, nil
	}
	seg := e.seg
	return &seg, true, nil
}

// Set stores seg under its hash.
func (c *MemorySegmentCache) Set(_ context.Context, seg *domain.AudioSegment) error {
	c.mu.Lock()
	c.entries[seg.Hash] = memorySegment{seg: *seg, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()
	return nil
}
