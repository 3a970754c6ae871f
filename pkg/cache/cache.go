// Package cache provides a small TTL cache for upstream response payloads.
package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var ErrCacheMiss = errors.New("cache miss")

type Cache interface {
	Get(key string) ([]byte, error)
	Set(key string, payload []byte) error
	Delete(key string) error
	Clear() error
}

type CacheWithStats interface {
	Cache
	Stats() Stats
}

type Config struct {
	TTL     time.Duration
	MaxSize int
}

// Stats are simple counters for cache behavior.
// These are intended for diagnostics and monitoring.
type Stats struct {
	Hits      int64         `json:"hits"`
	Misses    int64         `json:"misses"`
	Sets      int64         `json:"sets"`
	Deletes   int64         `json:"deletes"`
	Evictions int64         `json:"evictions"`
	Size      int           `json:"size"`
	TTL       time.Duration `json:"ttl"`
}

type Memory struct {
	cache   map[string]*cachedRecord
	mu      sync.RWMutex
	ttl     time.Duration
	maxSize int

	// counters
	hits      int64
	misses    int64
	sets      int64
	deletes   int64
	evictions int64
}

type cachedRecord struct {
	payload  []byte
	cachedAt time.Time
}

var _ CacheWithStats = (*Memory)(nil)

func NewMemory(c Config) *Memory {
	if c.TTL == 0 {
		c.TTL = 5 * time.Minute
	}
	if c.MaxSize == 0 {
		c.MaxSize = 500
	}

	return &Memory{
		cache:   make(map[string]*cachedRecord),
		ttl:     c.TTL,
		maxSize: c.MaxSize,
	}
}

func (c *Memory) Get(key string) ([]byte, error) {
	c.mu.RLock()
	record, exists := c.cache[key]
	c.mu.RUnlock()

	if !exists {
		atomic.AddInt64(&c.misses, 1)
		return nil, ErrCacheMiss
	}

	if time.Since(record.cachedAt) > c.ttl {
		c.mu.Lock()
		delete(c.cache, key)
		c.mu.Unlock()
		atomic.AddInt64(&c.misses, 1)
		return nil, ErrCacheMiss
	}

	atomic.AddInt64(&c.hits, 1)
	return record.payload, nil
}

func (c *Memory) Set(key string, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.cache[key]; !exists && len(c.cache) >= c.maxSize {
		c.evictOldest()
	}

	c.cache[key] = &cachedRecord{payload: payload, cachedAt: time.Now()}
	atomic.AddInt64(&c.sets, 1)
	return nil
}

func (c *Memory) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.cache[key]; exists {
		delete(c.cache, key)
		atomic.AddInt64(&c.deletes, 1)
	}
	return nil
}

func (c *Memory) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache = make(map[string]*cachedRecord)
	return nil
}

func (c *Memory) Stats() Stats {
	c.mu.RLock()
	size := len(c.cache)
	c.mu.RUnlock()

	return Stats{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Sets:      atomic.LoadInt64(&c.sets),
		Deletes:   atomic.LoadInt64(&c.deletes),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      size,
		TTL:       c.ttl,
	}
}

// evictOldest removes the least recently written record.
// Caller must hold the write lock.
func (c *Memory) evictOldest() {
	var oldestKey string
	var oldestAt time.Time

	for key, record := range c.cache {
		if oldestKey == "" || record.cachedAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = record.cachedAt
		}
	}

	if oldestKey != "" {
		delete(c.cache, oldestKey)
		atomic.AddInt64(&c.evictions, 1)
	}
}
