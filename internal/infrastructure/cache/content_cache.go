// Package cache provides the in-memory TTL cache that fronts the published
// library listings. Library reads vastly outnumber CMS writes, so published
// scripts and techniques are served from here and invalidated on publish.
package cache

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// entry wraps a cached value with its expiration time
type entry struct {
	value     any
	expiresAt time.Time
}

// ContentCache is a TTL cache keyed by listing name. The clock is injected
// so tests can drive expiry without sleeping.
type ContentCache struct {
	mu     sync.RWMutex
	items  map[string]entry
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger

	hits   int64
	misses int64
}

// ContentCacheOption is a functional option for configuring the cache
type ContentCacheOption func(*ContentCache)

// WithTTL sets the entry lifetime
func WithTTL(ttl time.Duration) ContentCacheOption {
	return func(c *ContentCache) {
		c.ttl = ttl
	}
}

// WithClock sets the time source
func WithClock(now func() time.Time) ContentCacheOption {
	return func(c *ContentCache) {
		c.now = now
	}
}

// WithLogger sets the logger for the cache
func WithLogger(logger *zap.Logger) ContentCacheOption {
	return func(c *ContentCache) {
		c.logger = logger
	}
}

// NewContentCache creates a new content cache
func NewContentCache(opts ...ContentCacheOption) *ContentCache {
	cache := &ContentCache{
		items:  make(map[string]entry),
		ttl:    5 * time.Minute,
		now:    time.Now,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

// Get returns the cached value for a key, or false if absent or expired
func (c *ContentCache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()

	if !ok || c.now().After(e.expiresAt) {
		c.mu.Lock()
		if ok {
			delete(c.items, key)
		}
		c.misses++
		c.mu.Unlock()
		return nil, false
	}

	c.mu.Lock()
	c.hits++
	c.mu.Unlock()
	return e.value, true
}

// Set stores a value under a key for the configured TTL
func (c *ContentCache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = entry{
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Invalidate drops a single key
func (c *ContentCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// InvalidateAll drops every entry. The CMS calls this after any content
// write so athletes never see stale listings longer than one request.
func (c *ContentCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.items) > 0 {
		c.logger.Debug("content cache invalidated", zap.Int("entries", len(c.items)))
	}
	c.items = make(map[string]entry)
}

// Stats returns hit and miss counters
func (c *ContentCache) Stats() (hits, misses int64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
