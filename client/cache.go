package client

import (
	"context"
	"strings"
	"sync"
	"time"
)

// QueryCache stores fetched API responses keyed by resource-prefixed
// query keys. Mutations invalidate a whole resource prefix so the next
// read refetches from the server.
type QueryCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	InvalidatePrefix(ctx context.Context, prefix string) error
	Close() error
}

// cacheEntry represents a stored response with expiration
type cacheEntry struct {
	value     []byte
	expiresAt time.Time
}

// InMemoryQueryCache implements QueryCache using an in-memory map.
// Suitable for single-process clients and testing.
type InMemoryQueryCache struct {
	mu        sync.RWMutex
	entries   map[string]cacheEntry
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryQueryCache creates a new in-memory query cache.
// It starts a background goroutine to clean up expired entries.
func NewInMemoryQueryCache() *InMemoryQueryCache {
	cache := &InMemoryQueryCache{
		entries:  make(map[string]cacheEntry),
		stopChan: make(chan struct{}),
	}

	cache.wg.Add(1)
	go cache.cleanupLoop()

	return cache
}

// Get returns the cached value for key if present and not expired
func (c *InMemoryQueryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, exists := c.entries[key]
	if !exists {
		return nil, false, nil
	}
	if time.Now().After(e.expiresAt) {
		return nil, false, nil
	}
	return e.value, true, nil
}

// Set stores value under key with the given TTL
func (c *InMemoryQueryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// InvalidatePrefix drops every entry whose key starts with prefix
func (c *InMemoryQueryCache) InvalidatePrefix(ctx context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
	return nil
}

// Close stops the cleanup goroutine
func (c *InMemoryQueryCache) Close() error {
	c.closeOnce.Do(func() {
		close(c.stopChan)
	})
	c.wg.Wait()
	return nil
}

// cleanupLoop periodically removes expired entries
func (c *InMemoryQueryCache) cleanupLoop() {
	defer c.wg.Done()

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stopChan:
			return
		}
	}
}

// removeExpired removes all expired entries
func (c *InMemoryQueryCache) removeExpired() {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}

// Ensure InMemoryQueryCache implements QueryCache
var _ QueryCache = (*InMemoryQueryCache)(nil)
