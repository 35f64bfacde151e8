// Package cache provides an in-memory implementation of the cache port
// backed by an expirable LRU. Entries fall out on their own after the
// configured TTL; writers drop entries eagerly via Invalidate.
package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultTTL bounds how stale a cached view can get when no write
// invalidates it.
const DefaultTTL = 30 * time.Second

const defaultSize = 128

// LRUCache is a thread-safe in-memory cache with per-entry expiry.
type LRUCache struct {
	lru *expirable.LRU[string, any]
}

// NewLRUCache creates a cache whose entries expire after ttl.
// A non-positive ttl falls back to DefaultTTL.
func NewLRUCache(ttl time.Duration) *LRUCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &LRUCache{
		lru: expirable.NewLRU[string, any](defaultSize, nil, ttl),
	}
}

// Get returns the cached value for key and whether it was present.
func (c *LRUCache) Get(key string) (any, bool) {
	return c.lru.Get(key)
}

// Set stores a value under key, replacing any previous entry.
func (c *LRUCache) Set(key string, value any) {
	c.lru.Add(key, value)
}

// Invalidate removes the entry for key if present.
func (c *LRUCache) Invalidate(key string) {
	c.lru.Remove(key)
}
