package cache_test

import (
	"testing"
	"time"

	"fleet/internal/adapters/out/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRUCache_SetGet(t *testing.T) {
	c := cache.NewLRUCache(time.Minute)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("key", []string{"a", "b"})

	value, ok := c.Get("key")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, value)
}

func TestLRUCache_Invalidate(t *testing.T) {
	c := cache.NewLRUCache(time.Minute)

	c.Set("key", 42)
	c.Invalidate("key")

	_, ok := c.Get("key")
	assert.False(t, ok)

	// Invalidating an absent key is a no-op.
	c.Invalidate("key")
}

func TestLRUCache_EntriesExpire(t *testing.T) {
	c := cache.NewLRUCache(50 * time.Millisecond)

	c.Set("key", "value")
	time.Sleep(120 * time.Millisecond)

	_, ok := c.Get("key")
	assert.False(t, ok)
}

func TestNewLRUCache_DefaultTTL(t *testing.T) {
	c := cache.NewLRUCache(0)

	c.Set("key", "value")
	_, ok := c.Get("key")
	assert.True(t, ok)
}
