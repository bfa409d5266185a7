package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/ppiankov/nameparser/internal/model"
)

// MemoryCache implements in-memory expiring caching. Values are copied on
// the way in and out so callers never share alias slices.
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new memory cache
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(key string) (model.ParsedName, bool) {
	if val, found := c.cache.Get(key); found {
		if name, ok := val.(model.ParsedName); ok {
			return name.Clone(), true
		}
	}
	return model.ParsedName{}, false
}

// Set stores a value in the cache with the given TTL; 0 means the default
func (c *MemoryCache) Set(key string, value model.ParsedName, ttl time.Duration) {
	if ttl == 0 {
		ttl = gocache.DefaultExpiration
	}
	c.cache.Set(key, value.Clone(), ttl)
}

// Delete removes a value from the cache
func (c *MemoryCache) Delete(key string) {
	c.cache.Delete(key)
}

// Clear removes all values from the cache
func (c *MemoryCache) Clear() {
	c.cache.Flush()
}

// Len returns the number of cached items, including expired ones not yet
// cleaned up
func (c *MemoryCache) Len() int {
	return c.cache.ItemCount()
}
