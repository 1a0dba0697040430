package refcache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory implements Cache in process memory with expiring entries
type Memory struct {
	cache *gocache.Cache
}

// NewMemory creates a memory cache with the given default TTL
func NewMemory(defaultTTL time.Duration, cleanupInterval time.Duration) *Memory {
	return &Memory{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a value from the cache
func (m *Memory) Get(key string) (any, bool) {
	return m.cache.Get(key)
}

// Set stores a value with the given TTL; ttl 0 uses the default
func (m *Memory) Set(key string, value any, ttl time.Duration) {
	m.cache.Set(key, value, ttl)
}
