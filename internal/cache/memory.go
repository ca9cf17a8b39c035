package cache

import (
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Stats counts cache lookups
type Stats struct {
	Hits   uint64
	Misses uint64
	Items  int
}

// MemoryCache is a process-local TTL cache for store records.
// Values are copied on the way in and out so callers may reuse their buffers.
type MemoryCache struct {
	cache  *gocache.Cache
	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewMemoryCache creates a memory cache; entries set with ttl 0 expire
// after defaultTTL
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a copy of a cached record
func (c *MemoryCache) Get(key string) ([]byte, bool) {
	val, found := c.cache.Get(key)
	if !found {
		c.misses.Add(1)
		return nil, false
	}
	data, ok := val.([]byte)
	if !ok {
		c.misses.Add(1)
		c.cache.Delete(key)
		return nil, false
	}
	c.hits.Add(1)
	return clone(data), true
}

// Set stores a copy of value; ttl 0 uses the default expiration
func (c *MemoryCache) Set(key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	c.cache.Set(key, clone(value), ttl)
	return nil
}

// Delete removes a record
func (c *MemoryCache) Delete(key string) error {
	c.cache.Delete(key)
	return nil
}

// Clear drops every record and resets the counters
func (c *MemoryCache) Clear() error {
	c.cache.Flush()
	c.hits.Store(0)
	c.misses.Store(0)
	return nil
}

// Stats returns the lookup counters and the number of live records
func (c *MemoryCache) Stats() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Items:  c.cache.ItemCount(),
	}
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
