package oddsfeed

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ResponseCache holds recent feed responses so repeated polls inside the TTL
// do not burn through the provider's request quota.
type ResponseCache struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewResponseCache creates a response cache with the given TTL
func NewResponseCache(ttl time.Duration) *ResponseCache {
	return &ResponseCache{
		cache: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

// Get returns cached games for a key, if present and fresh
func (c *ResponseCache) Get(key string) ([]GameData, bool) {
	if v, found := c.cache.Get(key); found {
		if games, ok := v.([]GameData); ok {
			return games, true
		}
	}
	return nil, false
}

// Set stores games for a key with the configured TTL
func (c *ResponseCache) Set(key string, games []GameData) {
	c.cache.Set(key, games, c.ttl)
}

// Flush removes all cached responses
func (c *ResponseCache) Flush() {
	c.cache.Flush()
}
