// Package contentcache provides the read-through cache in front of the
// static, locale-rendered site content. Values are recomputed on miss and
// kept for a fixed TTL; there is no stale-while-revalidate behavior and
// concurrent population of the same key is last-writer-wins (recomputation
// is cheap and idempotent).
package contentcache

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultTTL is the blanket expiry for cached content snapshots.
const DefaultTTL = 24 * time.Hour

// maxEntries bounds the cache; the content key space is small (classes x
// locales), so eviction pressure is not expected in practice.
const maxEntries = 256

// Cache is a namespaced read-through cache with blanket TTL expiry.
type Cache struct {
	lru *expirable.LRU[string, any]
}

// New creates a cache whose entries expire after ttl. A non-positive ttl
// falls back to DefaultTTL.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{lru: expirable.NewLRU[string, any](maxEntries, nil, ttl)}
}

// Key builds the namespaced cache key: content-class prefix, optional
// locale, content name.
func Key(class, locale, name string) string {
	if locale == "" {
		return fmt.Sprintf("content:%s:%s", class, name)
	}
	return fmt.Sprintf("content:%s:%s:%s", class, locale, name)
}

// Remember returns the cached value for key, computing and storing it on
// miss. Compute errors are returned and nothing is cached.
func (c *Cache) Remember(key string, compute func() (any, error)) (any, error) {
	if v, ok := c.lru.Get(key); ok {
		return v, nil
	}
	v, err := compute()
	if err != nil {
		return nil, err
	}
	c.lru.Add(key, v)
	return v, nil
}

// Invalidate removes the given keys. Used after content changes.
func (c *Cache) Invalidate(keys ...string) {
	for _, key := range keys {
		c.lru.Remove(key)
	}
}

// Flush drops every cached entry.
func (c *Cache) Flush() {
	c.lru.Purge()
}

// Len reports the number of live entries. Exposed for tests.
func (c *Cache) Len() int {
	return c.lru.Len()
}
