package intel

import (
	"phishsniper/pkg/domain"
	"sync"
	"time"
)

type cacheEntry struct {
	reg       domain.Registration
	ok        bool
	storedAt  time.Time
	expiresAt time.Time
}

// cache is a bounded TTL map keyed by registered domain.
// When full, expired entries are dropped first, then the oldest one.
type cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	max     int
}

func newCache(size int) *cache {
	return &cache{entries: make(map[string]cacheEntry), max: size}
}

func (c *cache) get(key string, now time.Time) (cacheEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return cacheEntry{}, false
	}
	if !now.Before(e.expiresAt) {
		delete(c.entries, key)

		return cacheEntry{}, false
	}

	return e, true
}

func (c *cache) put(key string, e cacheEntry, now time.Time) {
	if c.max <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.max {
		c.evict(now)
	}
	c.entries[key] = e
}

// evict must be called with mu held.
func (c *cache) evict(now time.Time) {
	for k, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, k)
		}
	}
	if len(c.entries) < c.max {
		return
	}

	var (
		oldestKey string
		oldest    time.Time
	)
	for k, e := range c.entries {
		if oldestKey == "" || e.storedAt.Before(oldest) {
			oldestKey, oldest = k, e.storedAt
		}
	}
	delete(c.entries, oldestKey)
}

func (c *cache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
