// Package countcache memoizes COUNT results per filter combination so
// that paging through an unchanged filter set does not re-issue the same
// expensive count query.
//
// Entries are keyed by the canonical query string of the filters+search
// that produced the count (never pagination parameters), so a cached
// value can only ever be served for the exact same filter set. Staleness
// relative to server state is bounded by the TTL; ordering of concurrent
// fetch cycles cannot make a cached count wrong, only stale.
package countcache

import (
	"sync"
	"time"
)

// DefaultTTL bounds how stale a cached count may be.
const DefaultTTL = 5 * time.Minute

type entry struct {
	value    int
	cachedAt time.Time
}

// Cache is an in-memory TTL memoization layer for count queries. There is
// no size bound beyond TTL expiry: the population is limited to the
// distinct filter combinations a session actually exercises. Construct
// one per application instance and share it by reference; tests construct
// isolated instances with their own clocks.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL overrides the default entry lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) { c.ttl = ttl }
}

// WithClock injects a time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// New creates an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[string]entry),
		ttl:     DefaultTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached count for key, or ok=false when absent or
// expired. Every call first sweeps the whole cache of expired entries;
// the O(n) sweep is accepted for its simplicity given the bounded
// population.
func (c *Cache) Get(key string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for k, e := range c.entries {
		if now.Sub(e.cachedAt) >= c.ttl {
			delete(c.entries, k)
		}
	}

	e, ok := c.entries[key]
	if !ok {
		return 0, false
	}
	return e.value, true
}

// Set stores a count for key, unconditionally overwriting.
func (c *Cache) Set(key string, value int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, cachedAt: c.now()}
}

// Clear drops every entry. Called after any write that could change which
// records match existing filters (create, update, delete, import).
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Len reports the number of entries currently held, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
