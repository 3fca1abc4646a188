// ABOUTME: In-memory TTL cache for generated LLM text
// ABOUTME: Thread-safe map with a background sweep for expired entries

package cache

import (
	"log/slog"
	"sync"
	"time"
)

type entry struct {
	text      string
	expiresAt time.Time
}

// Cache stores generated text keyed by request identity. Entries expire
// after the configured TTL.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
}

// New creates a cache with the given default TTL and starts the sweeper.
func New(ttl time.Duration) *Cache {
	c := &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
	go c.sweep()
	return c
}

// Get returns the cached text for key, if present and not expired.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		slog.Debug("Cache miss", "key", key)
		return "", false
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		slog.Debug("Cache expired", "key", key)
		return "", false
	}

	slog.Debug("Cache hit", "key", key)
	return e.text, true
}

// Set stores text under key with the default TTL.
func (c *Cache) Set(key, text string) {
	c.mu.Lock()
	c.entries[key] = entry{text: text, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()
	slog.Debug("Cache set", "key", key, "ttl", c.ttl)
}

// Clear removes a single entry.
func (c *Cache) Clear(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// sweep removes expired entries once a minute.
func (c *Cache) sweep() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		c.mu.Lock()
		for key, e := range c.entries {
			if now.After(e.expiresAt) {
				delete(c.entries, key)
			}
		}
		c.mu.Unlock()
	}
}
