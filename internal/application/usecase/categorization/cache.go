// Package categorization contains the categorization cache and the service
// that answers category suggestions for transaction descriptions.
package categorization

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/finance-tracker/smartfinance/internal/application/adapter"
	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// DefaultTTL is the freshness window of a cache entry.
const DefaultTTL = 30 * 24 * time.Hour

// Cache remembers prior classifications keyed by normalized description.
// Entries older than the TTL read as absent.
type Cache struct {
	mu      sync.RWMutex
	repo    adapter.CategoryCacheRepository
	clock   adapter.Clock
	ttl     time.Duration
	entries map[string]entity.CategoryCacheEntry
}

// NewCache creates an empty Cache. A non-positive ttl falls back to
// DefaultTTL. Call Load before use.
func NewCache(repo adapter.CategoryCacheRepository, clock adapter.Clock, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		repo:    repo,
		clock:   clock,
		ttl:     ttl,
		entries: map[string]entity.CategoryCacheEntry{},
	}
}

// Load replaces the in-memory map with the persisted one.
func (c *Cache) Load(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = c.repo.Load(ctx)
	slog.Info("Categorization cache loaded", "entries", len(c.entries))
}

// Lookup returns the fresh entry for description.
func (c *Cache) Lookup(description string) (entity.CategoryCacheEntry, bool) {
	key := entity.NormalizeDescription(description)
	now := c.clock.Now()

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || !entry.IsFresh(now, c.ttl) {
		return entity.CategoryCacheEntry{}, false
	}
	return entry, true
}

// Store upserts the entry for description stamped with the current time and
// persists the whole map.
func (c *Cache) Store(ctx context.Context, description string, category entity.Category, confidence float64) {
	key := entity.NormalizeDescription(description)
	if key == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entity.CategoryCacheEntry{
		Category:   category,
		Confidence: confidence,
		Timestamp:  c.clock.Now(),
	}
	c.repo.Save(ctx, c.entries)
}

// EvictExpired removes stale entries and returns how many were removed. The
// map is only persisted when something was removed.
func (c *Cache) EvictExpired(ctx context.Context) int {
	now := c.clock.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	evicted := 0
	for key, entry := range c.entries {
		if !entry.IsFresh(now, c.ttl) {
			delete(c.entries, key)
			evicted++
		}
	}
	if evicted > 0 {
		c.repo.Save(ctx, c.entries)
		slog.Info("Expired categorization entries evicted", "count", evicted)
	}
	return evicted
}

// Clear drops every entry.
func (c *Cache) Clear(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = map[string]entity.CategoryCacheEntry{}
	c.repo.Save(ctx, c.entries)
}

// Len returns the number of stored entries, fresh or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
