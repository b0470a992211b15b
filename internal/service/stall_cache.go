package service

import (
	"fmt"
	"sync"

	"github.com/tongmap/tong-api/internal/domain"
)

// stallCache is a read-through cache over the visible-stall query,
// keyed by division filter and viewer. The submission workflow is the
// only invalidator, and it invalidates after commit, never before, so
// readers observe either the pre-submission or post-commit snapshot.
type stallCache struct {
	mu      sync.RWMutex
	entries map[string][]domain.Stall
}

func newStallCache() *stallCache {
	return &stallCache{entries: make(map[string][]domain.Stall)}
}

func stallCacheKey(division string, viewerID uint) string {
	if division == "" {
		division = domain.DivisionAll
	}

	return fmt.Sprintf("%s|%d", division, viewerID)
}

func (c *stallCache) get(key string) ([]domain.Stall, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cached, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	out := make([]domain.Stall, len(cached))
	copy(out, cached)

	return out, true
}

func (c *stallCache) set(key string, stalls []domain.Stall) {
	cached := make([]domain.Stall, len(stalls))
	copy(cached, stalls)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cached
}

// invalidate drops every cached collection. Invalidating an already
// empty cache is a no-op, so repeated invalidation is idempotent.
func (c *stallCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string][]domain.Stall)
}
