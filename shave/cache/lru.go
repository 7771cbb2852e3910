// Package cache implements the LRU result cache (component L) and its
// prometheus-backed hit/miss metrics (component P) that the CostModel
// facade consults before querying a provider.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/shavecost/shavecost/shave"
)

// Cache is the LRU result cache keyed by SHAVEWorkload.Key(). Capacity 0
// disables caching entirely — every lookup is a miss and every store is a
// no-op — rather than rejecting the configuration, matching the facade's
// "skip_cache" escape hatch for a single query.
//
// Reads move the matched entry to the front of the eviction order (a cache
// hit is itself a mutation); Add never overwrites an existing key, since a
// workload's cost is a pure function of its fields and a second insert can
// only be a race, not a legitimate update.
type Cache struct {
	lru *lru.Cache[string, shave.CyclesInterfaceType]
}

// New builds a Cache with room for maxSize entries. maxSize == 0 yields a
// pass-through cache that never stores anything.
func New(maxSize int) *Cache {
	if maxSize <= 0 {
		return &Cache{}
	}
	l, err := lru.New[string, shave.CyclesInterfaceType](maxSize)
	if err != nil {
		return &Cache{}
	}
	return &Cache{lru: l}
}

// Get looks up wl, moving it to the front of the eviction order on a hit.
func (c *Cache) Get(wl shave.SHAVEWorkload) (shave.CyclesInterfaceType, bool) {
	if c.lru == nil {
		return 0, false
	}
	v, ok := c.lru.Get(wl.Key())
	return v, ok
}

// Add inserts wl's cost if and only if wl is not already present; an
// existing entry keeps its value but is moved to most-recently-used.
func (c *Cache) Add(wl shave.SHAVEWorkload, cycles shave.CyclesInterfaceType) {
	if c.lru == nil {
		return
	}
	key := wl.Key()
	if _, ok := c.lru.Get(key); ok {
		return
	}
	c.lru.Add(key, cycles)
}

// Len returns the number of entries currently cached.
func (c *Cache) Len() int {
	if c.lru == nil {
		return 0
	}
	return c.lru.Len()
}

// Purge empties the cache.
func (c *Cache) Purge() {
	if c.lru != nil {
		c.lru.Purge()
	}
}
