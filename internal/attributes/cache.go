package attributes

import (
	"sync"
	"sync/atomic"
)

// Ticker reports the current simulation tick
type Ticker interface {
	Tick() int64
}

// ManualTicker is a Ticker advanced by hand
type ManualTicker struct {
	tick atomic.Int64
}

func (t *ManualTicker) Tick() int64 { return t.tick.Load() }

// Advance moves the ticker forward by n ticks and returns the new tick
func (t *ManualTicker) Advance(n int64) int64 { return t.tick.Add(n) }

type cacheKey struct {
	actorID   string
	attribute string
}

type cacheEntry struct {
	value float64
	ok    bool
	tick  int64
}

// Cache reuses looked-up values until they are more than staleAfter ticks
// old. Misses are cached too, so a missing attribute is not re-queried
// every call.
type Cache struct {
	source     Source
	ticker     Ticker
	staleAfter int64

	mu      sync.Mutex
	entries map[cacheKey]cacheEntry
}

// NewCache wraps source. A negative staleAfter is treated as 0.
func NewCache(source Source, ticker Ticker, staleAfter int) *Cache {
	if staleAfter < 0 {
		staleAfter = 0
	}
	return &Cache{
		source:     source,
		ticker:     ticker,
		staleAfter: int64(staleAfter),
		entries:    make(map[cacheKey]cacheEntry),
	}
}

func (c *Cache) AttributeValue(actorID, attribute string) (float64, bool) {
	key := cacheKey{actorID: actorID, attribute: attribute}
	now := c.ticker.Tick()

	c.mu.Lock()
	entry, hit := c.entries[key]
	c.mu.Unlock()

	if hit && now-entry.tick <= c.staleAfter {
		return entry.value, entry.ok
	}

	v, ok := c.source.AttributeValue(actorID, attribute)

	c.mu.Lock()
	c.entries[key] = cacheEntry{value: v, ok: ok, tick: now}
	c.mu.Unlock()

	return v, ok
}

// Invalidate drops every cached value for the actor
func (c *Cache) Invalidate(actorID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if key.actorID == actorID {
			delete(c.entries, key)
		}
	}
}
