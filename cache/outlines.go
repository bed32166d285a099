package cache

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/balloon"
)

// DefaultCapacity is the default soft limit of an Outlines cache.
const DefaultCapacity = 256

// Placement selects how a balloon is placed relative to its rect.
type Placement int

const (
	// Around uses the rect as the balloon's body; the stem protrudes
	// outside it (balloon.Outline).
	Around Placement = iota

	// Within fits the whole balloon, stem included, inside the rect
	// (balloon.OutlineInRect).
	Within
)

// Key identifies a cached outline. It is comparable because Rect and
// Configuration are plain values.
type Key struct {
	Rect          balloon.Rect
	Configuration balloon.Configuration
	Placement     Placement
}

// Outlines is a thread-safe LRU cache of balloon outlines with a soft
// limit. When the cache exceeds its limit, the least recently used quarter
// of the entries is evicted.
//
// Outlines must not be copied after creation (has mutex).
type Outlines struct {
	mu        sync.Mutex
	entries   map[Key]*entry
	softLimit int
	tick      int64 // Monotonic access counter

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// entry holds a cached outline with its access time.
type entry struct {
	path  *balloon.Path
	atime int64
}

// New creates an outline cache with the given soft limit.
// If softLimit <= 0, DefaultCapacity is used.
func New(softLimit int) *Outlines {
	if softLimit <= 0 {
		softLimit = DefaultCapacity
	}
	return &Outlines{
		entries:   make(map[Key]*entry),
		softLimit: softLimit,
	}
}

// Outline returns balloon.Outline(rect, cfg), computing it on a miss.
func (c *Outlines) Outline(rect balloon.Rect, cfg balloon.Configuration) *balloon.Path {
	return c.Get(Key{Rect: rect, Configuration: cfg, Placement: Around})
}

// OutlineInRect returns balloon.OutlineInRect(rect, cfg), computing it on a
// miss.
func (c *Outlines) OutlineInRect(rect balloon.Rect, cfg balloon.Configuration) *balloon.Path {
	return c.Get(Key{Rect: rect, Configuration: cfg, Placement: Within})
}

// Get returns the outline for key, computing and storing it on a miss.
// The returned path is a copy the caller may modify freely.
func (c *Outlines) Get(key Key) *balloon.Path {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	if e, ok := c.entries[key]; ok {
		e.atime = c.tick
		c.hits.Add(1)
		return e.path.Clone()
	}
	c.misses.Add(1)

	path := compute(key)
	c.entries[key] = &entry{path: path, atime: c.tick}

	if len(c.entries) > c.softLimit {
		c.evictOldest()
	}
	return path.Clone()
}

func compute(key Key) *balloon.Path {
	switch key.Placement {
	case Within:
		return balloon.OutlineInRect(key.Rect, key.Configuration)
	default:
		return balloon.Outline(key.Rect, key.Configuration)
	}
}

// Len returns the number of cached outlines.
func (c *Outlines) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Clear removes all entries from the cache.
func (c *Outlines) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[Key]*entry)
	c.tick = 0
}

// Stats returns cache statistics.
func (c *Outlines) Stats() Stats {
	c.mu.Lock()
	n := len(c.entries)
	c.mu.Unlock()

	hits, misses := c.hits.Load(), c.misses.Load()
	var rate float64
	if total := hits + misses; total > 0 {
		rate = float64(hits) / float64(total)
	}
	return Stats{
		Len:       n,
		Capacity:  c.softLimit,
		Hits:      hits,
		Misses:    misses,
		HitRate:   rate,
		Evictions: c.evictions.Load(),
	}
}

// evictOldest removes the least recently used entries until the cache is
// at three quarters of its soft limit.
// Caller must hold c.mu.
func (c *Outlines) evictOldest() {
	targetSize := max(1, c.softLimit*3/4)
	toEvict := len(c.entries) - targetSize
	if toEvict <= 0 {
		return
	}

	type aged struct {
		key   Key
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for key, e := range c.entries {
		all = append(all, aged{key: key, atime: e.atime})
	}

	// Selection sort; batches are small.
	for i := 0; i < toEvict; i++ {
		minIdx := i
		for j := i + 1; j < len(all); j++ {
			if all[j].atime < all[minIdx].atime {
				minIdx = j
			}
		}
		all[i], all[minIdx] = all[minIdx], all[i]
		delete(c.entries, all[i].key)
	}
	c.evictions.Add(uint64(toEvict))

	balloon.Logger().Debug("balloon/cache: evicted outlines",
		"evicted", toEvict,
		"remaining", len(c.entries))
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the soft limit.
	Capacity int
	// Hits is the number of cache hits.
	Hits uint64
	// Misses is the number of cache misses.
	Misses uint64
	// HitRate is the cache hit rate 0.0 to 1.0.
	HitRate float64
	// Evictions is the number of evicted entries.
	Evictions uint64
}
