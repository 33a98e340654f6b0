package metadata

import (
	"sync"
	"sync/atomic"
)

// Cache is the in-memory memoization table for provider responses. Entries
// are keyed by the exact call signature (movie id, or normalized query
// string) and live for the life of the process: no TTL, no eviction, no
// invalidation. Values are never mutated after insertion; two concurrent
// misses for the same key may both store, and last write wins.
type Cache struct {
	mu       sync.RWMutex
	movies   map[int64]*MovieDetails
	searches map[string]*SearchResult

	hits   atomic.Int64
	misses atomic.Int64
}

// CacheStats is a point-in-time snapshot of cache usage.
type CacheStats struct {
	Movies   int
	Searches int
	Hits     int64
	Misses   int64
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		movies:   make(map[int64]*MovieDetails),
		searches: make(map[string]*SearchResult),
	}
}

// GetMovie returns the cached details for a movie id.
func (c *Cache) GetMovie(id int64) (*MovieDetails, bool) {
	c.mu.RLock()
	details, ok := c.movies[id]
	c.mu.RUnlock()

	c.count(ok)
	return details, ok
}

// SetMovie stores details under a movie id.
func (c *Cache) SetMovie(id int64, details *MovieDetails) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.movies[id] = details
}

// GetSearch returns the cached result for a normalized query key.
func (c *Cache) GetSearch(key string) (*SearchResult, bool) {
	c.mu.RLock()
	result, ok := c.searches[key]
	c.mu.RUnlock()

	c.count(ok)
	return result, ok
}

// SetSearch stores a search result under a normalized query key.
func (c *Cache) SetSearch(key string, result *SearchResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searches[key] = result
}

// Stats returns entry counts and lookup counters.
func (c *Cache) Stats() CacheStats {
	c.mu.RLock()
	movies := len(c.movies)
	searches := len(c.searches)
	c.mu.RUnlock()

	return CacheStats{
		Movies:   movies,
		Searches: searches,
		Hits:     c.hits.Load(),
		Misses:   c.misses.Load(),
	}
}

func (c *Cache) count(hit bool) {
	if hit {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
}
