package icon

import (
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultCacheCapacity bounds the extraction cache when no limit is
// configured.
const DefaultCacheCapacity = 100

// Cache is a bounded insertion-order cache: when full, the earliest
// inserted key is evicted first. Re-inserting an existing key updates the
// value without refreshing its position, so this is FIFO, not LRU.
//
// The cache is confined to the GTK main loop and is deliberately
// unsynchronized.
type Cache[V any] struct {
	capacity int
	entries  map[string]V
	order    []string
}

// NewCache creates a cache holding at most capacity entries. Non-positive
// capacities fall back to DefaultCacheCapacity.
func NewCache[V any](capacity int) *Cache[V] {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &Cache[V]{
		capacity: capacity,
		entries:  make(map[string]V, capacity),
	}
}

// Get returns the cached value for key.
func (c *Cache[V]) Get(key string) (V, bool) {
	v, ok := c.entries[key]
	return v, ok
}

// Put inserts or replaces the value for key, evicting the oldest inserted
// entry when the cache is full.
func (c *Cache[V]) Put(key string, value V) {
	if _, exists := c.entries[key]; exists {
		c.entries[key] = value
		return
	}

	if len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
		log.Printf("[ICON-CACHE] Evicted oldest entry %q (capacity %d)", oldest, c.capacity)
	}

	c.entries[key] = value
	c.order = append(c.order, key)
}

// Len returns the number of cached entries.
func (c *Cache[V]) Len() int {
	return len(c.order)
}

// Capacity returns the configured entry limit.
func (c *Cache[V]) Capacity() int {
	return c.capacity
}

// Purge empties the cache.
func (c *Cache[V]) Purge() {
	c.entries = make(map[string]V, c.capacity)
	c.order = nil
}

// CacheKey builds the cache key from the resolved path and the sorted size
// list, so the same request always hits the same entry regardless of size
// order.
func CacheKey(path string, sizes []int) string {
	resolved, err := filepath.Abs(path)
	if err != nil {
		resolved = path
	}

	sorted := make([]int, len(sizes))
	copy(sorted, sizes)
	sort.Ints(sorted)

	parts := make([]string, len(sorted))
	for i, s := range sorted {
		parts[i] = fmt.Sprintf("%d", s)
	}
	return resolved + "@" + strings.Join(parts, ",")
}
