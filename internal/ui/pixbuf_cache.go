package ui

import (
	"fmt"
	"log"
	"sync"

	"github.com/gotk3/gotk3/gdk"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/supercut-tools/superlauncher/internal/icon"
)

const defaultPixbufCacheSize = 200

// PixbufCache keeps rendered tile pixbufs, keyed path@size, in front of
// the extractor. The extractor memoizes raw icon sets; this layer holds
// the size-exact renders the widgets actually display.
type PixbufCache struct {
	cache     *lru.Cache[string, *gdk.Pixbuf]
	extractor *icon.Extractor
	mu        sync.RWMutex
	cacheHits int64
	cacheMiss int64
}

// NewPixbufCache creates a cache in front of the given extractor.
func NewPixbufCache(extractor *icon.Extractor, maxSize int) (*PixbufCache, error) {
	if maxSize <= 0 {
		maxSize = defaultPixbufCacheSize
	}

	cache, err := lru.New[string, *gdk.Pixbuf](maxSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create pixbuf cache: %w", err)
	}

	return &PixbufCache{
		cache:     cache,
		extractor: extractor,
	}, nil
}

// Get returns the rendered pixbuf for a path at a size, extracting on miss.
// A nil result means even the extractor could not allocate a pixbuf.
func (pc *PixbufCache) Get(path string, size int) *gdk.Pixbuf {
	key := fmt.Sprintf("%s@%d", path, size)

	pc.mu.RLock()
	pixbuf, hit := pc.cache.Get(key)
	pc.mu.RUnlock()

	if hit && pixbuf != nil {
		pc.mu.Lock()
		pc.cacheHits++
		pc.mu.Unlock()
		return pixbuf
	}

	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pixbuf, ok := pc.cache.Get(key); ok && pixbuf != nil {
		pc.cacheHits++
		return pixbuf
	}
	pc.cacheMiss++

	pixbuf = pc.extractor.Extract(path, size)
	if pixbuf != nil {
		pc.cache.Add(key, pixbuf)
	}
	return pixbuf
}

// Extractor exposes the underlying extractor for diagnostics.
func (pc *PixbufCache) Extractor() *icon.Extractor {
	return pc.extractor
}

// Invalidate drops the cached renders for a path at every size.
func (pc *PixbufCache) Invalidate(path string) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	for _, key := range pc.cache.Keys() {
		if len(key) > len(path) && key[:len(path)] == path && key[len(path)] == '@' {
			pc.cache.Remove(key)
		}
	}
}

// Stats reports hit/miss counters and the current size.
func (pc *PixbufCache) Stats() (hits, misses int, hitRate float64, size int) {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	hits = int(pc.cacheHits)
	misses = int(pc.cacheMiss)
	size = pc.cache.Len()

	total := hits + misses
	if total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}
	return hits, misses, hitRate, size
}

// Clear empties the render cache and the extractor's set cache.
func (pc *PixbufCache) Clear() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	pc.cache.Purge()
	pc.extractor.ClearCache()
	log.Printf("[PIXBUF-CACHE] Cache cleared")
}
