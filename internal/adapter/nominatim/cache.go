package nominatim

import (
	"container/list"
	"context"
	"fmt"
	"sync"

	"github.com/sanasaryank/trio-admin-sub000/internal/domain"
	"github.com/sanasaryank/trio-admin-sub000/internal/observability"
)

// CachedGeocoder wraps a Geocoder with an in-memory LRU cache keyed by
// coordinate. Marker drags frequently revisit the same spot, and every cache
// hit is one less call against the shared rate limit.
type CachedGeocoder struct {
	inner   domain.Geocoder
	cache   *lruCache
	metrics *observability.Metrics
}

// NewCachedGeocoder creates a cache decorator around a geocoder.
func NewCachedGeocoder(inner domain.Geocoder, maxEntries int, metrics *observability.Metrics) *CachedGeocoder {
	return &CachedGeocoder{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		metrics: metrics,
	}
}

func (c *CachedGeocoder) ReverseGeocode(ctx context.Context, coord domain.Coordinate) domain.GeocodeResult {
	key := fmt.Sprintf("%.6f,%.6f", coord.Lat, coord.Lon)
	if result, ok := c.cache.get(key); ok {
		c.metrics.GeocodeCache.WithLabelValues("hit").Inc()
		return result
	}
	c.metrics.GeocodeCache.WithLabelValues("miss").Inc()

	result := c.inner.ReverseGeocode(ctx, coord)
	// Only cache results with an address so transient failures can be retried.
	if result.Address != "" {
		c.cache.put(key, result)
	}
	return result
}

// lruCache is a thread-safe LRU cache for GeocodeResults.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	ll         *list.List // front is most recently used
	entries    map[string]*list.Element
}

type cacheEntry struct {
	key   string
	value domain.GeocodeResult
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		ll:         list.New(),
		entries:    make(map[string]*list.Element),
	}
}

func (c *lruCache) get(key string) (domain.GeocodeResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return domain.GeocodeResult{}, false
	}
	c.ll.MoveToFront(el)
	return el.Value.(*cacheEntry).value, true
}

func (c *lruCache) put(key string, value domain.GeocodeResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		el.Value.(*cacheEntry).value = value
		c.ll.MoveToFront(el)
		return
	}

	c.entries[key] = c.ll.PushFront(&cacheEntry{key: key, value: value})

	if c.ll.Len() > c.maxEntries {
		tail := c.ll.Back()
		if tail != nil {
			c.ll.Remove(tail)
			delete(c.entries, tail.Value.(*cacheEntry).key)
		}
	}
}
