package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache is a named, cost-bounded in-memory cache.
type Cache[T any] struct {
	impl *ristretto.Cache[string, T]
	name string
	ttl  time.Duration
}

// Stats is a snapshot of the cache metrics reported by the health endpoint.
type Stats struct {
	Name       string  `json:"name"`
	Hits       uint64  `json:"hits"`
	Misses     uint64  `json:"misses"`
	HitRate    float64 `json:"hit_rate"`
	Items      int64   `json:"items"`
	MemoryUsed int64   `json:"memory_used"`
}

// New creates a cache holding at most maxCost units, as measured by costFunc.
// Entries expire after ttl.
func New[T any](name string, maxCost int64, ttl time.Duration, costFunc func(T) int64) (*Cache[T], error) {
	impl, err := ristretto.NewCache(&ristretto.Config[string, T]{
		NumCounters: maxCost / 100, // ~10x the expected number of entries
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
		Cost:        costFunc,

		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}

	return &Cache[T]{
		impl: impl,
		name: name,
		ttl:  ttl,
	}, nil
}

// NewPages creates a cache for rendered page bodies, costed by their size.
func NewPages(ttl time.Duration) (*Cache[[]byte], error) {
	return New("pages", 8<<20, ttl, func(b []byte) int64 {
		return int64(len(b))
	})
}

func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// Set stores value with the cache's TTL and waits for the write to land, so
// the next Get sees it. A zero cost lets the cost function decide.
func (c *Cache[T]) Set(key string, value T) bool {
	ok := c.impl.SetWithTTL(key, value, 0, c.ttl)
	c.impl.Wait()
	return ok
}

// GetOrSet returns the cached value for key, or builds, stores and returns it.
func (c *Cache[T]) GetOrSet(key string, build func() (T, error)) (T, error) {
	if v, ok := c.impl.Get(key); ok {
		return v, nil
	}
	v, err := build()
	if err != nil {
		return v, err
	}
	c.Set(key, v)
	return v, nil
}

func (c *Cache[T]) Close() {
	c.impl.Close()
}

func (c *Cache[T]) Stats() Stats {
	m := c.impl.Metrics
	return Stats{
		Name:       c.name,
		Hits:       m.Hits(),
		Misses:     m.Misses(),
		HitRate:    m.Ratio() * 100,
		Items:      int64(m.KeysAdded() - m.KeysEvicted()),
		MemoryUsed: int64(m.CostAdded() - m.CostEvicted()),
	}
}
