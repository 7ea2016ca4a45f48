package cache

import (
	"sync"
	"time"
)

// TTL is an explicit, injected read-through cache with a fixed entry
// lifetime. Callers own the freshness policy; nothing in this package
// touches process-wide state.
type TTL[K comparable, V any] struct {
	mu   sync.RWMutex
	ttl  time.Duration
	now  func() time.Time
	data map[K]entry[V]
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// NewTTL builds a cache with the given entry lifetime. A non-positive
// ttl disables caching entirely (every Get misses).
func NewTTL[K comparable, V any](ttl time.Duration) *TTL[K, V] {
	return &TTL[K, V]{
		ttl:  ttl,
		now:  time.Now,
		data: make(map[K]entry[V]),
	}
}

func (c *TTL[K, V]) Get(key K) (V, bool) {
	var zero V
	if c == nil || c.ttl <= 0 {
		return zero, false
	}

	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()
	if !ok || c.now().After(e.expiresAt) {
		return zero, false
	}
	return e.value, true
}

func (c *TTL[K, V]) Set(key K, value V) {
	if c == nil || c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	c.data[key] = entry[V]{value: value, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
}
