package memory

import (
	"context"
	"sync"
	"time"

	"soulbuddy/internal/domain/readings"
)

type cacheItem struct {
	value     string
	expiresAt time.Time
}

// Cache es un readings.Cache en memoria con TTL (modo dev, sin REDIS_URL).
type Cache struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]cacheItem
	now   func() time.Time
}

var _ readings.Cache = (*Cache)(nil)

// NewCache: ttl <= 0 => sin expiración.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:   ttl,
		items: map[string]cacheItem{},
		now:   time.Now,
	}
}

func (c *Cache) Get(ctx context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	it, ok := c.items[key]
	if !ok {
		return "", false, nil
	}
	if !it.expiresAt.IsZero() && !c.now().Before(it.expiresAt) {
		delete(c.items, key)
		return "", false, nil
	}
	return it.value, true, nil
}

func (c *Cache) Set(ctx context.Context, key, readingID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	it := cacheItem{value: readingID}
	if c.ttl > 0 {
		it.expiresAt = c.now().Add(c.ttl)
	}
	c.items[key] = it
	return nil
}
