package memory

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/devutils/devutils/pkg/config"
	"github.com/devutils/devutils/pkg/storage/cache"
)

// Cache is an in-process expiring store used for local development and
// tests. Entries honor their TTL but do not survive a restart.
type Cache struct {
	items *gocache.Cache
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	value = append([]byte(nil), value...)
	c.items.Set(key, value, ttl)
	return nil
}

func (c *Cache) SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	value = append([]byte(nil), value...)
	if err := c.items.Add(key, value, ttl); err != nil {
		// Add only fails when the key already exists
		return false, nil
	}
	return true, nil
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	v, ok := c.items.Get(key)
	if !ok {
		return nil, cache.ErrNotFound
	}
	return v.([]byte), nil
}

func (c *Cache) Ping(ctx context.Context) error {
	return nil
}

func (c *Cache) Close() error {
	return nil
}

// NewCache returns a new initialized Cache
func NewCache(conf config.Cache) (*Cache, error) {
	return &Cache{
		items: gocache.New(gocache.NoExpiration, time.Minute),
	}, nil
}
