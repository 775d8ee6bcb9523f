package redis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/devutils/devutils/pkg/config"
	"github.com/devutils/devutils/pkg/storage/cache"
	"github.com/devutils/devutils/pkg/util"
)

type Settings struct {
	Host               string `mapstructure:"host"`
	Port               int    `mapstructure:"port"`
	Password           string `mapstructure:"password"`
	DB                 int    `mapstructure:"db"`
	DialTimeoutSeconds int    `mapstructure:"dial_timeout_seconds"`
}

// Cache stores entries in Redis, relying on Redis key expiry for TTL
// enforcement. The client multiplexes a connection pool, so a single Cache
// is shared by all in-flight requests.
type Cache struct {
	client    *redis.Client
	closeOnce sync.Once
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

func (c *Cache) SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	ok, err := c.client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx %q: %w", key, err)
	}
	return ok, nil
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, cache.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %q: %w", key, err)
	}
	return val, nil
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *Cache) Close() error {
	var err error
	c.closeOnce.Do(func() {
		err = c.client.Close()
	})
	return err
}

// NewCache returns a Cache backed by the Redis instance described in the
// config settings map. The connection is established lazily on first use.
func NewCache(conf config.Cache) (*Cache, error) {
	settings, err := util.ConfigToStruct[Settings](conf.Settings)
	if err != nil {
		return nil, fmt.Errorf("redis settings: %w", err)
	}
	if settings.Host == "" {
		settings.Host = "localhost"
	}
	if settings.Port == 0 {
		settings.Port = 6379
	}
	if settings.DialTimeoutSeconds == 0 {
		settings.DialTimeoutSeconds = 5
	}

	client := redis.NewClient(&redis.Options{
		Addr:        fmt.Sprintf("%s:%d", settings.Host, settings.Port),
		Password:    settings.Password,
		DB:          settings.DB,
		DialTimeout: time.Duration(settings.DialTimeoutSeconds) * time.Second,
	})

	return &Cache{client: client}, nil
}
