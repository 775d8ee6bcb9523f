package storage

import (
	"fmt"

	"github.com/devutils/devutils/pkg/config"
	"github.com/devutils/devutils/pkg/storage/cache"
	"github.com/devutils/devutils/pkg/storage/cache/memory"
	"github.com/devutils/devutils/pkg/storage/cache/redis"
)

type Services struct {
	Cache cache.Cache
}

func New(c config.DevUtilsConfig) (*Services, error) {
	rc := &Services{}

	var err error
	if rc.Cache, err = NewCache(c.Cache); err != nil {
		return nil, err
	}

	return rc, nil
}

func NewCache(conf config.Cache) (cache.Cache, error) {
	switch conf.Type {
	case "memory", "":
		return memory.NewCache(conf)
	case "redis":
		return redis.NewCache(conf)
	}

	return nil, fmt.Errorf("unknown cache type %q", conf.Type)
}
