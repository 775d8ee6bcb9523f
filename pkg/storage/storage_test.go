package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devutils/devutils/pkg/config"
	"github.com/devutils/devutils/pkg/storage/cache/memory"
)

func TestNew(t *testing.T) {
	t.Run("memory cache", func(t *testing.T) {
		services, err := New(config.DevUtilsConfig{Cache: config.Cache{Type: "memory"}})
		require.NoError(t, err)
		assert.IsType(t, &memory.Cache{}, services.Cache)
	})

	t.Run("defaults to memory", func(t *testing.T) {
		services, err := New(config.DevUtilsConfig{})
		require.NoError(t, err)
		assert.IsType(t, &memory.Cache{}, services.Cache)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := New(config.DevUtilsConfig{Cache: config.Cache{Type: "memcached"}})
		assert.Error(t, err)
	})
}
