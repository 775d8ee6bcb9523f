package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	yaml := `
environment: production
logging:
  level: info
  json_format: true
api:
  enabled: true
  port: 8080
cache:
  type: redis
  settings:
    host: redis.internal
    port: 6380
    db: 2
share:
  ttl_seconds: 3600
  domain: tools.example.com
  https: true
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	conf, err := Load(path)
	require.NoError(t, err)

	assert.False(t, conf.IsDevelopment())
	assert.Equal(t, "info", conf.Logging.Level)
	assert.Equal(t, 8080, conf.API.Port)
	assert.Equal(t, "redis", conf.Cache.Type)
	assert.Equal(t, "redis.internal", conf.Cache.Settings["host"])
	assert.Equal(t, 3600, conf.Share.TTLSeconds)
	assert.Equal(t, "tools.example.com", conf.Share.Domain)
	assert.True(t, conf.Share.HTTPS)
}

func TestLoadDefaults(t *testing.T) {
	conf, err := Load("")
	require.NoError(t, err)

	assert.True(t, conf.IsDevelopment())
	assert.True(t, conf.API.Enabled)
	assert.Equal(t, 3333, conf.API.Port)
	assert.Equal(t, "memory", conf.Cache.Type)
	assert.Equal(t, 86400, conf.Share.TTLSeconds)
	assert.Equal(t, "localhost:3000", conf.Share.Domain)
	assert.False(t, conf.Share.HTTPS)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("DEVUTILS_ENV", "production")
	t.Setenv("DEVUTILS_SHARE_DOMAIN", "tools.example.com")
	t.Setenv("DEVUTILS_SHARE_TTL", "60")

	conf, err := Load("")
	require.NoError(t, err)

	assert.False(t, conf.IsDevelopment())
	assert.Equal(t, "tools.example.com", conf.Share.Domain)
	assert.Equal(t, 60, conf.Share.TTLSeconds)
}
