package config

import (
	"github.com/ilyakaznacheev/cleanenv"
)

type Logging struct {
	JSONFormat bool   `yaml:"json_format" env:"DEVUTILS_LOG_JSON"`
	Level      string `yaml:"level" env:"DEVUTILS_LOG_LEVEL"`
}

type API struct {
	Enabled             bool   `yaml:"enabled" env:"DEVUTILS_API_ENABLED" env-default:"true"`
	Port                int    `yaml:"port" env:"DEVUTILS_API_PORT" env-default:"3333"`
	HealthCheckFailFile string `yaml:"healthcheck_fail_file"`
}

type Cache struct {
	Type     string         `yaml:"type" env:"DEVUTILS_CACHE_TYPE" env-default:"memory"`
	Settings map[string]any `yaml:"settings"`
}

// Share controls the share-link subsystem: how long records live, how
// short keys are, and how public URLs are built.
type Share struct {
	TTLSeconds int    `yaml:"ttl_seconds" env:"DEVUTILS_SHARE_TTL" env-default:"86400"`
	KeyLength  int    `yaml:"key_length" env-default:"8"`
	Domain     string `yaml:"domain" env:"DEVUTILS_SHARE_DOMAIN" env-default:"localhost:3000"`
	HTTPS      bool   `yaml:"https" env:"DEVUTILS_SHARE_HTTPS"`
}

type DevUtilsConfig struct {
	Environment string  `yaml:"environment" env:"DEVUTILS_ENV" env-default:"development"`
	Logging     Logging `yaml:"logging"`
	API         API     `yaml:"api"`
	Cache       Cache   `yaml:"cache"`
	Share       Share   `yaml:"share"`
}

// IsDevelopment reports whether internal error details may be echoed back
// to API callers.
func (c DevUtilsConfig) IsDevelopment() bool {
	return c.Environment != "production"
}

// Load reads the YAML config file at path and applies environment variable
// overrides. An empty path loads from the environment alone.
func Load(path string) (DevUtilsConfig, error) {
	var conf DevUtilsConfig
	var err error
	if path == "" {
		err = cleanenv.ReadEnv(&conf)
	} else {
		err = cleanenv.ReadConfig(path, &conf)
	}
	return conf, err
}
