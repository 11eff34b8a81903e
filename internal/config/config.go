// Package config loads the dashboard settings from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Autoloads .env file to supply environment variables
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds every setting the server reads at start up.
type Config struct {
	Port                 string `koanf:"port" validate:"required,numeric"`
	Env                  string `koanf:"env" validate:"oneof=dev test prod"`
	DatabaseURL          string `koanf:"database_url" validate:"required"`
	SessionKey           string `koanf:"session_key" validate:"required,min=32"`
	RedisURL             string `koanf:"redis_url"`
	OrgCacheTTL          int    `koanf:"org_cache_ttl" validate:"gte=0"`
	LogLevel             string `koanf:"log_level" validate:"oneof=trace debug info warn warning error"`
	CascadeDeleteWeights bool   `koanf:"cascade_delete_weights"`
}

func defaults() *Config {
	return &Config{
		Port:        "8080",
		Env:         "dev",
		OrgCacheTTL: 300,
		LogLevel:    "info",
	}
}

// Load reads the configuration from environment variables, falling back to
// defaults for anything optional, and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")
	// Blank variables are skipped so they don't clobber the defaults.
	err := k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, any) {
		if value == "" {
			return "", nil
		}
		return strings.ToLower(key), value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Dev reports whether the server runs in development mode.
func (c *Config) Dev() bool {
	return c.Env == "dev"
}

// OrgCacheExpiry is the lifetime of cached organization names.
func (c *Config) OrgCacheExpiry() time.Duration {
	return time.Duration(c.OrgCacheTTL) * time.Second
}
