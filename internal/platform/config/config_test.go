package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromMap_Defaults(t *testing.T) {
	cfg, err := LoadFromMap(map[string]string{
		"JWT_PUBLIC_KEY": "test-key",
	})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "/api/v1", cfg.Server.BaseRoute)
	assert.Equal(t, "*", cfg.Server.AllowedOrigins)
	assert.Equal(t, "localhost", cfg.Database.Postgres.Host)
	assert.Equal(t, 5432, cfg.Database.Postgres.Port)
	assert.Equal(t, "vidtube", cfg.Database.Postgres.Database)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, "vidtube:", cfg.Cache.Prefix)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.True(t, cfg.Cache.Enabled)
}

func TestLoadFromMap_Overrides(t *testing.T) {
	cfg, err := LoadFromMap(map[string]string{
		"JWT_PUBLIC_KEY":    "test-key",
		"SERVER_PORT":       "9090",
		"BASE_ROUTE":        "/v2",
		"POSTGRES_HOST":     "db.internal",
		"POSTGRES_DATABASE": "vidtube_test",
		"CACHE_BACKEND":     "redis",
		"CACHE_TTL":         "15m",
		"REDIS_ADDRESS":     "redis.internal:6380",
	})
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/v2", cfg.Server.BaseRoute)
	assert.Equal(t, "db.internal", cfg.Database.Postgres.Host)
	assert.Equal(t, "vidtube_test", cfg.Database.Postgres.Database)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, 15*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "redis.internal:6380", cfg.Cache.Redis.Address)
}

func TestLoadFromMap_InvalidValuesFallBack(t *testing.T) {
	cfg, err := LoadFromMap(map[string]string{
		"JWT_PUBLIC_KEY": "test-key",
		"SERVER_PORT":    "not-a-number",
		"CACHE_TTL":      "soon",
	})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
}

func TestValidate(t *testing.T) {
	t.Run("Invalid port", func(t *testing.T) {
		_, err := LoadFromMap(map[string]string{
			"JWT_PUBLIC_KEY": "test-key",
			"SERVER_PORT":    "0",
		})
		assert.Error(t, err)
	})

	t.Run("Unsupported cache backend", func(t *testing.T) {
		_, err := LoadFromMap(map[string]string{
			"JWT_PUBLIC_KEY": "test-key",
			"CACHE_BACKEND":  "memcached",
		})
		assert.Error(t, err)
	})

	t.Run("Missing JWT public key", func(t *testing.T) {
		_, err := LoadFromMap(map[string]string{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "jwt public key")
	})

	t.Run("Missing postgres host", func(t *testing.T) {
		cfg, err := LoadFromMap(map[string]string{
			"JWT_PUBLIC_KEY": "test-key",
		})
		require.NoError(t, err)
		cfg.Database.Postgres.Host = ""
		assert.Error(t, cfg.Validate())
	})
}
