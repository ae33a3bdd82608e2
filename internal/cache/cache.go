package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vidtube/api/internal/platform/config"
)

// Cache errors
var (
	ErrKeyNotFound           = errors.New("cache key not found")
	ErrCacheDisabled         = errors.New("cache is disabled")
	ErrSerializationFailed   = errors.New("failed to serialize cache data")
	ErrDeserializationFailed = errors.New("failed to deserialize cache data")
)

// Cache is the backend contract shared by the redis and in-memory
// implementations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeletePattern(ctx context.Context, pattern string) error
	Close() error
}

// New builds a cache backend from configuration.
func New(cfg *config.CacheConfig) (Cache, error) {
	switch cfg.Backend {
	case "redis":
		return NewRedisCache(&cfg.Redis)
	case "memory":
		return NewMemoryCache(), nil
	default:
		return nil, fmt.Errorf("unsupported cache backend: %s", cfg.Backend)
	}
}
