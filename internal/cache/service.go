package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/vidtube/api/internal/pkg/log"
	"github.com/vidtube/api/internal/platform/config"
)

// Service provides JSON marshaling, key prefixing, and pattern
// invalidation on top of a Cache backend. A nil Service is valid and
// behaves as a disabled cache.
type Service struct {
	cache  Cache
	config *config.CacheConfig
}

// NewService wraps a cache backend. Returns nil when caching is
// disabled so callers can treat the nil service as a no-op.
func NewService(cache Cache, cfg *config.CacheConfig) *Service {
	if cfg == nil || !cfg.Enabled || cache == nil {
		return nil
	}
	return &Service{cache: cache, config: cfg}
}

// GetCached retrieves and unmarshals cached data into target.
func (s *Service) GetCached(ctx context.Context, key string, target interface{}) error {
	if s == nil {
		return ErrCacheDisabled
	}

	data, err := s.cache.Get(ctx, s.buildKey(key))
	if err != nil {
		if err != ErrKeyNotFound {
			log.ErrorWithContext(ctx, "Cache get error for key %s: %v", key, err)
		}
		return err
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrDeserializationFailed, err)
	}
	return nil
}

// CacheData marshals and stores data with a TTL. The configured TTL is
// used when none is given.
func (s *Service) CacheData(ctx context.Context, key string, data interface{}, ttl ...time.Duration) error {
	if s == nil {
		return ErrCacheDisabled
	}

	cacheTTL := s.config.TTL
	if len(ttl) > 0 && ttl[0] > 0 {
		cacheTTL = ttl[0]
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSerializationFailed, err)
	}

	if err := s.cache.Set(ctx, s.buildKey(key), jsonData, cacheTTL); err != nil {
		log.ErrorWithContext(ctx, "Cache set error for key %s: %v", key, err)
		return err
	}
	return nil
}

// InvalidatePattern removes all cache keys matching the given pattern.
func (s *Service) InvalidatePattern(ctx context.Context, pattern string) error {
	if s == nil {
		return ErrCacheDisabled
	}

	if err := s.cache.DeletePattern(ctx, s.buildKey(pattern)); err != nil {
		log.ErrorWithContext(ctx, "Cache pattern invalidation error for pattern %s: %v", pattern, err)
		return err
	}
	return nil
}

// IsEnabled reports whether the service is backed by a live cache.
func (s *Service) IsEnabled() bool {
	return s != nil
}

// Close closes the underlying backend.
func (s *Service) Close() error {
	if s == nil {
		return nil
	}
	return s.cache.Close()
}

func (s *Service) buildKey(key string) string {
	prefix := s.config.Prefix
	if prefix == "" {
		return key
	}
	if !strings.HasSuffix(prefix, ":") {
		prefix += ":"
	}
	return prefix + key
}
