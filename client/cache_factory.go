package client

import (
	"fmt"

	"go.uber.org/zap"
)

// QueryCacheFactory creates query caches based on configuration
type QueryCacheFactory struct {
	redisConfig           RedisCacheConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// QueryCacheFactoryOption is a functional option for configuring the factory
type QueryCacheFactoryOption func(*QueryCacheFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) QueryCacheFactoryOption {
	return func(f *QueryCacheFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to the in-memory
// cache when Redis is unavailable. Default is true.
func WithInMemoryFallback(allow bool) QueryCacheFactoryOption {
	return func(f *QueryCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewQueryCacheFactory creates a new factory
func NewQueryCacheFactory(cfg RedisCacheConfig, opts ...QueryCacheFactoryOption) *QueryCacheFactory {
	f := &QueryCacheFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateCache creates a query cache, preferring Redis and falling back
// to the in-memory cache when Redis is unavailable and fallback is allowed.
func (f *QueryCacheFactory) CreateCache() (QueryCache, error) {
	cache, err := NewRedisQueryCache(f.redisConfig)
	if err == nil {
		f.logger.Info("using Redis query cache")
		return cache, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("Redis required for query cache but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory query cache",
		zap.Error(err),
	)
	return NewInMemoryQueryCache(), nil
}
