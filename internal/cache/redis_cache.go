package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// AvailableKey holds the upstream's raw fractional events listing
const AvailableKey = "odds_proxy:available"

// RedisCache caches the upstream events listing in Redis
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// RedisCacheConfig holds Redis cache configuration
type RedisCacheConfig struct {
	Addr     string // e.g., "localhost:6379"
	Password string
	DB       int
	TTL      time.Duration // e.g., 30 * time.Second
}

// NewRedisCache creates a new Redis cache
func NewRedisCache(config RedisCacheConfig, logger zerolog.Logger) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	return &RedisCache{
		client: client,
		ttl:    config.TTL,
		logger: logger.With().Str("component", "redis_cache").Logger(),
	}
}

// GetAvailable retrieves the cached listing body.
// A missing key is reported as ok=false with no error.
func (c *RedisCache) GetAvailable(ctx context.Context) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, AvailableKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, fmt.Errorf("failed to get from Redis: %w", err)
	}

	return data, true, nil
}

// SetAvailable caches the listing body with the configured TTL
func (c *RedisCache) SetAvailable(ctx context.Context, body []byte) error {
	if err := c.client.Set(ctx, AvailableKey, body, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set in Redis: %w", err)
	}

	c.logger.Debug().
		Str("key", AvailableKey).
		Int("bytes", len(body)).
		Dur("ttl", c.ttl).
		Msg("cached events listing")

	return nil
}

// Ping checks Redis connection
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
