// Package cache provides an optional Redis-backed cache for resolved
// images. When Redis is disabled the nil client is a safe no-op, so
// callers never branch on availability.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"resumeforge/internal/config"
	"resumeforge/internal/logging"
	"resumeforge/internal/logging/types"
)

// Client wraps the Redis client for image lookup caching
type Client struct {
	client *redis.Client
	config *config.Config
	logger types.Logger
}

// New creates a cache client, or nil when Redis is disabled. All methods
// are nil-safe.
func New(cfg *config.Config) *Client {
	if !cfg.Redis.Enabled {
		return nil
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		opts = &redis.Options{
			Addr:     "localhost:6379",
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	return &Client{
		client: redis.NewClient(opts),
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// Ping tests the Redis connection
func (c *Client) Ping(ctx context.Context) error {
	if c == nil {
		return fmt.Errorf("cache not enabled")
	}
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

// GetImage looks up a cached image result by key. A miss returns
// (nil, false) with no error logging.
func (c *Client) GetImage(ctx context.Context, key string, out interface{}) bool {
	if c == nil {
		return false
	}

	payload, err := c.client.Get(ctx, c.imageKey(key)).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Image cache read failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return false
	}

	if err := json.Unmarshal([]byte(payload), out); err != nil {
		c.logger.Warn("Image cache entry corrupt, discarding", map[string]interface{}{
			"key": key,
		})
		return false
	}
	return true
}

// SetImage stores an image result under key with the configured TTL.
// Failures are logged and swallowed; caching is best effort.
func (c *Client) SetImage(ctx context.Context, key string, value interface{}) {
	if c == nil {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return
	}

	ttl := c.config.ImageSearch.CacheTTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	if err := c.client.Set(ctx, c.imageKey(key), payload, ttl).Err(); err != nil {
		c.logger.Warn("Image cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

// IsHealthy checks if Redis is connected and healthy
func (c *Client) IsHealthy(ctx context.Context) error {
	return c.Ping(ctx)
}

func (c *Client) imageKey(key string) string {
	return fmt.Sprintf("image:search:%s", key)
}
