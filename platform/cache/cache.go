// Package cache provides a Redis-backed cache for spam report counts.
// This is part of the platform layer and contains no business logic.
// All methods are nil-safe so the application can run without Redis.
package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const spamCountKeyPrefix = "spam:count:"

// Client wraps a Redis client for spam-count caching.
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

// New parses redisURL, verifies connectivity, and returns a cache client.
func New(ctx context.Context, redisURL string, ttl time.Duration) (*Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL(%q): %w", redisURL, err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Client{rdb: rdb, ttl: ttl}, nil
}

// NewWithClient wraps an existing Redis client. Used by tests with miniredis.
func NewWithClient(rdb *redis.Client, ttl time.Duration) *Client {
	return &Client{rdb: rdb, ttl: ttl}
}

// Close releases the underlying Redis connection.
func (c *Client) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

// GetSpamCount returns the cached report count for a phone number.
// The second return value is false on a miss or any Redis failure; a broken
// cache never fails a lookup.
func (c *Client) GetSpamCount(ctx context.Context, phoneNumber string) (int, bool) {
	if c == nil || c.rdb == nil {
		return 0, false
	}

	value, err := c.rdb.Get(ctx, spamCountKeyPrefix+phoneNumber).Result()
	if err != nil {
		return 0, false
	}

	count, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}

	return count, true
}

// SetSpamCount stores the report count for a phone number with the configured TTL.
func (c *Client) SetSpamCount(ctx context.Context, phoneNumber string, count int) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Set(ctx, spamCountKeyPrefix+phoneNumber, strconv.Itoa(count), c.ttl)
}

// InvalidateSpamCount drops the cached count for a phone number.
// Called after a new report so the next status read is fresh.
func (c *Client) InvalidateSpamCount(ctx context.Context, phoneNumber string) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, spamCountKeyPrefix+phoneNumber)
}
