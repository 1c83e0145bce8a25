// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

/*
Package redis provides a managed client for volatile data storage.

It backs cross-cutting operations that require expiration semantics; in this
service that is the shared per-IP rate limit window. Domain data never lives
here — the relational store remains the single source of truth.

Core Responsibilities:

  - Volatility: Handles data with TTL (Time-To-Live).
  - Speed: Low-latency counters shared across API replicas.
  - Safety: Manages connection pooling and retry logic automatically.
*/
package redis

import (
	stdctx "context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kinoteka/kinoteka/internal/platform/constants"
)

// Opinionated default timeouts for Redis operations.
const (
	dialTimeout  = 3 * time.Second
	readTimeout  = 2 * time.Second
	writeTimeout = 2 * time.Second
	pingTimeout  = 2 * time.Second
)

// NewClient parses a Redis URL and returns a ready-to-use client.
//
// # Parameters
//   - context: Context for the initial ping.
//   - redisURL: Redis connection URL.
//   - logger: Structured logger for connection events.
func NewClient(context stdctx.Context, redisURL string, logger *slog.Logger) (*redis.Client, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}

	// Pool configuration Tuning
	options.PoolSize = 10
	options.MinIdleConns = 2
	options.MaxIdleConns = 5

	options.DialTimeout = dialTimeout
	options.ReadTimeout = readTimeout
	options.WriteTimeout = writeTimeout

	client := redis.NewClient(options)

	// Validate connectivity immediately at startup.
	if err := Ping(context, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("redis client connected",
		slog.String("addr", options.Addr),
		slog.Int("pool_size", options.PoolSize),
	)

	return client, nil
}

// Ping verifies that the Redis client is healthy.
func Ping(context stdctx.Context, client *redis.Client) error {
	pingCtx, cancel := stdctx.WithTimeout(context, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}

	return nil
}

// # Shared Rate Limiting

// FixedWindowLimiter counts requests per key inside a fixed time window.
//
// The counter lives in Redis, so the limit is enforced across all API
// replicas. INCR followed by a conditional EXPIRE keeps the window atomic
// enough for traffic shaping; exact fairness at window edges is not required.
type FixedWindowLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewFixedWindowLimiter constructs a limiter allowing `limit` requests per
// key per [constants.RateLimitWindow].
func NewFixedWindowLimiter(client *redis.Client, limit int64) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		client: client,
		limit:  limit,
		window: constants.RateLimitWindow,
	}
}

// Allow increments the key's window counter and reports whether the request
// is under the limit. A returned error means Redis is unreachable; callers
// are expected to fall back to local limiting.
func (limiter *FixedWindowLimiter) Allow(context stdctx.Context, key string) (bool, error) {
	redisKey := constants.RedisPrefixRateLimit + key

	count, err := limiter.client.Incr(context, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("redis: rate limit incr failed: %w", err)
	}

	// First hit in the window starts the expiry clock.
	if count == 1 {
		if err := limiter.client.Expire(context, redisKey, limiter.window).Err(); err != nil {
			return false, fmt.Errorf("redis: rate limit expire failed: %w", err)
		}
	}

	return count <= limiter.limit, nil
}
