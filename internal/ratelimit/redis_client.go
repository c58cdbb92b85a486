package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ZanzyTHEbar/career-compass/internal/resilience"
	"github.com/redis/go-redis/v9"
)

// RedisClient is the optional shared backend of the rate limiter. A nil or
// disabled client makes the limiter run in memory only.
type RedisClient struct {
	client *redis.Client
}

var pingRetry = resilience.RetryConfig{
	MaxAttempts:   3,
	InitialDelay:  250 * time.Millisecond,
	MaxDelay:      2 * time.Second,
	BackoffFactor: 2,
	JitterEnabled: true,
}

// NewRedisClient connects to Redis, retrying the initial ping with backoff.
// An empty addr returns a disabled client and no error. A failed ping returns
// a disabled client together with the error so callers can log it and carry on.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*RedisClient, error) {
	if addr == "" {
		return &RedisClient{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: 2 * time.Second,
		ReadTimeout: time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	err := resilience.RetryWithConfig(pingCtx, pingRetry, func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
	if err != nil {
		_ = client.Close()
		return &RedisClient{}, fmt.Errorf("redis ping %s: %w", addr, err)
	}

	slog.Info("Redis connected", "addr", addr, "db", db)
	return &RedisClient{client: client}, nil
}

func (r *RedisClient) IsEnabled() bool {
	return r != nil && r.client != nil
}

// Close closes the connection pool. Safe on a nil or disabled client.
func (r *RedisClient) Close() error {
	if !r.IsEnabled() {
		return nil
	}
	return r.client.Close()
}

// poolStats reports the connection counts shown on /health
func (r *RedisClient) poolStats() map[string]interface{} {
	if !r.IsEnabled() {
		return map[string]interface{}{"enabled": false}
	}
	stats := r.client.PoolStats()
	return map[string]interface{}{
		"enabled":     true,
		"total_conns": stats.TotalConns,
		"timeouts":    stats.Timeouts,
	}
}
