package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ZanzyTHEbar/career-compass/internal/monitoring"
	"github.com/ZanzyTHEbar/career-compass/internal/resilience"
	"github.com/go-redis/redis_rate/v10"
	"golang.org/x/time/rate"
)

// Config holds rate limiter configuration
type Config struct {
	PerMinute       int           // requests per client IP per minute
	BurstMultiplier int           // in-memory burst capacity as a multiple of PerMinute
	IdleTTL         time.Duration // in-memory limiters unused this long are dropped
}

// DefaultConfig returns default rate limiting configuration
func DefaultConfig() Config {
	return Config{
		PerMinute:       60,
		BurstMultiplier: 1,
		IdleTTL:         10 * time.Minute,
	}
}

// Result represents the result of a rate limit check
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
	Backend    string
}

type fallbackLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter provides distributed rate limiting with Redis and in-memory fallback
type RateLimiter struct {
	redisLimiter *redis_rate.Limiter
	redisClient  *RedisClient
	breaker      *resilience.CircuitBreaker
	config       Config
	metrics      *monitoring.Metrics
	logger       *monitoring.Logger

	fallbackLimiters map[string]*fallbackLimiter
	fallbackMutex    sync.Mutex

	stop      chan struct{}
	closeOnce sync.Once
}

// NewRateLimiter creates a rate limiter. A nil or disabled Redis client
// selects the in-memory limiter.
func NewRateLimiter(redisClient *RedisClient, config Config, metrics *monitoring.Metrics, logger *monitoring.Logger) *RateLimiter {
	if config.PerMinute <= 0 {
		config.PerMinute = DefaultConfig().PerMinute
	}
	if config.BurstMultiplier <= 0 {
		config.BurstMultiplier = 1
	}
	if config.IdleTTL <= 0 {
		config.IdleTTL = DefaultConfig().IdleTTL
	}
	if redisClient == nil {
		redisClient = &RedisClient{}
	}

	rl := &RateLimiter{
		redisClient:      redisClient,
		breaker:          resilience.NewCircuitBreaker(resilience.DefaultCircuitBreakerConfig()),
		config:           config,
		metrics:          metrics,
		logger:           logger,
		fallbackLimiters: make(map[string]*fallbackLimiter),
		stop:             make(chan struct{}),
	}

	if redisClient.IsEnabled() {
		rl.redisLimiter = redis_rate.NewLimiter(redisClient.client)
		rl.log().Info("Redis rate limiter initialized")
	} else {
		rl.log().Warn("Redis unavailable, using in-memory rate limiting only")
	}

	go rl.cleanupFallbackLimiters()

	return rl
}

func (rl *RateLimiter) log() *slog.Logger {
	if rl.logger != nil {
		return rl.logger.Logger
	}
	return slog.Default()
}

// AllowIP checks if an IP address may make another request this minute
func (rl *RateLimiter) AllowIP(ctx context.Context, ip string) (*Result, error) {
	return rl.allow(ctx, "ratelimit:ip:"+ip, rl.config.PerMinute, time.Minute)
}

func (rl *RateLimiter) allow(ctx context.Context, key string, limit int, period time.Duration) (*Result, error) {
	if rl.redisLimiter != nil && rl.redisClient.IsEnabled() {
		var result *Result
		err := rl.breaker.Call(func() error {
			var err error
			result, err = rl.allowRedis(ctx, key, limit, period)
			return err
		})
		switch {
		case err == nil:
			return result, nil
		case errors.Is(err, resilience.ErrCircuitOpen):
			// Redis is being skipped until the breaker lets a trial through
		default:
			rl.log().Warn("Redis rate limit check failed, using fallback", "key", key, "error", err)
			if rl.metrics != nil {
				rl.metrics.IncrementRateLimitRedisError()
			}
		}
	}
	return rl.allowFallback(key, limit, period), nil
}

// allowRedis performs rate limiting with the GCRA limiter stored in Redis
func (rl *RateLimiter) allowRedis(ctx context.Context, key string, limit int, period time.Duration) (*Result, error) {
	res, err := rl.redisLimiter.Allow(ctx, key, redis_rate.Limit{
		Rate:   limit,
		Burst:  limit,
		Period: period,
	})
	if err != nil {
		return nil, fmt.Errorf("redis rate limit check failed: %w", err)
	}

	return &Result{
		Allowed:    res.Allowed > 0,
		Limit:      res.Limit.Rate,
		Remaining:  res.Remaining,
		ResetAt:    time.Now().Add(res.ResetAfter),
		RetryAfter: res.RetryAfter,
		Backend:    "redis",
	}, nil
}

// allowFallback performs rate limiting using an in-memory token bucket per key
func (rl *RateLimiter) allowFallback(key string, limit int, period time.Duration) *Result {
	now := time.Now()

	rl.fallbackMutex.Lock()
	fl, ok := rl.fallbackLimiters[key]
	if !ok {
		perSecond := rate.Limit(float64(limit) / period.Seconds())
		fl = &fallbackLimiter{limiter: rate.NewLimiter(perSecond, limit*rl.config.BurstMultiplier)}
		rl.fallbackLimiters[key] = fl
	}
	fl.lastSeen = now
	rl.fallbackMutex.Unlock()

	result := &Result{
		Allowed: fl.limiter.AllowN(now, 1),
		Limit:   limit,
		ResetAt: now.Add(period),
		Backend: "memory",
	}
	if tokens := int(fl.limiter.TokensAt(now)); tokens > 0 {
		result.Remaining = tokens
	}
	if !result.Allowed {
		r := fl.limiter.ReserveN(now, 1)
		result.RetryAfter = r.DelayFrom(now)
		r.CancelAt(now)
		result.ResetAt = now.Add(result.RetryAfter)
	}
	return result
}

// cleanupFallbackLimiters drops in-memory limiters that have been idle for
// longer than IdleTTL
func (rl *RateLimiter) cleanupFallbackLimiters() {
	ticker := time.NewTicker(rl.config.IdleTTL)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.evictIdle(now)
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) int {
	rl.fallbackMutex.Lock()
	defer rl.fallbackMutex.Unlock()

	removed := 0
	for key, fl := range rl.fallbackLimiters {
		if now.Sub(fl.lastSeen) > rl.config.IdleTTL {
			delete(rl.fallbackLimiters, key)
			removed++
		}
	}
	if removed > 0 {
		rl.log().Debug("Dropped idle fallback rate limiters", "count", removed)
	}
	return removed
}

// Close stops the cleanup goroutine. It does not close the Redis client.
func (rl *RateLimiter) Close() {
	rl.closeOnce.Do(func() { close(rl.stop) })
}

// GetStats returns rate limiter statistics
func (rl *RateLimiter) GetStats() map[string]interface{} {
	rl.fallbackMutex.Lock()
	fallbackCount := len(rl.fallbackLimiters)
	rl.fallbackMutex.Unlock()

	return map[string]interface{}{
		"per_minute":        rl.config.PerMinute,
		"redis_enabled":     rl.redisClient.IsEnabled(),
		"fallback_limiters": fallbackCount,
		"redis_pool":        rl.redisClient.poolStats(),
		"redis_breaker":     rl.breaker.GetStats(),
	}
}
