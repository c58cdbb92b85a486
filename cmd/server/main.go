package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ZanzyTHEbar/career-compass/internal/cache"
	"github.com/ZanzyTHEbar/career-compass/internal/config"
	apperrors "github.com/ZanzyTHEbar/career-compass/internal/errors"
	"github.com/ZanzyTHEbar/career-compass/internal/monitoring"
	"github.com/ZanzyTHEbar/career-compass/internal/questionnaires"
	"github.com/ZanzyTHEbar/career-compass/internal/ratelimit"
	"github.com/ZanzyTHEbar/career-compass/internal/security"
	"github.com/ZanzyTHEbar/career-compass/internal/server"
	"github.com/gin-gonic/gin"
)

// @title           Career Compass API
// @version         1.0
// @description     Scores psychometric questionnaires and classifies the outcome into tiered categories, indices and career paths.
// @host            localhost:8080
// @BasePath        /
func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := monitoring.NewLogger(monitoring.ParseLevel(cfg.LogLevel))
	slog.SetDefault(logger.Logger)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		slog.Error("Failed to initialize server", "error", err)
		os.Exit(1)
	}
	defer a.close()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           a.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("Starting server", "port", cfg.Port, "questionnaires", a.questionnaires)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to start", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		return
	}

	slog.Info("Server exited")
}

// app is the wired service with the resources it must release on exit
type app struct {
	handler        http.Handler
	questionnaires []string
	limiter        *ratelimit.RateLimiter
	redis          *ratelimit.RedisClient
}

func newApp(ctx context.Context, cfg config.Config, logger *monitoring.Logger) (*app, error) {
	metrics, err := monitoring.NewMetrics()
	if err != nil {
		return nil, apperrors.WrapError(err, "register metrics")
	}

	registry := questionnaires.Default(server.EngineOptions(logger, metrics)...)

	var resultCache *cache.ResultCache
	if cfg.CacheSize > 0 {
		resultCache = cache.New(cfg.CacheSize, cfg.CacheTTL)
	}

	a := &app{questionnaires: registry.IDs()}
	if cfg.RateLimitEnabled() {
		redisClient, err := ratelimit.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Warn("Redis unavailable, continuing with in-memory rate limiting", "error", err)
		}
		a.redis = redisClient
		a.limiter = ratelimit.NewRateLimiter(redisClient, ratelimit.Config{PerMinute: cfg.RateLimitPerMin}, metrics, logger)
	}

	a.handler = server.New(server.Options{
		Registry: registry,
		Cache:    resultCache,
		Limiter:  a.limiter,
		Metrics:  metrics,
		Logger:   logger,
		Security: security.SecurityConfig{
			AllowedOrigins: cfg.AllowedOrigins,
			RequestTimeout: cfg.RequestTimeout,
		},
	}).Router()

	return a, nil
}

func (a *app) close() {
	if a.limiter != nil {
		a.limiter.Close()
	}
	if err := a.redis.Close(); err != nil {
		slog.Error("Failed to close Redis client", "error", err)
	}
}
