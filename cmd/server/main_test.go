package main

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ZanzyTHEbar/career-compass/internal/config"
	"github.com/ZanzyTHEbar/career-compass/internal/monitoring"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		mutate      func(*config.Config)
		wantLimiter bool
		cacheBody   string
	}{
		{"defaults", func(*config.Config) {}, true, `"enabled":true`},
		{"cache and limiter off", func(c *config.Config) {
			c.CacheSize = 0
			c.RateLimitPerMin = 0
		}, false, `{"enabled":false}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			logger := monitoring.NewLoggerWithWriter(&bytes.Buffer{}, slog.LevelInfo)

			a, err := newApp(context.Background(), cfg, logger)
			require.NoError(t, err)
			defer a.close()

			assert.Equal(t, []string{"riasec", "eq", "clusters", "vision"}, a.questionnaires)
			assert.Equal(t, tt.wantLimiter, a.limiter != nil)
			assert.False(t, a.redis.IsEnabled())

			w := httptest.NewRecorder()
			a.handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, http.StatusOK, w.Code)

			w = httptest.NewRecorder()
			a.handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cache/stats", nil))
			assert.Contains(t, w.Body.String(), tt.cacheBody)
		})
	}
}
