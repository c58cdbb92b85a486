package monitoring

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "github.com/ZanzyTHEbar/career-compass/internal/errors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestLogger_AssessmentLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, slog.LevelInfo)

	logger.AssessmentLogger("eq", 10, 10, []string{"empathy"}, 3*time.Millisecond, true)

	out := buf.String()
	assert.Contains(t, out, `"msg":"Assessment Completed"`)
	assert.Contains(t, out, `"questionnaire":"eq"`)
	assert.Contains(t, out, `"cache_hit":true`)
	assert.Contains(t, out, `"timestamp"`)
}

func TestLogger_CacheLoggerBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, slog.LevelInfo)

	logger.CacheLogger("get", "abc", false, 0)
	assert.Empty(t, buf.String())
}

func TestMetrics_ReuseRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewMetricsWith(reg)
	require.NoError(t, err)
	second, err := NewMetricsWith(reg)
	require.NoError(t, err)

	first.IncrementCacheHit()
	second.IncrementCacheHit()
	assert.Equal(t, 2.0, testutil.ToFloat64(first.cacheLookups.WithLabelValues("hit")))
}

func TestMetrics_RecordAssessment(t *testing.T) {
	m, err := NewMetrics()
	require.NoError(t, err)

	m.RecordAssessment("riasec", false, []string{"unknown_option", "unknown_option", "out_of_range"})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.assessments.WithLabelValues("riasec", "false")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.answerIssues.WithLabelValues("riasec", "unknown_option")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.answerIssues.WithLabelValues("riasec", "out_of_range")))
}

func TestMetrics_GetStats(t *testing.T) {
	m, err := NewMetrics()
	require.NoError(t, err)

	m.RecordRequest("/health", http.MethodGet, 200, time.Millisecond)
	m.RecordRequest("/api/questionnaires/:id", http.MethodGet, 404, time.Millisecond)
	m.IncrementCacheHit()
	m.IncrementCacheMiss()
	m.IncrementCacheMiss()
	m.IncrementCacheMiss()

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats["request_count"])
	assert.Equal(t, int64(1), stats["error_count"])
	assert.InDelta(t, 50.0, stats["error_rate"], 0.001)
	assert.InDelta(t, 25.0, stats["cache_hit_rate"], 0.001)
}

func setupRouter(t *testing.T) (*gin.Engine, *Metrics, *bytes.Buffer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m, err := NewMetrics()
	require.NoError(t, err)
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, slog.LevelInfo)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.Use(MonitoringMiddleware(m, logger))
	r.Use(SecurityMonitoringMiddleware(logger))
	r.GET("/things/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "request_id": c.GetString(apperrors.RequestIDKey)})
	})
	r.GET("/metrics", gin.WrapH(m.Handler()))
	return r, m, &buf
}

func TestMonitoringMiddleware(t *testing.T) {
	r, m, buf := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things/42", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("/things/:id", http.MethodGet, "200")))
	assert.Contains(t, buf.String(), `"msg":"HTTP Request"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("unmatched", http.MethodGet, "404")))
}

func TestRequestIDMiddleware_KeepsCallerID(t *testing.T) {
	r, _, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/things/1", nil)
	req.Header.Set(RequestIDHeader, "caller-id")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "caller-id", w.Header().Get(RequestIDHeader))
	assert.JSONEq(t, `{"id":"1","request_id":"caller-id"}`, w.Body.String())
}

func TestSecurityMonitoringMiddleware(t *testing.T) {
	r, _, buf := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/things/1", nil)
	req.Header.Set("User-Agent", "sqlmap/1.7")
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), "suspicious_user_agent")
}

func TestMetricsHandler(t *testing.T) {
	r, _, _ := setupRouter(t)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/things/1", nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "career_compass_http_requests_total")
}
