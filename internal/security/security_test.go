package security

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(config SecurityConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	sm := NewSecurityMiddleware(config)

	r := gin.New()
	r.Use(sm.Handlers()...)
	r.GET("/test", func(c *gin.Context) {
		_, hasDeadline := c.Request.Context().Deadline()
		c.JSON(http.StatusOK, gin.H{"deadline": hasDeadline})
	})
	r.POST("/test", func(c *gin.Context) {
		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, body)
	})
	return r
}

func TestSecurityConfig(t *testing.T) {
	config := DefaultSecurityConfig()

	assert.Contains(t, config.AllowedOrigins, "http://localhost:3000")
	assert.Equal(t, 10*time.Second, config.RequestTimeout)
	assert.Equal(t, int64(256<<10), config.MaxBodyBytes)

	sm := NewSecurityMiddleware(SecurityConfig{})
	assert.Equal(t, config.RequestTimeout, sm.config.RequestTimeout)
	assert.Equal(t, config.MaxBodyBytes, sm.config.MaxBodyBytes)
}

func TestSecurityHeaders(t *testing.T) {
	r := setupRouter(DefaultSecurityConfig())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"))
	assert.NotEmpty(t, w.Header().Get("Content-Security-Policy"))
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
	assert.Equal(t, "10", w.Header().Get("X-Timeout"))
	assert.JSONEq(t, `{"deadline":true}`, w.Body.String())
}

func TestValidateContentType(t *testing.T) {
	r := setupRouter(DefaultSecurityConfig())

	tests := []struct {
		name        string
		contentType string
		status      int
	}{
		{"json", "application/json", http.StatusOK},
		{"json with charset", "application/json; charset=utf-8", http.StatusOK},
		{"form", "application/x-www-form-urlencoded", http.StatusUnsupportedMediaType},
		{"text", "text/plain", http.StatusUnsupportedMediaType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"a":1}`))
			req.Header.Set("Content-Type", tt.contentType)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestLimitBody(t *testing.T) {
	r := setupRouter(SecurityConfig{MaxBodyBytes: 16})

	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"a":"`+strings.Repeat("x", 64)+`"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCORS(t *testing.T) {
	r := setupRouter(SecurityConfig{AllowedOrigins: []string{"https://app.example"}})

	tests := []struct {
		name   string
		origin string
		allow  string
		status int
	}{
		{"allowed origin", "https://app.example", "https://app.example", http.StatusOK},
		{"unknown origin", "https://evil.example", "", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.allow, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
