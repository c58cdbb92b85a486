package monitoring

import (
	"net/http"
	"strings"
	"time"

	apperrors "github.com/ZanzyTHEbar/career-compass/internal/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware reuses the caller's request id or assigns a new one
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(apperrors.RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// MonitoringMiddleware records metrics and a log line for every request
func MonitoringMiddleware(metrics *Metrics, logger *Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		metrics.RecordRequest(route, c.Request.Method, statusCode, duration)

		logger.RequestLogger(c.Request.Method, c.Request.URL.Path, c.ClientIP(),
			c.GetHeader("User-Agent"), c.GetString(apperrors.RequestIDKey), statusCode, duration)

		for _, err := range c.Errors {
			logger.APIErrorLogger(err.Err, c.Request.Method, c.Request.URL.Path, c.ClientIP(), statusCode)
		}

		if statusCode >= http.StatusInternalServerError {
			logger.SystemLogger("server_error", c.Request.Method+" "+c.Request.URL.Path)
		}
	}
}

// maxAnswerBody is the largest answer payload accepted without a warning
const maxAnswerBody = 64 << 10

// SecurityMonitoringMiddleware logs requests that look like scanning or abuse.
// It never blocks.
func SecurityMonitoringMiddleware(logger *Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userAgent := c.GetHeader("User-Agent")
		details := make(map[string]interface{})

		if c.Request.Method == http.MethodPost && c.Request.ContentLength > maxAnswerBody {
			details["type"] = "large_request_body"
			details["size_bytes"] = c.Request.ContentLength
		}
		if containsSuspiciousUserAgent(userAgent) {
			details["type"] = "suspicious_user_agent"
		}

		if len(details) > 0 {
			logger.SecurityLogger("suspicious_activity_detected", c.ClientIP(), userAgent, details)
		}

		c.Next()
	}
}

func containsSuspiciousUserAgent(userAgent string) bool {
	suspiciousAgents := []string{
		"sqlmap",
		"nmap",
		"masscan",
		"zmap",
		"dirbuster",
		"gobuster",
		"nikto",
		"acunetix",
	}

	ua := strings.ToLower(userAgent)
	for _, agent := range suspiciousAgents {
		if strings.Contains(ua, agent) {
			return true
		}
	}
	return false
}
