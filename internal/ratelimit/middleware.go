package ratelimit

import (
	"strconv"

	apperrors "github.com/ZanzyTHEbar/career-compass/internal/errors"
	"github.com/gin-gonic/gin"
)

// IPRateLimitMiddleware limits each client IP to Config.PerMinute requests
// per minute. A failing limiter lets the request through.
func (rl *RateLimiter) IPRateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		result, err := rl.AllowIP(c.Request.Context(), ip)
		if err != nil {
			rl.log().Error("Rate limit check failed", "ip", ip, "error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			if rl.metrics != nil {
				rl.metrics.IncrementRateLimitBlock(result.Backend)
			}

			retryAfter := int(result.RetryAfter.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			apperrors.Abort(c, apperrors.NewRateLimitError(strconv.Itoa(retryAfter)))
			return
		}

		c.Next()
	}
}
