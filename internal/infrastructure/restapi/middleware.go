package restapi

import (
	"net/http"
	"time"

	"evm_chains/internal/app/port"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware rejects requests with 429 once the shared token bucket is empty.
func RateLimitMiddleware(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, APIErrorResponse{Error: "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

// LoggerMiddleware logs one line per request through log.
func LoggerMiddleware(log port.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			log.Error("HTTP request", args...)
		case status >= http.StatusBadRequest:
			log.Warn("HTTP request", args...)
		default:
			log.Debug("HTTP request", args...)
		}
	}
}
