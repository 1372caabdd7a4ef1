package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/phyten/contrastcheck/internal/logger"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// requestIDMiddleware propagates an incoming X-Request-ID or assigns a new
// one, and echoes it on the response.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = c.GetHeader("X-Correlation-ID")
		}
		if requestID == "" || len(requestID) > 128 {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Header(requestIDHeader, requestID)
		c.Next()
	}
}

// securityHeadersMiddleware adds security headers to responses. The index
// page replaces the CSP with one that allows its own assets.
func securityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "no-referrer")
		c.Header("Content-Security-Policy", "default-src 'none'")
		c.Header("X-Permitted-Cross-Domain-Policies", "none")
		c.Next()
	}
}

// loggingMiddleware logs HTTP requests with status-based log levels:
// 5xx=Error, 4xx=Warn, 404=Debug, 3xx/2xx=Debug.
func loggingMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		entry := log.WithField("http_method", method).
			WithField("http_path", path).
			WithField("http_status", status).
			WithField("duration_ms", duration.Milliseconds()).
			WithField("client_ip", c.ClientIP())
		if requestID := c.GetString(requestIDKey); requestID != "" {
			entry = entry.WithRequestID(requestID)
		}

		if status >= 500 {
			entry.Error("HTTP request failed")
		} else if status >= 400 && status != 404 {
			entry.Warn("HTTP request rejected")
		} else if status == 404 {
			entry.Debug("HTTP request not found")
		} else {
			entry.Debug("HTTP request completed")
		}
	}
}

func requestLogger(c *gin.Context, log *logger.Logger) *logger.Logger {
	if requestID := c.GetString(requestIDKey); requestID != "" {
		return log.WithRequestID(requestID)
	}
	return log
}
