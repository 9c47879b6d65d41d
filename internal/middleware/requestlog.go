package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecoswitch/ecoswitch-backend/internal/logger"
)

// RequestLog logs one line per request through the structured logger.
func RequestLog(log *logger.Logger) gin.HandlerFunc {
	requestLog := log.With("middleware", "RequestLog")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if len(c.Errors) > 0 {
			requestLog.Error("request failed", append(fields, "errors", c.Errors.String())...)
			return
		}
		if c.Writer.Status() >= 500 {
			requestLog.Error("request errored", fields...)
			return
		}
		requestLog.Info("request", fields...)
	}
}
