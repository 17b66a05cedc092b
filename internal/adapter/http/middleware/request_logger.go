package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger logs one line per request. The route template is logged
// instead of the raw path so access tokens never reach the logs.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		}
		switch {
		case c.Writer.Status() >= 500:
			logger.Error("[http][request] completed", fields...)
		case c.Writer.Status() >= 400:
			logger.Warn("[http][request] completed", fields...)
		default:
			logger.Info("[http][request] completed", fields...)
		}
	}
}

// Recovery turns panics into 500s and logs them.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("[http][recovery] recovered from panic", zap.Any("panic", recovered), zap.String("route", c.FullPath()))
		c.AbortWithStatus(500)
	})
}
