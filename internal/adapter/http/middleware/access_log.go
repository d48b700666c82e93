package middleware

import (
	"time"

	"seguros_xpto/pkg/requestctx"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AccessLog writes one zap line per request. 5xx are logged at ERROR and 4xx
// at WARN.
func AccessLog(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", requestctx.RequestID(c.Request.Context())),
		}
		if p := Principal(c); p.IsAuthenticated() {
			fields = append(fields, zap.String("user_id", p.UserID))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case status >= 500:
			logger.Error("[http][access] request failed", fields...)
		case status >= 400:
			logger.Warn("[http][access] request rejected", fields...)
		default:
			logger.Info("[http][access] request served", fields...)
		}
	}
}

// Recovery turns a panic into a 500 and logs it through zap.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("[http][recovery] recovered from panic",
			zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(500)
	})
}
