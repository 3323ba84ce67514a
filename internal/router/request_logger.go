package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cogscreen-go/internal/models"
)

// RequestLogger logs every request through zap. Requests from a logged-in
// subject carry their user ID so assessment traffic can be correlated with
// the per-session scoring logs.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if route := c.FullPath(); route != "" && route != c.Request.URL.Path {
			fields = append(fields, zap.String("route", route))
		}
		if v, ok := c.Get("user"); ok {
			if user, ok := v.(*models.User); ok {
				fields = append(fields, zap.Uint("user_id", user.ID))
			}
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case status >= 500:
			log.Error("Server error", fields...)
		case status >= 400:
			log.Warn("Client error", fields...)
		default:
			// Successful requests go to Debug to keep the files readable.
			log.Debug("Request processed", fields...)
		}
	}
}
