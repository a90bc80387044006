package middleware

import (
	"time"

	"odyssey-hcm/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger emits one access log line per request, tagged with the
// request id set by RequestID.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		md := contextutil.ExtractMetadata(c.Request.Context())
		logger.Info("http request",
			zap.String("request_id", md.RequestID),
			zap.String("user_id", md.UserID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
