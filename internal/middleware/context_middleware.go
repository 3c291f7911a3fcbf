package middleware

import (
	"speed-hrm/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger stores a request-scoped logger that already carries the
// request and user ids. It must run after RequestID and AuthMiddleware.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		rid := contextutil.GetRequestID(ctx)
		if rid == "" {
			rid = c.GetString(ContextRequestID)
		}

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("user_id", contextutil.GetUserID(ctx)),
		)

		c.Request = c.Request.WithContext(contextutil.WithLogger(ctx, reqLogger))
		c.Next()
	}
}
