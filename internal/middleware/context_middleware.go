package middleware

import (
	"go-hrms/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger must run after RequestID and AuthMiddleware. It moves the caller and a
// logger tagged with request_id, user_id and role onto the request context.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetString(ContextRequestID)
		if rid == "" {
			rid = uuid.New().String()
			c.Header(RequestIDHeader, rid)
		}

		actor := CurrentActor(c)
		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("user_id", actor.UserID),
			zap.String("role", actor.Role),
		)

		ctx := c.Request.Context()
		ctx = contextutil.WithRequestID(ctx, rid)
		ctx = contextutil.WithActor(ctx, actor)
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
