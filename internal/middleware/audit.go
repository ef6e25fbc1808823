package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/edutrack-api/pkg/logger"
)

// Audit logs successful state-changing requests with the acting user.
func Audit(base *zap.Logger, action string) gin.HandlerFunc {
	if base == nil {
		base = zap.NewNop()
	}
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() >= 400 {
			return
		}

		fields := []zap.Field{
			zap.String("action", action),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
		}
		if user := CurrentUser(c); user != nil {
			fields = append(fields, zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
		}
		if id := c.Param("id"); id != "" {
			fields = append(fields, zap.String("target_id", id))
		}
		if assignmentID := c.Param("assignmentId"); assignmentID != "" {
			fields = append(fields, zap.String("assignment_id", assignmentID))
		}
		logger.ForRequest(base, c.Request.Context()).Info("audit", fields...)
	}
}
