package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/edutrack-api/internal/models"
	"github.com/noah-isme/edutrack-api/internal/repository"
	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
	"github.com/noah-isme/edutrack-api/pkg/response"
)

// ContextUserKey is the gin context key storing the signed-in *models.User.
const ContextUserKey = "currentUser"

// SessionReader exposes the current dashboard session.
type SessionReader interface {
	Session() repository.Session
}

// RequireSession rejects requests made while nobody is signed in.
func RequireSession(store SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := store.Session()
		if session.User == nil {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "sign in first"))
			c.Abort()
			return
		}
		c.Set(ContextUserKey, session.User)
		c.Next()
	}
}

// CurrentUser returns the user set by RequireSession.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
