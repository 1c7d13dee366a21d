package middleware

import (
	"github.com/gin-gonic/gin"

	"networth-tracker/internal/common/errors"
	"networth-tracker/internal/features/session/models"
)

const userKey = "user"

// SessionReader is the part of the session the guards need.
type SessionReader interface {
	CurrentUser() *models.UserRecord
}

// RequireOnboarded lets the request through only when the session holds an
// onboarded user. The user is stored on the context for handlers.
func RequireOnboarded(session SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := session.CurrentUser()
		switch {
		case user == nil:
			_ = c.Error(errors.NewUnauthorizedError("no active session"))
			c.Abort()
			return
		case !user.IsOnboarded:
			_ = c.Error(errors.New(errors.ErrCodeNotOnboarded, "Onboarding is not complete"))
			c.Abort()
			return
		}

		c.Set(userKey, user)
		c.Set(userIDKey, user.ID)
		c.Next()
	}
}

// CurrentUser returns the user stored by RequireOnboarded.
func CurrentUser(c *gin.Context) (*models.UserRecord, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.UserRecord)
	return user, ok && user != nil
}
