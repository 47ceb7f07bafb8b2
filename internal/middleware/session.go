package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/myclassprogress/internal/models"
	appErrors "github.com/noah-isme/myclassprogress/pkg/errors"
	"github.com/noah-isme/myclassprogress/pkg/response"
)

// ContextUserKey is the gin context key storing the session user.
const ContextUserKey = "currentUser"

type sessionReader interface {
	Current() (*models.SessionUser, error)
}

// Session requires a logged in account. The session is process wide, so
// every client shares whichever account logged in last.
func Session(auth sessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := auth.Current()
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the account attached by Session, or nil.
func CurrentUser(c *gin.Context) *models.SessionUser {
	if v, ok := c.Get(ContextUserKey); ok {
		if user, ok := v.(*models.SessionUser); ok {
			return user
		}
	}
	return nil
}

// unauthorized is used when a route guarded by RBAC runs without Session.
var unauthorized = appErrors.Clone(appErrors.ErrUnauthorized, "not logged in")
