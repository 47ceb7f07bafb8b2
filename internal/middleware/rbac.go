package middleware

import (
	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/myclassprogress/pkg/errors"
	"github.com/noah-isme/myclassprogress/pkg/response"
)

// Self lets an account through when the :id route parameter is its own id.
const Self = "SELF"

// RBAC enforces role-based access control for routes. It must run after Session.
func RBAC(allowed ...string) gin.HandlerFunc {
	allowSelf := false
	allowedRoles := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		if a == Self {
			allowSelf = true
			continue
		}
		allowedRoles[a] = struct{}{}
	}

	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			response.Error(c, unauthorized)
			c.Abort()
			return
		}

		if _, ok := allowedRoles[user.Role()]; ok {
			c.Next()
			return
		}

		if allowSelf {
			if targetID := c.Param("id"); targetID != "" && targetID == user.ID() {
				c.Next()
				return
			}
		}

		response.Error(c, appErrors.ErrForbidden)
		c.Abort()
	}
}

// RequireRoles is a helper that accepts a list of roles.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return RBAC(roles...)
}
