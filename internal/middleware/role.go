package middleware

import (
	"net/http"

	"github.com/amjooky/carwash-plus-sub001/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures the authenticated caller's role is in the allowed set.
// Runs after JWTAuth; a missing role means the auth middleware was skipped.
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(CtxRole)
		if !exists {
			response.CustomError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		rs, ok := role.(string)
		if !ok {
			response.CustomError(c, http.StatusForbidden, "FORBIDDEN", "Invalid role in token")
			c.Abort()
			return
		}

		for _, allowed := range allowedRoles {
			if rs == allowed {
				c.Next()
				return
			}
		}

		response.CustomError(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient role")
		c.Abort()
	}
}

// RequirePermission ensures the caller holds a capability string. Layered
// after RequireRole so the same role set can be reused across endpoints
// while still discriminating fine-grained access.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		perms, exists := c.Get(CtxPermissions)
		if !exists {
			response.CustomError(c, http.StatusForbidden, "FORBIDDEN", "No permissions in token")
			c.Abort()
			return
		}

		list, ok := perms.([]string)
		if !ok {
			response.CustomError(c, http.StatusForbidden, "FORBIDDEN", "Invalid permissions in token")
			c.Abort()
			return
		}

		for _, p := range list {
			if p == permission {
				c.Next()
				return
			}
		}

		response.CustomError(c, http.StatusForbidden, "FORBIDDEN", "Access denied: missing permission "+permission)
		c.Abort()
	}
}
