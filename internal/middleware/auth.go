package middleware

import (
	"net/http"
	"strings"

	"github.com/amjooky/carwash-plus-sub001/internal/pkg/jwt"
	"github.com/amjooky/carwash-plus-sub001/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Context keys set by JWTAuth and read by the role/permission guards and
// handlers downstream.
const (
	CtxUserID      = "user_id"
	CtxRole        = "role"
	CtxPermissions = "permissions"
)

// JWTAuth authenticates the bearer credential and stores the caller's
// identity in the gin context. Missing or invalid credentials short-circuit
// with 401 before any handler runs.
func JWTAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.CustomError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.CustomError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.CustomError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			response.CustomError(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, claims.Role)
		c.Set(CtxPermissions, claims.Permissions)

		c.Next()
	}
}
