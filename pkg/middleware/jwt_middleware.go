package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	mem "civix/pkg/memcache"
	"civix/pkg/utils"
)

// JWTAuthMiddleware authenticates a request from the Authorization header or
// the session cookie. A missing token is rejected immediately, before any
// verification is attempted.
func JWTAuthMiddleware(revoked mem.RevokedTokenStore) gin.HandlerFunc {

	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Not authorized, no token")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		if revoked != nil && revoked.IsRevoked(tokenString) {
			utils.RespondError(c, http.StatusUnauthorized, "Token is logged out")
			c.Abort()
			return
		}

		// Pass user information to the next handler
		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("token", tokenString)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie("token"); err == nil {
		return cookie
	}
	return ""
}

// RoleMiddleware gates a route to the given roles. Admin callers always pass
// the committee gate, mirroring the roster management model.
func RoleMiddleware(requiredRoles ...string) gin.HandlerFunc {

	return func(c *gin.Context) {
		role := c.GetString("role")

		for _, required := range requiredRoles {
			if role == required {
				c.Next()
				return
			}
		}

		utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
		c.Abort()
	}
}
