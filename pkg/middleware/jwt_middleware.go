package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"soulmate/pkg/utils"
)

// JWTAuthMiddleware guards protected routes. A missing header is 401; a
// present but invalid or expired token is 403.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Unauthorized access")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusForbidden, "Forbidden access")
			c.Abort()
			return
		}

		c.Set("email", claims.Email)
		c.Next()
	}
}
