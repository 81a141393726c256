package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"soulmate/internal/models/db_models"
	"soulmate/pkg/utils"
)

// AdminOnlyMiddleware re-fetches the live user record on every request, so
// role changes apply immediately rather than on token reissue.
func AdminOnlyMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		if email == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Unauthorized access")
			c.Abort()
			return
		}

		var user db_models.User
		if err := db.First(&user, "email = ?", email).Error; err != nil {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: Admins only")
			c.Abort()
			return
		}

		if user.Role != db_models.RoleAdmin {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: Admins only")
			c.Abort()
			return
		}

		c.Next()
	}
}
