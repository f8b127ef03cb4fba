package middleware

import (
	"errors"
	"net/http"

	"github.com/01moynul/umkm-web-golang/internal/models"
	"github.com/01moynul/umkm-web-golang/internal/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//
// --- Role-Based Middleware ---
//
// Both run after AuthMiddleware and read the admin id it stored.
//

// AdminMiddleware checks that the token subject still has an admin profile
// and refreshes the role from the store.
func AdminMiddleware(admins store.AdminRepository, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID := c.GetString(ContextAdminID)
		if adminID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Admin ID not found in context"})
			return
		}

		admin, err := admins.GetByID(c.Request.Context(), adminID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: admin account required"})
				return
			}
			log.Error("admin lookup failed", zap.String("adminID", adminID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Database error checking role"})
			return
		}

		c.Set(ContextAdminRole, admin.Role)
		c.Next()
	}
}

// SuperAdminMiddleware lets only super admins through.
func SuperAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextAdminRole) != models.RoleSuperAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: Super Admin role required"})
			return
		}
		c.Next()
	}
}
