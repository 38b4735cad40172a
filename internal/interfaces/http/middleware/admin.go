// internal/interfaces/http/middleware/admin.go
package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
)

// AdminKey guards staff endpoints with a static API key. When no key is
// configured the admin surface is disabled entirely.
func AdminKey(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.Security.AdminAPIKey == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Admin API is not configured",
			})
			c.Abort()
			return
		}

		provided := c.GetHeader("X-Admin-Key")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(cfg.Security.AdminAPIKey)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid admin key",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
