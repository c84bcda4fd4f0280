package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"simplehire-backend/config"
	"simplehire-backend/internal/delivery/http/response"
)

// AdminMiddleware gates review endpoints behind a shared operations key.
// When no key is configured the endpoints are disabled entirely.
func AdminMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.AdminAPIKey == "" {
			response.Error(c, http.StatusForbidden, "Admin access is not configured", nil)
			c.Abort()
			return
		}

		key := c.GetHeader("X-Admin-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(cfg.AdminAPIKey)) != 1 {
			response.Error(c, http.StatusForbidden, "Admin access denied", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
