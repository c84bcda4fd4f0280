package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"simplehire-backend/internal/domain"
)

// RequestID assigns a unique ID to every request, honoring an inbound
// X-Request-ID so IDs survive a proxy hop.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(string(domain.KeyRequestID), id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
