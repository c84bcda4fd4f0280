package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"simplehire-backend/internal/delivery/http/response"
	"simplehire-backend/internal/domain"
	"simplehire-backend/pkg/auth"
)

// AuthMiddleware validates the access token and stores the caller's
// identity on the context. The token is read from the Authorization
// header first, then the auth_token cookie.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			cookie, err := c.Cookie("auth_token")
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				response.Error(c, http.StatusUnauthorized, "Token has expired", nil)
			} else {
				response.Error(c, http.StatusUnauthorized, "Token is malformed or invalid", nil)
			}
			c.Abort()
			return
		}
		if claims.TokenType != "access" {
			response.Error(c, http.StatusUnauthorized, "Token is malformed or invalid", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), claims.UserID)
		c.Set(string(domain.KeyUserEmail), claims.Email)

		c.Next()
	}
}
