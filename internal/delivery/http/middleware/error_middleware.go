package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"simplehire-backend/internal/delivery/http/response"
	"simplehire-backend/pkg/apperror"
	"simplehire-backend/pkg/logger"
)

// ErrorHandler turns errors appended to the gin context into the
// standard envelope. Unclassified errors are logged server side and
// reported with a generic message.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				logger.Log.Error("unhandled error", "path", c.FullPath(), "error", err)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
