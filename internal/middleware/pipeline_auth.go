package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "birikim/internal/errors"
)

// PipelineAuthMiddleware guards the quote-feed endpoints with a shared
// X-API-Key. With no key configured the endpoints are disabled outright.
func PipelineAuthMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			abortWithError(c, apperrors.ErrPipelineNotConfigured)
			return
		}
		if subtle.ConstantTimeCompare([]byte(c.GetHeader("X-API-Key")), []byte(apiKey)) != 1 {
			abortWithError(c, apperrors.ErrInvalidAPIKey)
			return
		}
		c.Next()
	}
}
