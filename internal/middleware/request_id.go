package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prodigylabs/programs-api/internal/constants"
)

// RequestID attaches a request ID to every request, honoring an incoming
// X-Request-ID header so upstream proxies can correlate logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(constants.ContextKeyRequestID, requestID)
		c.Writer.Header().Set(constants.HeaderRequestID, requestID)
		c.Next()
	}
}

// GetRequestID retrieves the current request ID from context
func GetRequestID(c *gin.Context) (string, bool) {
	requestID, exists := c.Get(constants.ContextKeyRequestID)
	if !exists {
		return "", false
	}

	id, ok := requestID.(string)
	return id, ok
}
