package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "requestId"

// RequestID ensures every request carries an ID, minting one when the caller
// did not send X-Request-Id. The ID is echoed back in the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader("X-Request-Id"))
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}

// RequestIDFromContext returns the ID stored by RequestID, or "" when absent.
func RequestIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, ok := c.Get(requestIDKey)
	if !ok {
		return ""
	}
	id, _ := val.(string)
	return id
}
