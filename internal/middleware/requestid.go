package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "requestID"

// RequestID tags every request with a correlation id, exposed as the
// X-Request-ID response header and echoed in every response body.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()
		c.Set(requestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// GetRequestID returns the correlation id set by RequestID, or "" when the
// middleware did not run.
func GetRequestID(c *gin.Context) string {
	v, _ := c.Get(requestIDKey)
	id, _ := v.(string)
	return id
}
