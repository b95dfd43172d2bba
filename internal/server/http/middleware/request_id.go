package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request identifier in both directions.
	RequestIDHeader = "X-Request-ID"
	// RequestIDContextKey stores the request identifier in gin context.
	RequestIDContextKey = "requestID"
)

// RequestID propagates a valid incoming X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(RequestIDContextKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// CurrentRequestID returns the identifier assigned by RequestID, if any.
func CurrentRequestID(c *gin.Context) string {
	return c.GetString(RequestIDContextKey)
}
