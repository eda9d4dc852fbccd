package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is where RequestID stores the id in the gin context.
const RequestIDKey = "request_id"

// RequestID honors an incoming X-Request-ID header and otherwise mints
// a fresh uuid, echoing it back on the response.
func RequestID(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
	}
	c.Set(RequestIDKey, requestID)
	c.Writer.Header().Set("X-Request-ID", requestID)
	c.Next()
}
