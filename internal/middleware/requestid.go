package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/orderdesk-backend/internal/logger"
)

const RequestIDHeader = "X-Request-ID"

type RequestIDMiddleware struct {
	log *logger.Logger
}

func NewRequestIDMiddleware(log *logger.Logger) *RequestIDMiddleware {
	middlewareLog := log.With("middleware", "RequestIDMiddleware")
	return &RequestIDMiddleware{log: middlewareLog}
}

// AssignRequestID tags every request with an id, honoring one supplied by
// the caller, and echoes it on the response.
func (rm *RequestIDMiddleware) AssignRequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)
		rm.log.Debug("Request received", "request_id", requestID, "method", c.Request.Method, "path", c.Request.URL.Path)
		c.Next()
	}
}
