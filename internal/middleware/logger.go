package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hbnb/internal/logging"
	"hbnb/internal/pkg/response"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger assigns every request an id (reusing the client's
// X-Request-ID when sent) and logs it once it has been served.
func RequestLogger(l *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)
		c.Request = c.Request.WithContext(logging.WithRequestID(c.Request.Context(), requestID))

		c.Next()

		var err error
		if len(c.Errors) > 0 {
			err = errors.New(c.Errors.String())
		}
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		l.HTTPRequest(c.Request.Context(), c.Request.Method, path, c.Writer.Status(), time.Since(start), err)
	}
}

// Recovery turns a panic into a 500 envelope and logs it with its stack.
func Recovery(l *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				l.WithContext(c.Request.Context()).Error().
					Str("panic", fmt.Sprintf("%v", recovered)).
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Bytes("stack", debug.Stack()).
					Msg("request panicked")

				response.Error(c, http.StatusInternalServerError, response.CodeInternal, "internal server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
