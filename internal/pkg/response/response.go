package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hbnb/internal/pkg/apperr"
)

// Error codes carried in the envelope.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeForbidden    = "FORBIDDEN"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeRateLimited  = "RATE_LIMITED"
	CodeInternal     = "INTERNAL_ERROR"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// Status maps an error kind to its HTTP status and envelope code.
func Status(err error) (int, string) {
	switch {
	case errors.Is(err, apperr.ErrInvalidInput):
		return http.StatusBadRequest, CodeValidation
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict, CodeConflict
	case errors.Is(err, apperr.ErrForbidden):
		return http.StatusForbidden, CodeForbidden
	case errors.Is(err, apperr.ErrUnauthenticated):
		return http.StatusUnauthorized, CodeUnauthorized
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

// FromError writes the envelope for err. Unexpected errors are attached
// to the gin context for the request logger and reported without their
// details.
func FromError(c *gin.Context, err error) {
	status, code := Status(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		Error(c, status, code, "internal server error")
		return
	}
	if field := apperr.FieldOf(err); field != "" {
		ErrorWithDetails(c, status, code, apperr.Message(err), gin.H{"field": field})
		return
	}
	Error(c, status, code, apperr.Message(err))
}
