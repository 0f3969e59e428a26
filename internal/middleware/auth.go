package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hbnb/internal/logging"
	"hbnb/internal/pkg/jwt"
	"hbnb/internal/pkg/response"
	"hbnb/internal/policy"
)

// Keys under which the authenticated identity is stored on the gin
// context.
const (
	ContextUserID  = "user_id"
	ContextIsAdmin = "is_admin"
)

type TokenValidator interface {
	ValidateToken(tokenStr string) (*jwt.Claims, error)
}

// JWTAuth rejects requests without a valid bearer token.
func JWTAuth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Missing Authorization header")
			c.Abort()
			return
		}
		if !authenticate(c, tokens, h) {
			return
		}
		c.Next()
	}
}

// OptionalJWTAuth identifies the caller when a bearer token is present
// and lets anonymous requests through. A malformed or invalid token is
// still rejected.
func OptionalJWTAuth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h != "" && !authenticate(c, tokens, h) {
			return
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, tokens TokenValidator, header string) bool {
	if !strings.HasPrefix(header, "Bearer ") {
		response.Error(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be: Bearer <token>")
		c.Abort()
		return false
	}

	tokenStr := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	claims, err := tokens.ValidateToken(tokenStr)
	if tokenStr == "" || err != nil {
		response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
		c.Abort()
		return false
	}

	c.Set(ContextUserID, claims.UserID())
	c.Set(ContextIsAdmin, claims.IsAdmin)
	c.Request = c.Request.WithContext(logging.WithUserID(c.Request.Context(), claims.UserID()))
	return true
}

// Caller returns the identity set by JWTAuth or OptionalJWTAuth; it is
// anonymous when neither ran or no token was sent.
func Caller(c *gin.Context) policy.Caller {
	return policy.Caller{
		UserID:  c.GetString(ContextUserID),
		IsAdmin: c.GetBool(ContextIsAdmin),
	}
}
