package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hbnb/internal/pkg/response"
)

// AdminOnly requires an authenticated admin. It must run after JWTAuth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := Caller(c)
		if !caller.Authenticated() {
			response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "Authentication required")
			c.Abort()
			return
		}
		if !caller.IsAdmin {
			response.Error(c, http.StatusForbidden, response.CodeForbidden, "Admin privileges required")
			c.Abort()
			return
		}
		c.Next()
	}
}
