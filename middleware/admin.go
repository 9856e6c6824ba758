package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminOnlyMiddleware gates a route group to callers whose verified
// credential carries the admin role. It must run after JWTAuthMiddleware.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userType, exists := c.Get("userType")
		if !exists || userType != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
