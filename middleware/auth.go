package middleware

import (
	"net/http"
	"strings"

	"slotwise/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthHostMiddleware authenticates the host on schedule-management
// endpoints and stores the host ID in the request context.
func JWTAuthHostMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		hostID, err := utils.ExtractHostIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("hostID", hostID)
		c.Next()
	}
}
