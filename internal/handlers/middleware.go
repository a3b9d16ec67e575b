package handlers

import (
	"net/http"
	"strings"

	"erp_backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// AuthMiddleware rejects requests without a live bearer token. The session
// looked up in Redis is stashed on the context for handlers that need it.
func AuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Authentication credentials were not provided."})
			return
		}

		session, err := authService.Authenticate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token."})
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}
