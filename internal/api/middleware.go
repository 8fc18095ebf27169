package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/newsroom-api/internal/models"
	"github.com/newsroom-api/internal/service"
)

// userKey is the gin context key the authenticated user is stored under
const userKey = "user"

// authRequired verifies the bearer token and loads the acting user. Every
// policy decision downstream keys off the user it stores in the context.
func authRequired(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required."})
			return
		}

		user, err := auth.UserFromToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token."})
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// currentUser returns the authenticated user stored by authRequired
func currentUser(c *gin.Context) *models.User {
	return c.MustGet(userKey).(*models.User)
}
