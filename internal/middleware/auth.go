package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/emrebktas/modpack-assistant/internal/domain"
)

const userIDKey = "user_id"

// UserID returns the authenticated user's ID set by Auth.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// Auth validates the bearer token and checks that the account is still
// APPROVED, so a token echoed at registration or issued before a
// rejection cannot reach protected resources.
func Auth(tokens domain.TokenService, users domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing Authorization header"})
			c.Abort()
			return
		}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "malformed Authorization header"})
			c.Abort()
			return
		}

		userID, err := tokens.Validate(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}
		if user.Status != domain.StatusApproved {
			c.JSON(http.StatusForbidden, gin.H{"error": "account is not approved"})
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}
