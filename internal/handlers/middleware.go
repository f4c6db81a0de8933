package handlers

import (
	"net/http"
	"strings"

	"colis_express/internal/redis"
	"colis_express/internal/services"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "session"

// OptionalAuth resolves the bearer token to a session when one is
// present; anonymous requests pass through untouched.
func OptionalAuth(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if session, err := authService.SessionFromToken(token); err == nil {
				c.Set(sessionContextKey, session)
			}
		}
		c.Next()
	}
}

// RequireAuth rejects requests without a valid session.
func RequireAuth(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		session, err := authService.SessionFromToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or invalid"})
			return
		}

		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := SessionFrom(c)
		if session == nil || !session.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// SessionFrom returns the session attached by the auth middleware, or nil.
func SessionFrom(c *gin.Context) *redis.SessionData {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return nil
	}
	session, ok := value.(*redis.SessionData)
	if !ok {
		return nil
	}
	return session
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}
