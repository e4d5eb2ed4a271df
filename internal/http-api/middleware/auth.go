package middleware

import (
	"net/http"
	"strings"

	"shopcatalog/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// RequireAuth guards the write paths. A request without a valid bearer token
// is rejected with 401 before the handler runs.
func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := resolveIdentity(c, authService)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid authorization header"})
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("username", claims.Username)
		c.Next()
	}
}

// OptionalAuth resolves the caller's identity when a valid bearer token is
// present and lets the request through anonymously otherwise. The details
// read path uses it: anonymous readers just get no personal score.
func OptionalAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := resolveIdentity(c, authService); ok {
			c.Set("userID", claims.UserID)
			c.Set("username", claims.Username)
		}
		c.Next()
	}
}

func resolveIdentity(c *gin.Context, authService service.AuthService) (*service.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	// format: "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := authService.ValidateToken(parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}
