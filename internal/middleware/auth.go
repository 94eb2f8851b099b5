package middleware

import (
	"net/http"

	"minimart-be/internal/auth"

	"github.com/gin-gonic/gin"
)

// ClaimsKey is where validated token claims live in the gin context.
const ClaimsKey = "authClaims"

// RequireRole rejects requests that lack a valid bearer token with the given
// role claim.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := auth.ExtractAccessToken(c.Request)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authorization token required",
			})
			return
		}

		claims, err := auth.ParseAccessToken(tokenStr)
		if err != nil || claims.Role != role {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or expired token",
			})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// ClaimsFrom returns the validated claims set by RequireRole.
func ClaimsFrom(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
