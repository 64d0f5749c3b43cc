package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const tokenKey = "sessionToken"

// BearerToken extracts the Authorization bearer credential, if any, for
// handlers to forward to the backend. Authentication itself is the external
// provider's job; requests without a token fall back to the anon key.
func BearerToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			c.Set(tokenKey, strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")))
		}
		c.Next()
	}
}

// SessionToken returns the bearer credential stored by BearerToken, or "".
func SessionToken(c *gin.Context) string {
	return c.GetString(tokenKey)
}
