package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"georeminder/pkg/response"
)

// Auth checks the X-API-Key header against the configured key. An empty
// configured key disables the check (local development).
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.config.APIKey == "" {
			c.Next()
			return
		}

		got := c.GetHeader("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(got), []byte(m.config.APIKey)) != 1 {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
