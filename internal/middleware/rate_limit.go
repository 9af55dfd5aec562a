package middleware

import (
	"github.com/gin-gonic/gin"

	"georeminder/pkg/response"
)

// WebhookRateLimit caps the rate of geofence webhook deliveries. Location
// platforms can retry aggressively; excess events are safe to shed because
// the one-per-day gate makes redelivery harmless.
func (m Middleware) WebhookRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.limiter.Allow() {
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
