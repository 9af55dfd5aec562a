package http

import (
	"github.com/gin-gonic/gin"

	"georeminder/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	places := rg.Group("/places")
	{
		places.POST("", mw.Auth(), h.Create)
		places.GET("", mw.Auth(), h.List)
		places.GET("/:id", mw.Auth(), h.Detail)
		places.PUT("/:id", mw.Auth(), h.Update)
		places.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
