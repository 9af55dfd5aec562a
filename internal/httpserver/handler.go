package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"georeminder/config"
	"georeminder/internal/middleware"
	"georeminder/internal/model"
	placeHTTP "georeminder/internal/place/delivery/http"
	taskHTTP "georeminder/internal/task/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	mw := middleware.New(srv.l, config.HTTPServerConfig{
		APIKey:               srv.apiKey,
		WebhookRatePerSecond: srv.webhookRatePerSecond,
		WebhookBurst:         srv.webhookBurst,
	})

	srv.registerDomainRoutes(mw)
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP server mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP server mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")

	taskHTTP.RegisterRoutes(api, srv.taskHandler, mw)
	placeHTTP.RegisterRoutes(api, srv.placeHandler, mw)

	// Location reports share the API key; webhook deliveries authenticate
	// with the shared secret and are rate limited instead.
	api.POST("/location", mw.Auth(), srv.geofenceHandler.HandleLocationReport)
	srv.gin.POST("/webhook/geofence", mw.WebhookRateLimit(), srv.geofenceHandler.HandleGeofenceEvent)

	srv.l.Infof(ctx, "Task, place and geofence routes registered")
}
