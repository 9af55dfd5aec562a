package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	placeHTTP "georeminder/internal/place/delivery/http"
	gfDelivery "georeminder/internal/task/delivery/geofence"
	taskHTTP "georeminder/internal/task/delivery/http"
	"georeminder/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	apiKey               string
	webhookRatePerSecond float64
	webhookBurst         int

	taskHandler     taskHTTP.Handler
	placeHandler    placeHTTP.Handler
	geofenceHandler gfDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	APIKey               string
	WebhookRatePerSecond float64
	WebhookBurst         int

	TaskHandler     taskHTTP.Handler
	PlaceHandler    placeHTTP.Handler
	GeofenceHandler gfDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                    logger,
		gin:                  gin.New(),
		port:                 cfg.Port,
		mode:                 cfg.Mode,
		environment:          cfg.Environment,
		apiKey:               cfg.APIKey,
		webhookRatePerSecond: cfg.WebhookRatePerSecond,
		webhookBurst:         cfg.WebhookBurst,
		taskHandler:          cfg.TaskHandler,
		placeHandler:         cfg.PlaceHandler,
		geofenceHandler:      cfg.GeofenceHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskHandler == nil {
		return errors.New("task handler is required")
	}
	if srv.placeHandler == nil {
		return errors.New("place handler is required")
	}
	if srv.geofenceHandler == nil {
		return errors.New("geofence handler is required")
	}
	return nil
}
