package geofence

import (
	"github.com/gin-gonic/gin"

	"georeminder/internal/task"
	pkgLog "georeminder/pkg/log"
)

// Observer is the location hit-test the handler consults for raw location
// reports. Implemented by the geofence detector.
type Observer interface {
	Observe(lat, lng float64) []string
}

// Handler is the public interface for the geofence event delivery layer.
type Handler interface {
	HandleGeofenceEvent(c *gin.Context)
	HandleLocationReport(c *gin.Context)
}

type handler struct {
	l        pkgLog.Logger
	uc       task.UseCase
	observer Observer
	secret   string
}

// New creates a new geofence event handler. An empty secret disables the
// webhook signature check.
func New(l pkgLog.Logger, uc task.UseCase, observer Observer, secret string) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		observer: observer,
		secret:   secret,
	}
}
