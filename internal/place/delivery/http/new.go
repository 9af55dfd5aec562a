package http

import (
	"github.com/gin-gonic/gin"

	"georeminder/internal/place"
	pkgLog "georeminder/pkg/log"
)

// Handler is the public interface for the place HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc place.UseCase
}

// New creates a new HTTP handler for the place domain.
func New(l pkgLog.Logger, uc place.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
