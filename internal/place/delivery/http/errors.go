package http

import (
	"errors"

	"georeminder/internal/place"
	"georeminder/pkg/response"
)

// mapError translates domain/use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, place.ErrPlaceNotFound):
		return response.NewHTTPError(404, "place not found")
	case errors.Is(err, place.ErrNameRequired),
		errors.Is(err, place.ErrInvalidCoordinate),
		errors.Is(err, place.ErrInvalidRadius):
		return response.NewHTTPError(400, err.Error())
	default:
		return response.NewHTTPError(500, "internal server error")
	}
}
