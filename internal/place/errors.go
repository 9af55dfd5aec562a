package place

import "errors"

// Domain-specific errors for the place package.
var (
	ErrPlaceNotFound     = errors.New("place not found")
	ErrNameRequired      = errors.New("place name is required")
	ErrInvalidCoordinate = errors.New("latitude/longitude out of range")
	ErrInvalidRadius     = errors.New("radius must be positive")
)
