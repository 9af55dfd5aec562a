package repository

import (
	"context"

	"georeminder/internal/model"
)

// Repository defines all data access methods for the FavouritePlace entity.
type Repository interface {
	CreatePlace(ctx context.Context, p model.FavouritePlace) (model.FavouritePlace, error)

	// GetOnePlace returns the zero-value FavouritePlace (ID == "") when not
	// found; not-found is not an error.
	GetOnePlace(ctx context.Context, id string) (model.FavouritePlace, error)

	ListPlaces(ctx context.Context) ([]model.FavouritePlace, error)
	UpdatePlace(ctx context.Context, p model.FavouritePlace) (model.FavouritePlace, error)
	DeletePlace(ctx context.Context, id string) error
}
