package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"georeminder/internal/model"
	repo "georeminder/internal/place/repository"
)

// CreatePlace inserts a new favourite place row.
func (r *implRepository) CreatePlace(ctx context.Context, p model.FavouritePlace) (model.FavouritePlace, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreatePlace"), err)
		return model.FavouritePlace{}, repo.ErrFailedToInsert
	}
	return p, nil
}

// GetOnePlace fetches a place by id. Not-found returns the zero value
// without an error.
func (r *implRepository) GetOnePlace(ctx context.Context, id string) (model.FavouritePlace, error) {
	var p model.FavouritePlace
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.FavouritePlace{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOnePlace"), err)
		return model.FavouritePlace{}, repo.ErrFailedToGet
	}
	return p, nil
}

// ListPlaces returns all favourite places ordered by name.
func (r *implRepository) ListPlaces(ctx context.Context) ([]model.FavouritePlace, error) {
	var places []model.FavouritePlace
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&places).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListPlaces"), err)
		return nil, repo.ErrFailedToList
	}
	return places, nil
}

// UpdatePlace saves a full place row.
func (r *implRepository) UpdatePlace(ctx context.Context, p model.FavouritePlace) (model.FavouritePlace, error) {
	if err := r.db.WithContext(ctx).Save(&p).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdatePlace"), err)
		return model.FavouritePlace{}, repo.ErrFailedToUpdate
	}
	return p, nil
}

// DeletePlace removes a place row.
func (r *implRepository) DeletePlace(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.FavouritePlace{}).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeletePlace"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
