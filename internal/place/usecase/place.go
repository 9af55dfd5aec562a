package usecase

import (
	"context"

	"github.com/google/uuid"

	"georeminder/internal/model"
	"georeminder/internal/place"
)

func validatePlace(name string, lat, lng, radius float64) error {
	if name == "" {
		return place.ErrNameRequired
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return place.ErrInvalidCoordinate
	}
	if radius <= 0 {
		return place.ErrInvalidRadius
	}
	return nil
}

// Create validates and stores a new favourite place.
func (uc *implUseCase) Create(ctx context.Context, input place.CreatePlaceInput) (place.PlaceOutput, error) {
	if err := validatePlace(input.Name, input.Latitude, input.Longitude, input.Radius); err != nil {
		return place.PlaceOutput{}, err
	}

	p := model.FavouritePlace{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Address:   input.Address,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Radius:    input.Radius,
	}

	created, err := uc.repo.CreatePlace(ctx, p)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreatePlace: %v", err)
		return place.PlaceOutput{}, err
	}

	return place.PlaceOutput{Place: created}, nil
}

// List returns all favourite places.
func (uc *implUseCase) List(ctx context.Context) (place.ListPlacesOutput, error) {
	places, err := uc.repo.ListPlaces(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListPlaces: %v", err)
		return place.ListPlacesOutput{}, err
	}
	return place.ListPlacesOutput{Places: places}, nil
}

// Detail returns a single place by id.
func (uc *implUseCase) Detail(ctx context.Context, id string) (place.PlaceOutput, error) {
	p, err := uc.repo.GetOnePlace(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOnePlace: %v", err)
		return place.PlaceOutput{}, err
	}
	if p.ID == "" {
		return place.PlaceOutput{}, place.ErrPlaceNotFound
	}
	return place.PlaceOutput{Place: p}, nil
}

// Update replaces the fields of an existing place.
func (uc *implUseCase) Update(ctx context.Context, input place.UpdatePlaceInput) (place.PlaceOutput, error) {
	existing, err := uc.repo.GetOnePlace(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOnePlace: %v", err)
		return place.PlaceOutput{}, err
	}
	if existing.ID == "" {
		return place.PlaceOutput{}, place.ErrPlaceNotFound
	}

	if err := validatePlace(input.Name, input.Latitude, input.Longitude, input.Radius); err != nil {
		return place.PlaceOutput{}, err
	}

	existing.Name = input.Name
	existing.Address = input.Address
	existing.Latitude = input.Latitude
	existing.Longitude = input.Longitude
	existing.Radius = input.Radius

	updated, err := uc.repo.UpdatePlace(ctx, existing)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdatePlace: %v", err)
		return place.PlaceOutput{}, err
	}

	return place.PlaceOutput{Place: updated}, nil
}

// Delete removes a favourite place.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOnePlace(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOnePlace: %v", err)
		return err
	}
	if existing.ID == "" {
		return place.ErrPlaceNotFound
	}

	if err := uc.repo.DeletePlace(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeletePlace: %v", err)
		return err
	}
	return nil
}
