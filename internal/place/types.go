package place

import "georeminder/internal/model"

// CreatePlaceInput is the input for saving a favourite place.
type CreatePlaceInput struct {
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
	Radius    float64
}

// UpdatePlaceInput is the input for editing a favourite place.
type UpdatePlaceInput struct {
	ID        string
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
	Radius    float64
}

// --- Outputs ---

type PlaceOutput struct {
	Place model.FavouritePlace
}

type ListPlacesOutput struct {
	Places []model.FavouritePlace
}
