package http

import (
	"time"

	"georeminder/internal/model"
	"georeminder/internal/place"
)

// --- Request DTOs ---

type placeBodyReq struct {
	Name      string  `json:"name"      binding:"required,min=1,max=255"`
	Address   string  `json:"address"   binding:"max=512"`
	Latitude  float64 `json:"latitude"  binding:"min=-90,max=90"`
	Longitude float64 `json:"longitude" binding:"min=-180,max=180"`
	Radius    float64 `json:"radius"    binding:"required,gt=0"`
}

func (r placeBodyReq) toCreateInput() place.CreatePlaceInput {
	return place.CreatePlaceInput{
		Name:      r.Name,
		Address:   r.Address,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Radius:    r.Radius,
	}
}

func (r placeBodyReq) toUpdateInput(id string) place.UpdatePlaceInput {
	return place.UpdatePlaceInput{
		ID:        id,
		Name:      r.Name,
		Address:   r.Address,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Radius:    r.Radius,
	}
}

// --- Response DTOs ---

type placeResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Radius    float64   `json:"radius"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newPlaceResp(p model.FavouritePlace) placeResp {
	return placeResp{
		ID:        p.ID,
		Name:      p.Name,
		Address:   p.Address,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Radius:    p.Radius,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type detailResp struct {
	Place placeResp `json:"place"`
}

func (h *handler) newDetailResp(out place.PlaceOutput) detailResp {
	return detailResp{Place: newPlaceResp(out.Place)}
}

type listResp struct {
	Places []placeResp `json:"places"`
	Total  int         `json:"total"`
}

func (h *handler) newListResp(out place.ListPlacesOutput) listResp {
	places := make([]placeResp, len(out.Places))
	for i, p := range out.Places {
		places[i] = newPlaceResp(p)
	}
	return listResp{Places: places, Total: len(places)}
}
