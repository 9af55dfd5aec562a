package place

import "context"

// UseCase defines the business logic interface for the favourite place
// domain.
type UseCase interface {
	Create(ctx context.Context, input CreatePlaceInput) (PlaceOutput, error)
	List(ctx context.Context) (ListPlacesOutput, error)
	Detail(ctx context.Context, id string) (PlaceOutput, error)
	Update(ctx context.Context, input UpdatePlaceInput) (PlaceOutput, error)
	Delete(ctx context.Context, id string) error
}
