package place

import (
	"context"

	"hbnb/internal/domain"
	"hbnb/internal/facade"
)

type Service interface {
	CreatePlace(ctx context.Context, in facade.PlaceInput) (*domain.Place, error)
	GetPlace(ctx context.Context, id string) (*domain.Place, error)
	GetAllPlaces(ctx context.Context) ([]domain.Place, error)
	UpdatePlace(ctx context.Context, id string, in facade.PlaceUpdate) (*domain.Place, error)
	DeletePlace(ctx context.Context, id string) error
	GetPlaceAmenities(ctx context.Context, placeID string) ([]domain.Amenity, error)
}
