package review

import (
	"context"

	"hbnb/internal/domain"
	"hbnb/internal/facade"
)

type Service interface {
	CreateReview(ctx context.Context, in facade.ReviewInput) (*domain.Review, error)
	GetReview(ctx context.Context, id string) (*domain.Review, error)
	GetAllReviews(ctx context.Context) ([]domain.Review, error)
	GetReviewsByPlace(ctx context.Context, placeID string) ([]domain.Review, error)
	UpdateReview(ctx context.Context, id string, patch domain.ReviewPatch) (*domain.Review, error)
	DeleteReview(ctx context.Context, id string) (bool, error)
}

// PlaceGate loads the place a new review targets so the owner rule can be
// checked before anything is written.
type PlaceGate interface {
	GetPlace(ctx context.Context, id string) (*domain.Place, error)
}
