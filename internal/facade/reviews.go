package facade

import (
	"context"
	"errors"

	"hbnb/internal/domain"
	"hbnb/internal/pkg/apperr"
	"hbnb/internal/repository"
)

type ReviewInput struct {
	Text    string
	Rating  int
	PlaceID string
	UserID  string
}

// CreateReview stores a review by in.UserID on in.PlaceID. A place owner
// may not review their own place, and a user reviews a place at most
// once.
func (f *Facade) CreateReview(ctx context.Context, in ReviewInput) (*domain.Review, error) {
	var out *domain.Review
	err := f.store.Transaction(ctx, func(tx *repository.Store) error {
		author, err := tx.Users.Get(ctx, in.UserID)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return apperr.NotFound("user %s not found", in.UserID)
			}
			return err
		}
		place, err := tx.Places.Get(ctx, in.PlaceID)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return apperr.NotFound("place %s not found", in.PlaceID)
			}
			return err
		}

		if place.OwnerID == author.ID {
			return apperr.Forbidden("place owner cannot review own place")
		}
		reviewed, err := tx.Reviews.ExistsByUserAndPlace(ctx, author.ID, place.ID)
		if err != nil {
			return err
		}
		if reviewed {
			return apperr.Conflict("user has already reviewed this place")
		}

		r, err := domain.NewReview(in.Text, in.Rating, place, author)
		if err != nil {
			return err
		}
		if err := tx.Reviews.Add(ctx, r); err != nil {
			return err
		}
		out = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (f *Facade) GetReview(ctx context.Context, id string) (*domain.Review, error) {
	return f.store.Reviews.Get(ctx, id)
}

func (f *Facade) GetAllReviews(ctx context.Context) ([]domain.Review, error) {
	return f.store.Reviews.GetAll(ctx)
}

// GetReviewsByPlace lists the reviews of an existing place.
func (f *Facade) GetReviewsByPlace(ctx context.Context, placeID string) ([]domain.Review, error) {
	if _, err := f.store.Places.Get(ctx, placeID); err != nil {
		return nil, err
	}
	return f.store.Reviews.ListByPlace(ctx, placeID)
}

// UpdateReview changes the text and the rating of a review.
func (f *Facade) UpdateReview(ctx context.Context, id string, patch domain.ReviewPatch) (*domain.Review, error) {
	if patch.IsEmpty() {
		return f.store.Reviews.Get(ctx, id)
	}
	return f.store.Reviews.Update(ctx, id, patch)
}

// DeleteReview removes a review. It reports false, without an error,
// when there was nothing to remove.
func (f *Facade) DeleteReview(ctx context.Context, id string) (bool, error) {
	return f.store.Reviews.Delete(ctx, id)
}

func (f *Facade) UserHasReviewedPlace(ctx context.Context, userID, placeID string) (bool, error) {
	return f.store.Reviews.ExistsByUserAndPlace(ctx, userID, placeID)
}
