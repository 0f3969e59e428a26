package facade

import (
	"context"
	"errors"

	"hbnb/internal/domain"
	"hbnb/internal/pkg/apperr"
	"hbnb/internal/repository"
)

type PlaceInput struct {
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	OwnerID     string
	AmenityIDs  []string
}

// PlaceUpdate patches a place. A non-nil AmenityIDs replaces the whole
// amenity list; nil leaves it alone.
type PlaceUpdate struct {
	domain.PlacePatch
	AmenityIDs *[]string
}

// CreatePlace stores a new place owned by in.OwnerID. The owner and every
// listed amenity must exist.
func (f *Facade) CreatePlace(ctx context.Context, in PlaceInput) (*domain.Place, error) {
	var out *domain.Place
	err := f.store.Transaction(ctx, func(tx *repository.Store) error {
		owner, err := tx.Users.Get(ctx, in.OwnerID)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return apperr.NotFound("owner %s not found", in.OwnerID)
			}
			return err
		}
		amenities, err := tx.Amenities.GetMany(ctx, in.AmenityIDs)
		if err != nil {
			return err
		}

		p, err := domain.NewPlace(domain.PlaceInput{
			Title:       in.Title,
			Description: in.Description,
			Price:       in.Price,
			Latitude:    in.Latitude,
			Longitude:   in.Longitude,
		}, owner)
		if err != nil {
			return err
		}
		p.Amenities = amenities

		if err := tx.Places.Add(ctx, p); err != nil {
			return err
		}
		out, err = tx.Places.Get(ctx, p.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetPlace returns the place with its owner, amenities and reviews.
func (f *Facade) GetPlace(ctx context.Context, id string) (*domain.Place, error) {
	return f.store.Places.Get(ctx, id)
}

func (f *Facade) GetAllPlaces(ctx context.Context) ([]domain.Place, error) {
	return f.store.Places.GetAll(ctx)
}

// UpdatePlace changes the place's attributes and, optionally, its
// amenity list. The owner never changes.
func (f *Facade) UpdatePlace(ctx context.Context, id string, in PlaceUpdate) (*domain.Place, error) {
	var out *domain.Place
	err := f.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Places.Get(ctx, id); err != nil {
			return err
		}

		if !in.PlacePatch.IsEmpty() {
			if _, err := tx.Places.Update(ctx, id, in.PlacePatch); err != nil {
				return err
			}
		}

		if in.AmenityIDs != nil {
			amenities, err := tx.Amenities.GetMany(ctx, *in.AmenityIDs)
			if err != nil {
				return err
			}
			ids := make([]string, 0, len(amenities))
			for _, a := range amenities {
				ids = append(ids, a.ID)
			}
			if err := tx.Places.SetAmenities(ctx, id, ids); err != nil {
				return err
			}
			if in.PlacePatch.IsEmpty() {
				if err := tx.Places.Touch(ctx, id); err != nil {
					return err
				}
			}
		}

		var err error
		out, err = tx.Places.Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeletePlace removes the place, its reviews and its amenity links.
func (f *Facade) DeletePlace(ctx context.Context, id string) error {
	return f.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Places.Get(ctx, id); err != nil {
			return err
		}
		return deletePlace(ctx, tx, id)
	})
}

// GetPlaceAmenities lists the amenities of an existing place.
func (f *Facade) GetPlaceAmenities(ctx context.Context, placeID string) ([]domain.Amenity, error) {
	if _, err := f.store.Places.Get(ctx, placeID); err != nil {
		return nil, err
	}
	return f.store.Amenities.ListByPlace(ctx, placeID)
}

func deletePlace(ctx context.Context, tx *repository.Store, id string) error {
	if _, err := tx.Reviews.DeleteByPlace(ctx, id); err != nil {
		return err
	}
	if err := tx.Places.DetachAmenities(ctx, id); err != nil {
		return err
	}
	_, err := tx.Places.Delete(ctx, id)
	return err
}
