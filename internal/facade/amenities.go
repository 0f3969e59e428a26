package facade

import (
	"context"
	"errors"

	"hbnb/internal/domain"
	"hbnb/internal/pkg/apperr"
	"hbnb/internal/repository"
)

func (f *Facade) CreateAmenity(ctx context.Context, name string) (*domain.Amenity, error) {
	a, err := domain.NewAmenity(name)
	if err != nil {
		return nil, err
	}
	err = f.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := ensureAmenityNameFree(ctx, tx, a.Name, ""); err != nil {
			return err
		}
		return tx.Amenities.Add(ctx, a)
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (f *Facade) GetAmenity(ctx context.Context, id string) (*domain.Amenity, error) {
	return f.store.Amenities.Get(ctx, id)
}

func (f *Facade) GetAllAmenities(ctx context.Context) ([]domain.Amenity, error) {
	return f.store.Amenities.GetAll(ctx)
}

func (f *Facade) UpdateAmenity(ctx context.Context, id string, patch domain.AmenityPatch) (*domain.Amenity, error) {
	var out *domain.Amenity
	err := f.store.Transaction(ctx, func(tx *repository.Store) error {
		current, err := tx.Amenities.Get(ctx, id)
		if err != nil {
			return err
		}
		if patch.IsEmpty() {
			out = current
			return nil
		}
		if err := ensureAmenityNameFree(ctx, tx, *patch.Name, id); err != nil {
			return err
		}
		out, err = tx.Amenities.Update(ctx, id, patch)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteAmenity detaches the amenity from every place, then removes it.
func (f *Facade) DeleteAmenity(ctx context.Context, id string) error {
	return f.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Amenities.Get(ctx, id); err != nil {
			return err
		}
		if err := tx.Amenities.DetachFromPlaces(ctx, id); err != nil {
			return err
		}
		_, err := tx.Amenities.Delete(ctx, id)
		return err
	})
}

func ensureAmenityNameFree(ctx context.Context, tx *repository.Store, name, selfID string) error {
	existing, err := tx.Amenities.FindByAttribute(ctx, "name", name)
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != selfID:
		return apperr.Conflict("amenity %q already exists", existing.Name)
	default:
		return nil
	}
}
