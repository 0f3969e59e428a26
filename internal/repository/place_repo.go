package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hbnb/internal/domain"
)

var placeColumns = map[string]string{
	"id":       "id",
	"title":    "title",
	"owner_id": "owner_id",
	"price":    "price",
}

type PlaceRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) *PlaceRepository {
	return &PlaceRepository{db: db}
}

// withRelations preloads the owner, the amenities and the reviews (with
// their authors) of every place the query returns.
func withRelations(db *gorm.DB) *gorm.DB {
	byCreation := func(db *gorm.DB) *gorm.DB { return db.Order("created_at, id") }
	return db.
		Preload("Owner").
		Preload("Amenities", byCreation).
		Preload("Reviews", byCreation).
		Preload("Reviews.User")
}

// Add inserts the place together with its amenity links.
func (r *PlaceRepository) Add(ctx context.Context, p *domain.Place) error {
	m := toPlaceModel(p)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&m).Error; err != nil {
			return translateError(err, "place")
		}
		return insertLinks(tx, p.ID, p.AmenityIDs())
	})
}

func (r *PlaceRepository) Get(ctx context.Context, id string) (*domain.Place, error) {
	var m placeModel
	if err := withRelations(r.db.WithContext(ctx)).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err, "place")
	}
	p := toDomainPlace(m)
	return &p, nil
}

func (r *PlaceRepository) GetAll(ctx context.Context) ([]domain.Place, error) {
	var rows []placeModel
	if err := withRelations(r.db.WithContext(ctx)).Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, translateError(err, "place")
	}
	return toDomainPlaces(rows), nil
}

// Update applies patch to the stored place, validates the result and
// saves it with a fresh updated_at. The owner and the amenity links are
// not touched.
func (r *PlaceRepository) Update(ctx context.Context, id string, patch domain.PlacePatch) (*domain.Place, error) {
	var out *domain.Place
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m placeModel
		if err := forUpdate(tx).Where("id = ?", id).First(&m).Error; err != nil {
			return translateError(err, "place")
		}

		p := patch.Apply(toDomainPlace(m))
		if err := p.Validate(); err != nil {
			return err
		}
		p.Touch()

		updated := toPlaceModel(&p)
		if err := writeBack(tx, &updated, "place"); err != nil {
			return err
		}

		var reloaded placeModel
		if err := withRelations(tx).Where("id = ?", id).First(&reloaded).Error; err != nil {
			return translateError(err, "place")
		}
		fresh := toDomainPlace(reloaded)
		out = &fresh
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Touch bumps updated_at without changing any attribute. It is used when
// only the place's associations change.
func (r *PlaceRepository) Touch(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m placeModel
		if err := forUpdate(tx).Where("id = ?", id).First(&m).Error; err != nil {
			return translateError(err, "place")
		}
		err := tx.Model(&placeModel{}).
			Where("id = ?", id).
			Update("updated_at", domain.After(m.UpdatedAt.UTC())).Error
		return translateError(err, "place")
	})
}

func (r *PlaceRepository) Delete(ctx context.Context, id string) (bool, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&placeModel{})
	if tx.Error != nil {
		return false, translateError(tx.Error, "place")
	}
	return tx.RowsAffected > 0, nil
}

// SetAmenities replaces the amenity links of a place.
func (r *PlaceRepository) SetAmenities(ctx context.Context, placeID string, amenityIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("place_id = ?", placeID).Delete(&placeAmenityModel{}).Error; err != nil {
			return translateError(err, "place amenity")
		}
		return insertLinks(tx, placeID, amenityIDs)
	})
}

// DetachAmenities removes every amenity link of a place.
func (r *PlaceRepository) DetachAmenities(ctx context.Context, placeID string) error {
	err := r.db.WithContext(ctx).Where("place_id = ?", placeID).Delete(&placeAmenityModel{}).Error
	return translateError(err, "place amenity")
}

func (r *PlaceRepository) FindByAttribute(ctx context.Context, name string, value any) (*domain.Place, error) {
	col, err := column(placeColumns, name)
	if err != nil {
		return nil, err
	}
	var m placeModel
	tx := withRelations(r.db.WithContext(ctx)).
		Where(col+" = ?", value).
		Order("created_at, id").
		First(&m)
	if tx.Error != nil {
		return nil, translateError(tx.Error, "place")
	}
	p := toDomainPlace(m)
	return &p, nil
}

func (r *PlaceRepository) FindAllByAttribute(ctx context.Context, name string, value any) ([]domain.Place, error) {
	col, err := column(placeColumns, name)
	if err != nil {
		return nil, err
	}
	var rows []placeModel
	tx := withRelations(r.db.WithContext(ctx)).
		Where(col+" = ?", value).
		Order("created_at, id").
		Find(&rows)
	if tx.Error != nil {
		return nil, translateError(tx.Error, "place")
	}
	return toDomainPlaces(rows), nil
}

func insertLinks(tx *gorm.DB, placeID string, amenityIDs []string) error {
	if len(amenityIDs) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(amenityIDs))
	links := make([]placeAmenityModel, 0, len(amenityIDs))
	for _, id := range amenityIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		links = append(links, placeAmenityModel{PlaceID: placeID, AmenityID: id})
	}
	if err := tx.Create(&links).Error; err != nil {
		return translateError(err, "place amenity")
	}
	return nil
}

func toDomainPlaces(rows []placeModel) []domain.Place {
	out := make([]domain.Place, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainPlace(m))
	}
	return out
}
