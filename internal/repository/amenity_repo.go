package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hbnb/internal/domain"
	"hbnb/internal/pkg/apperr"
)

var amenityColumns = map[string]string{
	"id":   "id",
	"name": "name",
}

type AmenityRepository struct {
	db *gorm.DB
}

func NewAmenityRepository(db *gorm.DB) *AmenityRepository {
	return &AmenityRepository{db: db}
}

func (r *AmenityRepository) Add(ctx context.Context, a *domain.Amenity) error {
	m := toAmenityModel(a)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return translateError(err, "amenity")
	}
	return nil
}

func (r *AmenityRepository) Get(ctx context.Context, id string) (*domain.Amenity, error) {
	var m amenityModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err, "amenity")
	}
	a := toDomainAmenity(m)
	return &a, nil
}

func (r *AmenityRepository) GetAll(ctx context.Context) ([]domain.Amenity, error) {
	var rows []amenityModel
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, translateError(err, "amenity")
	}
	return toDomainAmenities(rows), nil
}

// GetMany loads the amenities with the given ids, in the order the ids
// are given. A single unknown id fails the whole call with NotFound.
func (r *AmenityRepository) GetMany(ctx context.Context, ids []string) ([]domain.Amenity, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []amenityModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, translateError(err, "amenity")
	}

	byID := make(map[string]amenityModel, len(rows))
	for _, m := range rows {
		byID[m.ID] = m
	}
	out := make([]domain.Amenity, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		m, ok := byID[id]
		if !ok {
			return nil, apperr.NotFound("amenity %s not found", id)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, toDomainAmenity(m))
	}
	return out, nil
}

func (r *AmenityRepository) Update(ctx context.Context, id string, patch domain.AmenityPatch) (*domain.Amenity, error) {
	var out domain.Amenity
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m amenityModel
		if err := forUpdate(tx).Where("id = ?", id).First(&m).Error; err != nil {
			return translateError(err, "amenity")
		}

		a := patch.Apply(toDomainAmenity(m))
		if err := a.Validate(); err != nil {
			return err
		}
		a.Touch()

		updated := toAmenityModel(&a)
		if err := writeBack(tx, &updated, "amenity"); err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *AmenityRepository) Delete(ctx context.Context, id string) (bool, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&amenityModel{})
	if tx.Error != nil {
		return false, translateError(tx.Error, "amenity")
	}
	return tx.RowsAffected > 0, nil
}

// DetachFromPlaces removes the amenity from every place that lists it.
func (r *AmenityRepository) DetachFromPlaces(ctx context.Context, amenityID string) error {
	err := r.db.WithContext(ctx).Where("amenity_id = ?", amenityID).Delete(&placeAmenityModel{}).Error
	return translateError(err, "place amenity")
}

// ListByPlace returns the amenities linked to a place.
func (r *AmenityRepository) ListByPlace(ctx context.Context, placeID string) ([]domain.Amenity, error) {
	var rows []amenityModel
	err := r.db.WithContext(ctx).
		Joins("JOIN place_amenity ON place_amenity.amenity_id = amenities.id").
		Where("place_amenity.place_id = ?", placeID).
		Order("amenities.created_at, amenities.id").
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err, "amenity")
	}
	return toDomainAmenities(rows), nil
}

func (r *AmenityRepository) FindByAttribute(ctx context.Context, name string, value any) (*domain.Amenity, error) {
	col, err := column(amenityColumns, name)
	if err != nil {
		return nil, err
	}
	var m amenityModel
	tx := r.db.WithContext(ctx).
		Where(col+" = ?", trimmed(value)).
		Order("created_at, id").
		First(&m)
	if tx.Error != nil {
		return nil, translateError(tx.Error, "amenity")
	}
	a := toDomainAmenity(m)
	return &a, nil
}

func (r *AmenityRepository) FindAllByAttribute(ctx context.Context, name string, value any) ([]domain.Amenity, error) {
	col, err := column(amenityColumns, name)
	if err != nil {
		return nil, err
	}
	var rows []amenityModel
	tx := r.db.WithContext(ctx).
		Where(col+" = ?", trimmed(value)).
		Order("created_at, id").
		Find(&rows)
	if tx.Error != nil {
		return nil, translateError(tx.Error, "amenity")
	}
	return toDomainAmenities(rows), nil
}

func trimmed(value any) any {
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}
	return value
}

func toDomainAmenities(rows []amenityModel) []domain.Amenity {
	out := make([]domain.Amenity, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainAmenity(m))
	}
	return out
}
