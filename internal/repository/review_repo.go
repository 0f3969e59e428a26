package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hbnb/internal/domain"
)

var reviewColumns = map[string]string{
	"id":       "id",
	"place_id": "place_id",
	"user_id":  "user_id",
	"rating":   "rating",
}

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Add(ctx context.Context, rv *domain.Review) error {
	m := toReviewModel(rv)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return translateError(err, "review")
	}
	return nil
}

func (r *ReviewRepository) Get(ctx context.Context, id string) (*domain.Review, error) {
	var m reviewModel
	if err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err, "review")
	}
	rv := toDomainReview(m)
	return &rv, nil
}

func (r *ReviewRepository) GetAll(ctx context.Context) ([]domain.Review, error) {
	return r.list(r.db.WithContext(ctx))
}

// ListByPlace returns the reviews of a place in creation order.
func (r *ReviewRepository) ListByPlace(ctx context.Context, placeID string) ([]domain.Review, error) {
	return r.list(r.db.WithContext(ctx).Where("place_id = ?", placeID))
}

func (r *ReviewRepository) ExistsByUserAndPlace(ctx context.Context, userID, placeID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&reviewModel{}).
		Where("user_id = ? AND place_id = ?", userID, placeID).
		Count(&n).Error
	if err != nil {
		return false, translateError(err, "review")
	}
	return n > 0, nil
}

// Update applies patch to the stored review, validates the result and
// saves it with a fresh updated_at.
func (r *ReviewRepository) Update(ctx context.Context, id string, patch domain.ReviewPatch) (*domain.Review, error) {
	var out domain.Review
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m reviewModel
		if err := forUpdate(tx).Preload("User").Where("id = ?", id).First(&m).Error; err != nil {
			return translateError(err, "review")
		}

		rv := patch.Apply(toDomainReview(m))
		if err := rv.Validate(); err != nil {
			return err
		}
		rv.Touch()

		updated := toReviewModel(&rv)
		if err := writeBack(tx, &updated, "review"); err != nil {
			return err
		}
		out = rv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) (bool, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&reviewModel{})
	if tx.Error != nil {
		return false, translateError(tx.Error, "review")
	}
	return tx.RowsAffected > 0, nil
}

// DeleteByPlace removes every review of a place and reports how many
// were removed.
func (r *ReviewRepository) DeleteByPlace(ctx context.Context, placeID string) (int64, error) {
	tx := r.db.WithContext(ctx).Where("place_id = ?", placeID).Delete(&reviewModel{})
	return tx.RowsAffected, translateError(tx.Error, "review")
}

// DeleteByUser removes every review written by a user.
func (r *ReviewRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&reviewModel{})
	return tx.RowsAffected, translateError(tx.Error, "review")
}

func (r *ReviewRepository) FindByAttribute(ctx context.Context, name string, value any) (*domain.Review, error) {
	col, err := column(reviewColumns, name)
	if err != nil {
		return nil, err
	}
	var m reviewModel
	tx := r.db.WithContext(ctx).
		Preload("User").
		Where(col+" = ?", value).
		Order("created_at, id").
		First(&m)
	if tx.Error != nil {
		return nil, translateError(tx.Error, "review")
	}
	rv := toDomainReview(m)
	return &rv, nil
}

func (r *ReviewRepository) FindAllByAttribute(ctx context.Context, name string, value any) ([]domain.Review, error) {
	col, err := column(reviewColumns, name)
	if err != nil {
		return nil, err
	}
	return r.list(r.db.WithContext(ctx).Where(col+" = ?", value))
}

func (r *ReviewRepository) list(q *gorm.DB) ([]domain.Review, error) {
	var rows []reviewModel
	if err := q.Preload("User").Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, translateError(err, "review")
	}
	out := make([]domain.Review, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainReview(m))
	}
	return out, nil
}
