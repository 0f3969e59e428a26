package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hbnb/internal/domain"
)

var userColumns = map[string]string{
	"id":         "id",
	"email":      "email",
	"first_name": "first_name",
	"last_name":  "last_name",
	"is_admin":   "is_admin",
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Add(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return translateError(err, "user")
	}
	return nil
}

func (r *UserRepository) Get(ctx context.Context, id string) (*domain.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err, "user")
	}
	u := toDomainUser(m)
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).
		Where("email = ?", domain.NormalizeEmail(email)).
		First(&m)
	if tx.Error != nil {
		return nil, translateError(tx.Error, "user")
	}
	u := toDomainUser(m)
	return &u, nil
}

func (r *UserRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	var rows []userModel
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, translateError(err, "user")
	}
	out := make([]domain.User, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainUser(m))
	}
	return out, nil
}

// Update applies patch to the stored user, validates the result and
// saves it with a fresh updated_at. Nothing is written when validation
// fails.
func (r *UserRepository) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	var out domain.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m userModel
		if err := forUpdate(tx).Where("id = ?", id).First(&m).Error; err != nil {
			return translateError(err, "user")
		}

		u := patch.Apply(toDomainUser(m))
		if err := u.Validate(); err != nil {
			return err
		}
		u.Touch()

		updated := toUserModel(&u)
		if err := writeBack(tx, &updated, "user"); err != nil {
			return err
		}
		out = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) (bool, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&userModel{})
	if tx.Error != nil {
		return false, translateError(tx.Error, "user")
	}
	return tx.RowsAffected > 0, nil
}

// FindByAttribute returns the first user, in creation order, whose
// attribute equals value.
func (r *UserRepository) FindByAttribute(ctx context.Context, name string, value any) (*domain.User, error) {
	col, err := column(userColumns, name)
	if err != nil {
		return nil, err
	}
	var m userModel
	tx := r.db.WithContext(ctx).
		Where(col+" = ?", userValue(col, value)).
		Order("created_at, id").
		First(&m)
	if tx.Error != nil {
		return nil, translateError(tx.Error, "user")
	}
	u := toDomainUser(m)
	return &u, nil
}

func (r *UserRepository) FindAllByAttribute(ctx context.Context, name string, value any) ([]domain.User, error) {
	col, err := column(userColumns, name)
	if err != nil {
		return nil, err
	}
	var rows []userModel
	tx := r.db.WithContext(ctx).
		Where(col+" = ?", userValue(col, value)).
		Order("created_at, id").
		Find(&rows)
	if tx.Error != nil {
		return nil, translateError(tx.Error, "user")
	}
	out := make([]domain.User, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainUser(m))
	}
	return out, nil
}

func userValue(col string, value any) any {
	if s, ok := value.(string); ok && col == "email" {
		return domain.NormalizeEmail(s)
	}
	return trimmed(value)
}
