package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store groups the entity repositories over one connection or one
// transaction.
type Store struct {
	db *gorm.DB

	Users     *UserRepository
	Places    *PlaceRepository
	Reviews   *ReviewRepository
	Amenities *AmenityRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:        db,
		Users:     NewUserRepository(db),
		Places:    NewPlaceRepository(db),
		Reviews:   NewReviewRepository(db),
		Amenities: NewAmenityRepository(db),
	}
}

// Transaction runs fn against a Store bound to a single transaction. The
// transaction commits when fn returns nil and rolls back otherwise; fn's
// error is returned as is. fn must only use the Store it is given.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// DB exposes the underlying connection for health checks and migrations.
func (s *Store) DB() *gorm.DB {
	return s.db
}
