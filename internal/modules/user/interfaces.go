package user

import (
	"context"

	"hbnb/internal/domain"
	"hbnb/internal/facade"
)

// Service is the part of the facade the user endpoints need.
type Service interface {
	CreateUser(ctx context.Context, in facade.UserInput) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetAllUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, id string, in facade.UserUpdate) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}
