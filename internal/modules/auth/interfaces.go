package auth

import (
	"context"
	"time"

	"hbnb/internal/domain"
)

// UserAuthenticator checks an email and password pair.
type UserAuthenticator interface {
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

type jwtService interface {
	GenerateToken(userID string, isAdmin bool) (string, error)
	TTL() time.Duration
}
