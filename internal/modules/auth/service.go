package auth

import (
	"context"
	"errors"

	"hbnb/internal/domain"
	"hbnb/internal/pkg/apperr"
)

// Service issues access tokens for valid credentials.
type Service struct {
	users UserAuthenticator
	jwt   jwtService
}

type LoginResult struct {
	User        *domain.User
	AccessToken string
}

func NewService(users UserAuthenticator, jwt jwtService) *Service {
	return &Service{users: users, jwt: jwt}
}

func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.users.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, apperr.ErrUnauthenticated) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	token, err := s.jwt.GenerateToken(u.ID, u.IsAdmin)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: u, AccessToken: token}, nil
}

// ExpiresIn is the lifetime of issued tokens in seconds.
func (s *Service) ExpiresIn() int64 {
	return int64(s.jwt.TTL().Seconds())
}
