package facade

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"hbnb/internal/pkg/apperr"
	"hbnb/internal/repository"
)

// Facade enforces the cross-entity rules of the domain: referential
// integrity, ownership, uniqueness and cascading deletes. Access control
// is applied by the caller before any method is invoked.
type Facade struct {
	store      *repository.Store
	bcryptCost int
}

type Option func(*Facade)

// WithBcryptCost overrides the password hashing cost. Tests use
// bcrypt.MinCost.
func WithBcryptCost(cost int) Option {
	return func(f *Facade) { f.bcryptCost = cost }
}

func New(store *repository.Store, opts ...Option) *Facade {
	f := &Facade{store: store, bcryptCost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Facade) hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", apperr.Invalid("password", "is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), f.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", apperr.Invalid("password", "must be at most 72 bytes")
		}
		return "", err
	}
	return string(hash), nil
}
