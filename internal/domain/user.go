package domain

import (
	"strings"

	"hbnb/internal/pkg/apperr"
	"hbnb/internal/pkg/validator"
)

type User struct {
	Base
	FirstName    string `json:"first_name" validate:"required,max=50"`
	LastName     string `json:"last_name" validate:"max=50"`
	Email        string `json:"email" validate:"required,max=120,hbnb_email"`
	PasswordHash string `json:"-"`
	IsAdmin      bool   `json:"is_admin"`
}

// NewUser builds and validates a user. passwordHash must already be
// derived from the plaintext password.
func NewUser(firstName, lastName, email, passwordHash string, isAdmin bool) (*User, error) {
	u := &User{
		Base:         newBase(),
		FirstName:    strings.TrimSpace(firstName),
		LastName:     strings.TrimSpace(lastName),
		Email:        NormalizeEmail(email),
		PasswordHash: passwordHash,
		IsAdmin:      isAdmin,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *User) Validate() error {
	if err := validator.Struct(u); err != nil {
		return err
	}
	if u.PasswordHash == "" {
		return apperr.Invalid("password", "is required")
	}
	return nil
}

// NormalizeEmail trims and lower-cases an address so that uniqueness is
// checked on the canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UserPatch lists the mutable user attributes. Nil fields are left alone.
type UserPatch struct {
	FirstName    *string
	LastName     *string
	Email        *string
	PasswordHash *string
	IsAdmin      *bool
}

func (p UserPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil && p.PasswordHash == nil && p.IsAdmin == nil
}

// Apply returns a patched copy of u; u itself is not modified.
func (p UserPatch) Apply(u User) User {
	if p.FirstName != nil {
		u.FirstName = strings.TrimSpace(*p.FirstName)
	}
	if p.LastName != nil {
		u.LastName = strings.TrimSpace(*p.LastName)
	}
	if p.Email != nil {
		u.Email = NormalizeEmail(*p.Email)
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
	if p.IsAdmin != nil {
		u.IsAdmin = *p.IsAdmin
	}
	return u
}
