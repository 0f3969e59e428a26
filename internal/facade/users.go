package facade

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"hbnb/internal/domain"
	"hbnb/internal/pkg/apperr"
	"hbnb/internal/repository"
)

type UserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	IsAdmin   bool
}

// UserUpdate carries the user attributes a caller may change. Password is
// plaintext and is hashed before it is stored.
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
	IsAdmin   *bool
}

func (u UserUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Email == nil && u.Password == nil && u.IsAdmin == nil
}

func (f *Facade) CreateUser(ctx context.Context, in UserInput) (*domain.User, error) {
	hash, err := f.hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u, err := domain.NewUser(in.FirstName, in.LastName, in.Email, hash, in.IsAdmin)
	if err != nil {
		return nil, err
	}

	err = f.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := ensureEmailFree(ctx, tx, u.Email, ""); err != nil {
			return err
		}
		return tx.Users.Add(ctx, u)
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (f *Facade) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return f.store.Users.Get(ctx, id)
}

func (f *Facade) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return f.store.Users.GetByEmail(ctx, email)
}

func (f *Facade) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	return f.store.Users.GetAll(ctx)
}

// UpdateUser changes any of the user's mutable attributes. A new email
// must not belong to another user.
func (f *Facade) UpdateUser(ctx context.Context, id string, in UserUpdate) (*domain.User, error) {
	patch := domain.UserPatch{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		IsAdmin:   in.IsAdmin,
	}
	if in.Password != nil {
		hash, err := f.hashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}

	var out *domain.User
	err := f.store.Transaction(ctx, func(tx *repository.Store) error {
		current, err := tx.Users.Get(ctx, id)
		if err != nil {
			return err
		}
		if patch.IsEmpty() {
			out = current
			return nil
		}
		if patch.Email != nil {
			if err := ensureEmailFree(ctx, tx, *patch.Email, id); err != nil {
				return err
			}
		}
		out, err = tx.Users.Update(ctx, id, patch)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteUser removes the user together with the places they own (and
// everything hanging off those places) and the reviews they wrote.
func (f *Facade) DeleteUser(ctx context.Context, id string) error {
	return f.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Users.Get(ctx, id); err != nil {
			return err
		}

		owned, err := tx.Places.FindAllByAttribute(ctx, "owner_id", id)
		if err != nil {
			return err
		}
		for _, p := range owned {
			if err := deletePlace(ctx, tx, p.ID); err != nil {
				return err
			}
		}

		if _, err := tx.Reviews.DeleteByUser(ctx, id); err != nil {
			return err
		}
		if _, err := tx.Users.Delete(ctx, id); err != nil {
			return err
		}
		return nil
	})
}

// EnsureAdmin makes sure an administrator with the given email exists,
// creating it or promoting an existing user. The password of an existing
// user is left as is. created reports whether a new user was made.
func (f *Facade) EnsureAdmin(ctx context.Context, in UserInput) (u *domain.User, created bool, err error) {
	existing, err := f.store.Users.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		if existing.IsAdmin {
			return existing, false, nil
		}
		yes := true
		u, err = f.store.Users.Update(ctx, existing.ID, domain.UserPatch{IsAdmin: &yes})
		return u, false, err
	case errors.Is(err, apperr.ErrNotFound):
		in.IsAdmin = true
		u, err = f.CreateUser(ctx, in)
		return u, err == nil, err
	default:
		return nil, false, err
	}
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// Authenticate checks an email and password pair. An unknown email and a
// wrong password both yield the same apperr.ErrUnauthenticated error.
func (f *Facade) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	u, err := f.store.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			// Keep the response time of unknown emails in line with
			// wrong passwords.
			dummyHashOnce.Do(func() {
				dummyHash, _ = bcrypt.GenerateFromPassword([]byte("hbnb-dummy-password"), f.bcryptCost)
			})
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, errInvalidCredentials()
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, errInvalidCredentials()
	}
	return u, nil
}

func errInvalidCredentials() error {
	return apperr.Unauthenticated("invalid email or password")
}

func ensureEmailFree(ctx context.Context, tx *repository.Store, email, selfID string) error {
	existing, err := tx.Users.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != selfID:
		return apperr.Conflict("email %s is already registered", existing.Email)
	default:
		return nil
	}
}
