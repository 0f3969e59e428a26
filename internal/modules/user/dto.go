package user

import (
	"time"

	"hbnb/internal/domain"
	"hbnb/internal/facade"
)

type CreateUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	IsAdmin   bool   `json:"is_admin"`
}

func (r CreateUserRequest) toInput() facade.UserInput {
	return facade.UserInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
		IsAdmin:   r.IsAdmin,
	}
}

// UpdateUserRequest lists the fields a client may send. Anything else in
// the body, such as id or created_at, is ignored.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	IsAdmin   *bool   `json:"is_admin"`
}

// touchesCredentials reports whether the request changes anything beyond
// the user's names.
func (r UpdateUserRequest) touchesCredentials() bool {
	return r.Email != nil || r.Password != nil || r.IsAdmin != nil
}

func (r UpdateUserRequest) toUpdate() facade.UserUpdate {
	return facade.UserUpdate{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
		IsAdmin:   r.IsAdmin,
	}
}

type UserResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
