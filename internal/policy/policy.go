// Package policy decides whether a caller may perform an operation on a
// resource. Every rule returns nil to allow or an apperr Forbidden error
// to deny. Authentication itself is checked by the transport before any
// rule runs.
package policy

import (
	"hbnb/internal/domain"
	"hbnb/internal/pkg/apperr"
)

// Caller is the identity taken from the bearer token. The zero value is
// an anonymous caller.
type Caller struct {
	UserID  string
	IsAdmin bool
}

func (c Caller) Authenticated() bool {
	return c.UserID != ""
}

func (c Caller) is(userID string) bool {
	return c.Authenticated() && c.UserID == userID
}

// CreateUser: registration is public, but only an admin may create
// another admin.
func CreateUser(c Caller, wantsAdmin bool) error {
	if wantsAdmin && !c.IsAdmin {
		return apperr.Forbidden("admin privileges required to create an admin")
	}
	return nil
}

func ReadUser(c Caller, userID string) error {
	if c.IsAdmin || c.is(userID) {
		return nil
	}
	return apperr.Forbidden("cannot view another user")
}

func ListUsers(c Caller) error {
	if c.IsAdmin {
		return nil
	}
	return apperr.Forbidden("admin privileges required")
}

// UpdateUser: users may change their own names; email, password and the
// admin flag are admin territory.
func UpdateUser(c Caller, userID string, touchesCredentials bool) error {
	if c.IsAdmin {
		return nil
	}
	if !c.is(userID) {
		return apperr.Forbidden("cannot modify another user")
	}
	if touchesCredentials {
		return apperr.Forbidden("only an admin can modify email, password or admin status")
	}
	return nil
}

func DeleteUser(c Caller, userID string) error {
	if !c.IsAdmin {
		return apperr.Forbidden("admin privileges required")
	}
	if c.UserID == userID {
		return apperr.Forbidden("admins cannot delete their own account")
	}
	return nil
}

// PlaceOwner resolves the owner of a new place. It is the caller unless
// an admin names someone else; a regular user naming another owner is
// denied.
func PlaceOwner(c Caller, requestedOwnerID string) (string, error) {
	if requestedOwnerID == "" || requestedOwnerID == c.UserID {
		return c.UserID, nil
	}
	if c.IsAdmin {
		return requestedOwnerID, nil
	}
	return "", apperr.Forbidden("cannot create a place on behalf of another user")
}

// ModifyPlace covers update and delete. requestedOwnerID is the owner_id
// the caller sent, if any; only an admin may send one that differs.
func ModifyPlace(c Caller, p *domain.Place, requestedOwnerID string) error {
	if c.IsAdmin {
		return nil
	}
	if !c.is(p.OwnerID) {
		return apperr.Forbidden("only the owner can modify this place")
	}
	if requestedOwnerID != "" && requestedOwnerID != p.OwnerID {
		return apperr.Forbidden("only an admin can change the owner of a place")
	}
	return nil
}

// ReviewAuthor resolves the author of a new review, the same way
// PlaceOwner does for places.
func ReviewAuthor(c Caller, requestedUserID string) (string, error) {
	if requestedUserID == "" || requestedUserID == c.UserID {
		return c.UserID, nil
	}
	if c.IsAdmin {
		return requestedUserID, nil
	}
	return "", apperr.Forbidden("cannot write a review on behalf of another user")
}

// CreateReview denies the place owner. Existence and duplicate checks
// belong to the facade.
func CreateReview(p *domain.Place, authorID string) error {
	if p.OwnerID == authorID {
		return apperr.Forbidden("place owner cannot review own place")
	}
	return nil
}

func ModifyReview(c Caller, r *domain.Review) error {
	if c.IsAdmin || c.is(r.UserID) {
		return nil
	}
	return apperr.Forbidden("only the author can modify this review")
}

func ManageAmenities(c Caller) error {
	if c.IsAdmin {
		return nil
	}
	return apperr.Forbidden("admin privileges required")
}
