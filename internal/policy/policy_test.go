package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hbnb/internal/domain"
	"hbnb/internal/pkg/apperr"
)

var (
	anonymous = Caller{}
	alice     = Caller{UserID: "alice"}
	bob       = Caller{UserID: "bob"}
	admin     = Caller{UserID: "root", IsAdmin: true}
)

func allowed(t *testing.T, err error) {
	t.Helper()
	assert.NoError(t, err)
}

func denied(t *testing.T, err error) {
	t.Helper()
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestUserRules(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		allow bool
	}{
		{"anonymous registers", CreateUser(anonymous, false), true},
		{"anonymous registers admin", CreateUser(anonymous, true), false},
		{"user registers admin", CreateUser(alice, true), false},
		{"admin creates admin", CreateUser(admin, true), true},

		{"read self", ReadUser(alice, "alice"), true},
		{"read other", ReadUser(alice, "bob"), false},
		{"anonymous read", ReadUser(anonymous, ""), false},
		{"admin reads any", ReadUser(admin, "bob"), true},

		{"user lists", ListUsers(alice), false},
		{"admin lists", ListUsers(admin), true},

		{"update own names", UpdateUser(alice, "alice", false), true},
		{"update own email", UpdateUser(alice, "alice", true), false},
		{"update other", UpdateUser(bob, "alice", false), false},
		{"admin updates credentials", UpdateUser(admin, "alice", true), true},

		{"user deletes", DeleteUser(alice, "bob"), false},
		{"user deletes self", DeleteUser(alice, "alice"), false},
		{"admin deletes other", DeleteUser(admin, "alice"), true},
		{"admin deletes self", DeleteUser(admin, "root"), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.allow {
				allowed(t, tc.err)
			} else {
				denied(t, tc.err)
			}
		})
	}
}

func TestPlaceRules(t *testing.T) {
	place := &domain.Place{OwnerID: "alice"}

	owner, err := PlaceOwner(alice, "")
	allowed(t, err)
	assert.Equal(t, "alice", owner)

	owner, err = PlaceOwner(alice, "alice")
	allowed(t, err)
	assert.Equal(t, "alice", owner)

	_, err = PlaceOwner(alice, "bob")
	denied(t, err)

	owner, err = PlaceOwner(admin, "bob")
	allowed(t, err)
	assert.Equal(t, "bob", owner)

	allowed(t, ModifyPlace(alice, place, ""))
	allowed(t, ModifyPlace(alice, place, "alice"))
	denied(t, ModifyPlace(alice, place, "bob"))
	denied(t, ModifyPlace(bob, place, ""))
	denied(t, ModifyPlace(anonymous, &domain.Place{}, ""))
	allowed(t, ModifyPlace(admin, place, "bob"))
}

func TestReviewRules(t *testing.T) {
	place := &domain.Place{OwnerID: "alice"}
	review := &domain.Review{UserID: "bob", PlaceID: "p1"}

	author, err := ReviewAuthor(bob, "")
	allowed(t, err)
	assert.Equal(t, "bob", author)

	_, err = ReviewAuthor(bob, "alice")
	denied(t, err)

	author, err = ReviewAuthor(admin, "bob")
	allowed(t, err)
	assert.Equal(t, "bob", author)

	denied(t, CreateReview(place, "alice"))
	allowed(t, CreateReview(place, "bob"))

	allowed(t, ModifyReview(bob, review))
	allowed(t, ModifyReview(admin, review))
	denied(t, ModifyReview(alice, review))
	denied(t, ModifyReview(anonymous, &domain.Review{}))
}

func TestAmenityRules(t *testing.T) {
	allowed(t, ManageAmenities(admin))
	denied(t, ManageAmenities(alice))
	denied(t, ManageAmenities(anonymous))
}
