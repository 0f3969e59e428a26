package domain

import (
	"strings"

	"hbnb/internal/pkg/apperr"
	"hbnb/internal/pkg/validator"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	Base
	Text    string `json:"text" validate:"required"`
	Rating  int    `json:"rating" validate:"gte=1,lte=5"`
	PlaceID string `json:"place_id" validate:"required"`
	UserID  string `json:"user_id" validate:"required"`

	Author *User `json:"-" validate:"-"`
}

func NewReview(text string, rating int, place *Place, author *User) (*Review, error) {
	if place == nil {
		return nil, apperr.Invalid("place_id", "is required")
	}
	if author == nil {
		return nil, apperr.Invalid("user_id", "is required")
	}
	r := &Review{
		Base:    newBase(),
		Text:    strings.TrimSpace(text),
		Rating:  rating,
		PlaceID: place.ID,
		UserID:  author.ID,
		Author:  author,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Review) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}
	if r.Author != nil && r.Author.ID != r.UserID {
		return apperr.Invalid("user", "does not match user_id")
	}
	return nil
}

// ReviewPatch: only the text and the rating of a review can change.
type ReviewPatch struct {
	Text   *string
	Rating *int
}

func (p ReviewPatch) IsEmpty() bool {
	return p.Text == nil && p.Rating == nil
}

func (p ReviewPatch) Apply(r Review) Review {
	if p.Text != nil {
		r.Text = strings.TrimSpace(*p.Text)
	}
	if p.Rating != nil {
		r.Rating = *p.Rating
	}
	return r
}
