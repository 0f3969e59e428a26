package domain

import (
	"strings"

	"hbnb/internal/pkg/apperr"
	"hbnb/internal/pkg/validator"
)

type Place struct {
	Base
	Title       string  `json:"title" validate:"required,max=100"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Latitude    float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude   float64 `json:"longitude" validate:"gte=-180,lte=180"`
	OwnerID     string  `json:"owner_id" validate:"required"`

	// Resolved relations; nil/empty when not loaded.
	Owner     *User     `json:"-" validate:"-"`
	Amenities []Amenity `json:"-" validate:"-"`
	Reviews   []Review  `json:"-" validate:"-"`
}

type PlaceInput struct {
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
}

func NewPlace(in PlaceInput, owner *User) (*Place, error) {
	if owner == nil {
		return nil, apperr.Invalid("owner_id", "is required")
	}
	p := &Place{
		Base:        newBase(),
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Price:       in.Price,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		OwnerID:     owner.ID,
		Owner:       owner,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Place) Validate() error {
	if err := validator.Struct(p); err != nil {
		return err
	}
	if p.Owner != nil && p.Owner.ID != p.OwnerID {
		return apperr.Invalid("owner", "does not match owner_id")
	}
	return nil
}

// AmenityIDs lists the ids of the loaded amenities.
func (p *Place) AmenityIDs() []string {
	ids := make([]string, 0, len(p.Amenities))
	for _, a := range p.Amenities {
		ids = append(ids, a.ID)
	}
	return ids
}

// PlacePatch lists the mutable place attributes. The owner is not among
// them: it is fixed when the place is created.
type PlacePatch struct {
	Title       *string
	Description *string
	Price       *float64
	Latitude    *float64
	Longitude   *float64
}

func (p PlacePatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Price == nil && p.Latitude == nil && p.Longitude == nil
}

func (p PlacePatch) Apply(pl Place) Place {
	if p.Title != nil {
		pl.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		pl.Description = *p.Description
	}
	if p.Price != nil {
		pl.Price = *p.Price
	}
	if p.Latitude != nil {
		pl.Latitude = *p.Latitude
	}
	if p.Longitude != nil {
		pl.Longitude = *p.Longitude
	}
	return pl
}
