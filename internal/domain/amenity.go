package domain

import (
	"strings"

	"hbnb/internal/pkg/validator"
)

type Amenity struct {
	Base
	Name string `json:"name" validate:"required,max=50"`
}

func NewAmenity(name string) (*Amenity, error) {
	a := &Amenity{Base: newBase(), Name: strings.TrimSpace(name)}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Amenity) Validate() error {
	return validator.Struct(a)
}

type AmenityPatch struct {
	Name *string
}

func (p AmenityPatch) IsEmpty() bool {
	return p.Name == nil
}

func (p AmenityPatch) Apply(a Amenity) Amenity {
	if p.Name != nil {
		a.Name = strings.TrimSpace(*p.Name)
	}
	return a
}
