package amenity

import (
	"time"

	"hbnb/internal/domain"
)

type CreateAmenityRequest struct {
	Name string `json:"name"`
}

type UpdateAmenityRequest struct {
	Name *string `json:"name"`
}

type AmenityResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewAmenityResponse(a *domain.Amenity) AmenityResponse {
	return AmenityResponse{ID: a.ID, Name: a.Name, CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt}
}

func (r UpdateAmenityRequest) toPatch() domain.AmenityPatch {
	return domain.AmenityPatch{Name: r.Name}
}
