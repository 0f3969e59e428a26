package place

import (
	"time"

	"hbnb/internal/domain"
	"hbnb/internal/facade"
	"hbnb/internal/pkg/apperr"
)

// CreatePlaceRequest carries the numeric fields as pointers so a missing
// value is told apart from zero.
type CreatePlaceRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	OwnerID     string   `json:"owner_id"`
	Amenities   []string `json:"amenities"`
}

func (r CreatePlaceRequest) toInput(ownerID string) (facade.PlaceInput, error) {
	switch {
	case r.Price == nil:
		return facade.PlaceInput{}, apperr.Invalid("price", "is required")
	case r.Latitude == nil:
		return facade.PlaceInput{}, apperr.Invalid("latitude", "is required")
	case r.Longitude == nil:
		return facade.PlaceInput{}, apperr.Invalid("longitude", "is required")
	}
	return facade.PlaceInput{
		Title:       r.Title,
		Description: r.Description,
		Price:       *r.Price,
		Latitude:    *r.Latitude,
		Longitude:   *r.Longitude,
		OwnerID:     ownerID,
		AmenityIDs:  r.Amenities,
	}, nil
}

// UpdatePlaceRequest: owner_id is accepted only so that a regular user
// trying to hand the place over can be refused. It is never applied.
type UpdatePlaceRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	OwnerID     *string   `json:"owner_id"`
	Amenities   *[]string `json:"amenities"`
}

func (r UpdatePlaceRequest) requestedOwner() string {
	if r.OwnerID == nil {
		return ""
	}
	return *r.OwnerID
}

func (r UpdatePlaceRequest) toUpdate() facade.PlaceUpdate {
	return facade.PlaceUpdate{
		PlacePatch: domain.PlacePatch{
			Title:       r.Title,
			Description: r.Description,
			Price:       r.Price,
			Latitude:    r.Latitude,
			Longitude:   r.Longitude,
		},
		AmenityIDs: r.Amenities,
	}
}

type OwnerSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type AmenitySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ReviewSummary struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
	UserID string `json:"user_id"`
}

type PlaceResponse struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Price        float64          `json:"price"`
	Latitude     float64          `json:"latitude"`
	Longitude    float64          `json:"longitude"`
	OwnerID      string           `json:"owner_id"`
	Owner        *OwnerSummary    `json:"owner,omitempty"`
	Amenities    []AmenitySummary `json:"amenities"`
	Reviews      []ReviewSummary  `json:"reviews"`
	ReviewsCount int              `json:"reviews_count"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func NewPlaceResponse(p *domain.Place) PlaceResponse {
	out := PlaceResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Price:        p.Price,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
		OwnerID:      p.OwnerID,
		Amenities:    newAmenitySummaries(p.Amenities),
		Reviews:      make([]ReviewSummary, 0, len(p.Reviews)),
		ReviewsCount: len(p.Reviews),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.Owner != nil {
		out.Owner = &OwnerSummary{
			ID:        p.Owner.ID,
			FirstName: p.Owner.FirstName,
			LastName:  p.Owner.LastName,
			Email:     p.Owner.Email,
		}
	}
	for _, r := range p.Reviews {
		out.Reviews = append(out.Reviews, ReviewSummary{ID: r.ID, Text: r.Text, Rating: r.Rating, UserID: r.UserID})
	}
	return out
}

func newAmenitySummaries(items []domain.Amenity) []AmenitySummary {
	out := make([]AmenitySummary, 0, len(items))
	for _, a := range items {
		out = append(out, AmenitySummary{ID: a.ID, Name: a.Name})
	}
	return out
}
