package review

import (
	"time"

	"hbnb/internal/domain"
	"hbnb/internal/facade"
)

type CreateReviewRequest struct {
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
	PlaceID string `json:"place_id"`
	UserID  string `json:"user_id"`
}

func (r CreateReviewRequest) toInput(authorID string) facade.ReviewInput {
	return facade.ReviewInput{
		Text:    r.Text,
		Rating:  r.Rating,
		PlaceID: r.PlaceID,
		UserID:  authorID,
	}
}

// UpdateReviewRequest: the place and the author of a review are fixed.
type UpdateReviewRequest struct {
	Text   *string `json:"text"`
	Rating *int    `json:"rating"`
}

func (r UpdateReviewRequest) toPatch() domain.ReviewPatch {
	return domain.ReviewPatch{Text: r.Text, Rating: r.Rating}
}

type AuthorSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
}

type ReviewResponse struct {
	ID        string         `json:"id"`
	Text      string         `json:"text"`
	Rating    int            `json:"rating"`
	PlaceID   string         `json:"place_id"`
	UserID    string         `json:"user_id"`
	Author    *AuthorSummary `json:"author,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func NewReviewResponse(r *domain.Review) ReviewResponse {
	out := ReviewResponse{
		ID:        r.ID,
		Text:      r.Text,
		Rating:    r.Rating,
		PlaceID:   r.PlaceID,
		UserID:    r.UserID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Author != nil {
		out.Author = &AuthorSummary{ID: r.Author.ID, FirstName: r.Author.FirstName, Email: r.Author.Email}
	}
	return out
}

func newReviewResponses(items []domain.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(items))
	for i := range items {
		out = append(out, NewReviewResponse(&items[i]))
	}
	return out
}
