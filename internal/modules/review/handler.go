package review

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hbnb/internal/middleware"
	"hbnb/internal/pkg/apperr"
	"hbnb/internal/pkg/response"
	"hbnb/internal/policy"
)

type Handler struct {
	svc    Service
	places PlaceGate
}

func NewHandler(svc Service, places PlaceGate) *Handler {
	return &Handler{svc: svc, places: places}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.GET("/reviews", h.List)
		public.GET("/reviews/:id", h.Get)
		public.GET("/places/:id/reviews", h.GetByPlace)
	}
	if protected != nil {
		protected.POST("/reviews", h.Create)
		protected.PUT("/reviews/:id", h.Update)
		protected.DELETE("/reviews/:id", h.Delete)
	}
}

// Create writes a review for a place.
// @Summary		Write a review
// @Description	One review per user and place. Owners cannot review their own places. An admin may write on behalf of user_id.
// @Tags		Reviews
// @Security	BearerAuth
// @Accept		json
// @Produce		json
// @Param		request	body	CreateReviewRequest	true	"Review (text, rating, place_id)"
// @Success		201	{object}	map[string]interface{}	"Created review"
// @Failure		400	{object}	map[string]interface{}	"Invalid field"
// @Failure		401	{object}	map[string]interface{}	"Missing token"
// @Failure		403	{object}	map[string]interface{}	"Own place, or foreign user_id"
// @Failure		404	{object}	map[string]interface{}	"Place or user not found"
// @Failure		409	{object}	map[string]interface{}	"Place already reviewed"
// @Router		/reviews [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	authorID, err := policy.ReviewAuthor(middleware.Caller(c), req.UserID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if strings.TrimSpace(req.PlaceID) == "" {
		response.FromError(c, apperr.Invalid("place_id", "is required"))
		return
	}

	ctx := c.Request.Context()
	p, err := h.places.GetPlace(ctx, req.PlaceID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if err := policy.CreateReview(p, authorID); err != nil {
		response.FromError(c, err)
		return
	}

	rv, err := h.svc.CreateReview(ctx, req.toInput(authorID))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, NewReviewResponse(rv))
}

// List returns every review.
// @Summary		List reviews
// @Tags		Reviews
// @Produce		json
// @Success		200	{object}	map[string]interface{}	"Reviews"
// @Router		/reviews [get]
func (h *Handler) List(c *gin.Context) {
	items, err := h.svc.GetAllReviews(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, newReviewResponses(items))
}

// Get returns one review.
// @Summary		Get a review
// @Tags		Reviews
// @Produce		json
// @Param		id	path	string	true	"Review ID"
// @Success		200	{object}	map[string]interface{}	"Review"
// @Failure		404	{object}	map[string]interface{}	"Review not found"
// @Router		/reviews/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	rv, err := h.svc.GetReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, NewReviewResponse(rv))
}

// GetByPlace returns the reviews of a place.
// @Summary		List place reviews
// @Tags		Reviews
// @Produce		json
// @Param		id	path	string	true	"Place ID"
// @Success		200	{object}	map[string]interface{}	"Reviews"
// @Failure		404	{object}	map[string]interface{}	"Place not found"
// @Router		/places/{id}/reviews [get]
func (h *Handler) GetByPlace(c *gin.Context) {
	items, err := h.svc.GetReviewsByPlace(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, newReviewResponses(items))
}

// Update changes the text or rating of a review.
// @Summary		Update a review
// @Tags		Reviews
// @Security	BearerAuth
// @Accept		json
// @Produce		json
// @Param		id		path	string				true	"Review ID"
// @Param		request	body	UpdateReviewRequest	true	"Fields to change"
// @Success		200	{object}	map[string]interface{}	"Updated review"
// @Failure		400	{object}	map[string]interface{}	"Invalid field"
// @Failure		403	{object}	map[string]interface{}	"Not the author"
// @Failure		404	{object}	map[string]interface{}	"Review not found"
// @Router		/reviews/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")
	current, err := h.svc.GetReview(ctx, id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if err := policy.ModifyReview(middleware.Caller(c), current); err != nil {
		response.FromError(c, err)
		return
	}

	rv, err := h.svc.UpdateReview(ctx, id, req.toPatch())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, NewReviewResponse(rv))
}

// Delete removes a review.
// @Summary		Delete a review
// @Tags		Reviews
// @Security	BearerAuth
// @Param		id	path	string	true	"Review ID"
// @Success		204	"Deleted"
// @Failure		403	{object}	map[string]interface{}	"Not the author"
// @Failure		404	{object}	map[string]interface{}	"Review not found"
// @Router		/reviews/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	current, err := h.svc.GetReview(ctx, id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if err := policy.ModifyReview(middleware.Caller(c), current); err != nil {
		response.FromError(c, err)
		return
	}

	deleted, err := h.svc.DeleteReview(ctx, id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if !deleted {
		response.FromError(c, apperr.NotFound("review %s not found", id))
		return
	}
	c.Status(http.StatusNoContent)
}
