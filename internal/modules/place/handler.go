package place

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hbnb/internal/middleware"
	"hbnb/internal/pkg/response"
	"hbnb/internal/policy"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.GET("/places", h.List)
		public.GET("/places/:id", h.Get)
		public.GET("/places/:id/amenities", h.Amenities)
	}
	if protected != nil {
		protected.POST("/places", h.Create)
		protected.PUT("/places/:id", h.Update)
		protected.DELETE("/places/:id", h.Delete)
	}
}

// Create lists a new place owned by the caller.
// @Summary		Create a place
// @Description	The caller becomes the owner. An admin may name another owner with owner_id.
// @Tags		Places
// @Security	BearerAuth
// @Accept		json
// @Produce		json
// @Param		request	body	CreatePlaceRequest	true	"New place"
// @Success		201	{object}	map[string]interface{}	"Created place"
// @Failure		400	{object}	map[string]interface{}	"Invalid field"
// @Failure		401	{object}	map[string]interface{}	"Missing token"
// @Failure		403	{object}	map[string]interface{}	"Foreign owner_id"
// @Failure		404	{object}	map[string]interface{}	"Owner or amenity not found"
// @Router		/places [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	ownerID, err := policy.PlaceOwner(middleware.Caller(c), req.OwnerID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	in, err := req.toInput(ownerID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	p, err := h.svc.CreatePlace(c.Request.Context(), in)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, NewPlaceResponse(p))
}

// List returns every place.
// @Summary		List places
// @Tags		Places
// @Produce		json
// @Success		200	{object}	map[string]interface{}	"Places"
// @Router		/places [get]
func (h *Handler) List(c *gin.Context) {
	items, err := h.svc.GetAllPlaces(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	out := make([]PlaceResponse, 0, len(items))
	for i := range items {
		out = append(out, NewPlaceResponse(&items[i]))
	}
	response.Success(c, http.StatusOK, out)
}

// Get returns a place with its owner, amenities and reviews.
// @Summary		Get a place
// @Tags		Places
// @Produce		json
// @Param		id	path	string	true	"Place ID"
// @Success		200	{object}	map[string]interface{}	"Place"
// @Failure		404	{object}	map[string]interface{}	"Place not found"
// @Router		/places/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	p, err := h.svc.GetPlace(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, NewPlaceResponse(p))
}

// Amenities returns the amenities of a place.
// @Summary		List place amenities
// @Tags		Places
// @Produce		json
// @Param		id	path	string	true	"Place ID"
// @Success		200	{object}	map[string]interface{}	"Amenities"
// @Failure		404	{object}	map[string]interface{}	"Place not found"
// @Router		/places/{id}/amenities [get]
func (h *Handler) Amenities(c *gin.Context) {
	items, err := h.svc.GetPlaceAmenities(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, newAmenitySummaries(items))
}

// Update changes a place. Sending amenities replaces the whole list.
// @Summary		Update a place
// @Tags		Places
// @Security	BearerAuth
// @Accept		json
// @Produce		json
// @Param		id		path	string				true	"Place ID"
// @Param		request	body	UpdatePlaceRequest	true	"Fields to change"
// @Success		200	{object}	map[string]interface{}	"Updated place"
// @Failure		400	{object}	map[string]interface{}	"Invalid field"
// @Failure		403	{object}	map[string]interface{}	"Not the owner"
// @Failure		404	{object}	map[string]interface{}	"Place or amenity not found"
// @Router		/places/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")
	current, err := h.svc.GetPlace(ctx, id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if err := policy.ModifyPlace(middleware.Caller(c), current, req.requestedOwner()); err != nil {
		response.FromError(c, err)
		return
	}

	p, err := h.svc.UpdatePlace(ctx, id, req.toUpdate())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, NewPlaceResponse(p))
}

// Delete removes a place with its reviews.
// @Summary		Delete a place
// @Tags		Places
// @Security	BearerAuth
// @Param		id	path	string	true	"Place ID"
// @Success		204	"Deleted"
// @Failure		403	{object}	map[string]interface{}	"Not the owner"
// @Failure		404	{object}	map[string]interface{}	"Place not found"
// @Router		/places/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	current, err := h.svc.GetPlace(ctx, id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if err := policy.ModifyPlace(middleware.Caller(c), current, ""); err != nil {
		response.FromError(c, err)
		return
	}

	if err := h.svc.DeletePlace(ctx, id); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
