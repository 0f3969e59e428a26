package amenity

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

// RegisterRoutes mounts the catalogue reads on public and the writes,
// which need an admin, on protected.
func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.GET("/amenities", h.List)
		public.GET("/amenities/:id", h.Get)
	}
	if protected != nil {
		protected.POST("/amenities", h.Create)
		protected.PUT("/amenities/:id", h.Update)
		protected.DELETE("/amenities/:id", h.Delete)
	}
}

// Create adds an amenity to the catalogue.
// @Summary		Create an amenity
// @Tags		Amenities
// @Security	BearerAuth
// @Accept		json
// @Produce		json
// @Param		request	body	CreateAmenityRequest	true	"Amenity name"
// @Success		201	{object}	map[string]interface{}	"Created amenity"
// @Failure		400	{object}	map[string]interface{}	"Invalid name"
// @Failure		403	{object}	map[string]interface{}	"Not an admin"
// @Failure		409	{object}	map[string]interface{}	"Name already used"
// @Router		/amenities [post]
func (h *Handler) Create(c *gin.Context) {
	if err := policy.ManageAmenities(middleware.Caller(c)); err != nil {
		response.FromError(c, err)
		return
	}

	var req CreateAmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	a, err := h.svc.CreateAmenity(c.Request.Context(), req.Name)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, NewAmenityResponse(a))
}

// List returns the amenity catalogue.
// @Summary		List amenities
// @Tags		Amenities
// @Produce		json
// @Success		200	{object}	map[string]interface{}	"Amenities"
// @Router		/amenities [get]
func (h *Handler) List(c *gin.Context) {
	items, err := h.svc.GetAllAmenities(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	out := make([]AmenityResponse, 0, len(items))
	for i := range items {
		out = append(out, NewAmenityResponse(&items[i]))
	}
	response.Success(c, http.StatusOK, out)
}

// Get returns one amenity.
// @Summary		Get an amenity
// @Tags		Amenities
// @Produce		json
// @Param		id	path	string	true	"Amenity ID"
// @Success		200	{object}	map[string]interface{}	"Amenity"
// @Failure		404	{object}	map[string]interface{}	"Amenity not found"
// @Router		/amenities/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	a, err := h.svc.GetAmenity(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, NewAmenityResponse(a))
}

// Update renames an amenity.
// @Summary		Update an amenity
// @Tags		Amenities
// @Security	BearerAuth
// @Accept		json
// @Produce		json
// @Param		id		path	string					true	"Amenity ID"
// @Param		request	body	UpdateAmenityRequest	true	"New name"
// @Success		200	{object}	map[string]interface{}	"Updated amenity"
// @Failure		400	{object}	map[string]interface{}	"Invalid name"
// @Failure		403	{object}	map[string]interface{}	"Not an admin"
// @Failure		404	{object}	map[string]interface{}	"Amenity not found"
// @Failure		409	{object}	map[string]interface{}	"Name already used"
// @Router		/amenities/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	if err := policy.ManageAmenities(middleware.Caller(c)); err != nil {
		response.FromError(c, err)
		return
	}

	var req UpdateAmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	a, err := h.svc.UpdateAmenity(c.Request.Context(), c.Param("id"), req.toPatch())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, NewAmenityResponse(a))
}

// Delete removes an amenity and detaches it from every place.
// @Summary		Delete an amenity
// @Tags		Amenities
// @Security	BearerAuth
// @Param		id	path	string	true	"Amenity ID"
// @Success		204	"Deleted"
// @Failure		403	{object}	map[string]interface{}	"Not an admin"
// @Failure		404	{object}	map[string]interface{}	"Amenity not found"
// @Router		/amenities/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := policy.ManageAmenities(middleware.Caller(c)); err != nil {
		response.FromError(c, err)
		return
	}
	if err := h.svc.DeleteAmenity(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
