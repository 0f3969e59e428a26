package user

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

// RegisterRoutes mounts registration on public, which must identify the
// caller when a token is sent, and the rest on protected.
func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.POST("/users", h.Create)
	}
	if protected != nil {
		protected.GET("/users", h.List)
		protected.GET("/users/:id", h.Get)
		protected.PUT("/users/:id", h.Update)
		protected.DELETE("/users/:id", middleware.AdminOnly(), h.Delete)
	}
}

// Create registers a user.
// @Summary		Register a user
// @Description	Public registration. Only an admin may create another admin.
// @Tags		Users
// @Accept		json
// @Produce		json
// @Param		request	body	CreateUserRequest	true	"New user"
// @Success		201	{object}	map[string]interface{}	"Created user"
// @Failure		400	{object}	map[string]interface{}	"Invalid field"
// @Failure		403	{object}	map[string]interface{}	"Admin flag without admin rights"
// @Failure		409	{object}	map[string]interface{}	"Email already registered"
// @Router		/users [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if err := policy.CreateUser(middleware.Caller(c), req.IsAdmin); err != nil {
		response.FromError(c, err)
		return
	}

	u, err := h.svc.CreateUser(c.Request.Context(), req.toInput())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, NewUserResponse(u))
}

// List returns every user.
// @Summary		List users
// @Tags		Users
// @Security	BearerAuth
// @Produce		json
// @Success		200	{object}	map[string]interface{}	"Users"
// @Failure		401	{object}	map[string]interface{}	"Missing token"
// @Failure		403	{object}	map[string]interface{}	"Not an admin"
// @Router		/users [get]
func (h *Handler) List(c *gin.Context) {
	if err := policy.ListUsers(middleware.Caller(c)); err != nil {
		response.FromError(c, err)
		return
	}

	items, err := h.svc.GetAllUsers(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	out := make([]UserResponse, 0, len(items))
	for i := range items {
		out = append(out, NewUserResponse(&items[i]))
	}
	response.Success(c, http.StatusOK, out)
}

// Get returns one user.
// @Summary		Get a user
// @Tags		Users
// @Security	BearerAuth
// @Produce		json
// @Param		id	path	string	true	"User ID"
// @Success		200	{object}	map[string]interface{}	"User"
// @Failure		403	{object}	map[string]interface{}	"Neither self nor admin"
// @Failure		404	{object}	map[string]interface{}	"User not found"
// @Router		/users/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if err := policy.ReadUser(middleware.Caller(c), id); err != nil {
		response.FromError(c, err)
		return
	}

	u, err := h.svc.GetUser(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, NewUserResponse(u))
}

// Update changes a user. Users may rename themselves; email, password and
// the admin flag require an admin.
// @Summary		Update a user
// @Tags		Users
// @Security	BearerAuth
// @Accept		json
// @Produce		json
// @Param		id		path	string				true	"User ID"
// @Param		request	body	UpdateUserRequest	true	"Fields to change"
// @Success		200	{object}	map[string]interface{}	"Updated user"
// @Failure		400	{object}	map[string]interface{}	"Invalid field"
// @Failure		403	{object}	map[string]interface{}	"Not allowed"
// @Failure		404	{object}	map[string]interface{}	"User not found"
// @Failure		409	{object}	map[string]interface{}	"Email already registered"
// @Router		/users/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if err := policy.UpdateUser(middleware.Caller(c), id, req.touchesCredentials()); err != nil {
		response.FromError(c, err)
		return
	}

	u, err := h.svc.UpdateUser(c.Request.Context(), id, req.toUpdate())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, NewUserResponse(u))
}

// Delete removes a user with their places and reviews.
// @Summary		Delete a user
// @Tags		Users
// @Security	BearerAuth
// @Param		id	path	string	true	"User ID"
// @Success		204	"Deleted"
// @Failure		403	{object}	map[string]interface{}	"Not an admin, or own account"
// @Failure		404	{object}	map[string]interface{}	"User not found"
// @Router		/users/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := policy.DeleteUser(middleware.Caller(c), id); err != nil {
		response.FromError(c, err)
		return
	}

	if err := h.svc.DeleteUser(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
