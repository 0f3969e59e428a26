package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hbnb/internal/middleware"
	"hbnb/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the login endpoint, throttled by limiter, on
// public and the token echo endpoint on protected.
func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup, limiter gin.HandlerFunc) {
	if public != nil {
		public.POST("/auth/login", limiter, h.Login)
	}
	if protected != nil {
		protected.GET("/auth/protected", h.Protected)
	}
}

// Login issues an access token.
// @Summary		Log in
// @Description	Exchanges an email and password for a bearer token carrying the user id and the admin flag.
// @Tags		Auth
// @Accept		json
// @Produce		json
// @Param		request	body	LoginRequest	true	"Credentials"
// @Success		200	{object}	map[string]interface{}	"Access token"
// @Failure		400	{object}	map[string]interface{}	"Malformed body"
// @Failure		401	{object}	map[string]interface{}	"Invalid credentials"
// @Failure		429	{object}	map[string]interface{}	"Too many attempts"
// @Router		/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Email and password are required")
		return
	}

	res, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
			return
		}
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, LoginResponse{
		AccessToken: res.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   h.svc.ExpiresIn(),
	})
}

// Protected echoes the identity carried by the token.
// @Summary		Check a token
// @Tags		Auth
// @Security	BearerAuth
// @Produce		json
// @Success		200	{object}	map[string]interface{}	"Token identity"
// @Failure		401	{object}	map[string]interface{}	"Missing or invalid token"
// @Router		/auth/protected [get]
func (h *Handler) Protected(c *gin.Context) {
	caller := middleware.Caller(c)
	response.Success(c, http.StatusOK, ProtectedResponse{
		Message: "Hello, user " + caller.UserID,
		UserID:  caller.UserID,
		IsAdmin: caller.IsAdmin,
	})
}
