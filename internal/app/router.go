// Package app assembles the HTTP API from the feature modules.
package app

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "hbnb/docs"
	"hbnb/internal/database"
	"hbnb/internal/facade"
	"hbnb/internal/logging"
	"hbnb/internal/middleware"
	"hbnb/internal/modules/amenity"
	"hbnb/internal/modules/auth"
	"hbnb/internal/modules/place"
	"hbnb/internal/modules/review"
	"hbnb/internal/modules/user"
	"hbnb/internal/pkg/jwt"
	"hbnb/internal/pkg/response"
)

type Deps struct {
	DB     *gorm.DB
	Facade *facade.Facade
	Tokens *jwt.Service
	Logger *logging.Logger

	CORSAllowedOrigins []string
	// TrustedProxies lists the peers whose X-Forwarded-For is honoured
	// when resolving the client IP. Empty trusts none.
	TrustedProxies []string
	// LoginLimiter throttles POST /auth/login; nil disables throttling.
	LoginLimiter *middleware.RateLimiter
}

func NewRouter(d Deps) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(d.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	r.Use(
		middleware.Recovery(d.Logger),
		middleware.RequestLogger(d.Logger),
		middleware.SecurityHeaders(),
		middleware.CORS(d.CORSAllowedOrigins),
	)

	r.GET("/healthz", func(c *gin.Context) {
		if err := database.Ping(c.Request.Context(), d.DB); err != nil {
			_ = c.Error(err)
			response.Error(c, http.StatusServiceUnavailable, "UNAVAILABLE", "database unreachable")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	v1.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	public := v1.Group("")
	public.Use(middleware.OptionalJWTAuth(d.Tokens))
	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(d.Tokens))

	limiter := func(c *gin.Context) { c.Next() }
	if d.LoginLimiter != nil {
		limiter = d.LoginLimiter.Limit()
	}

	auth.NewHandler(auth.NewService(d.Facade, d.Tokens)).RegisterRoutes(public, protected, limiter)
	user.NewHandler(d.Facade).RegisterRoutes(public, protected)
	place.NewHandler(d.Facade).RegisterRoutes(public, protected)
	review.NewHandler(d.Facade, d.Facade).RegisterRoutes(public, protected)
	amenity.NewHandler(d.Facade).RegisterRoutes(public, protected)

	return r, nil
}
