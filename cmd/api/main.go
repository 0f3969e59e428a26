// @title						HBnB API
// @version					1.0
// @description				Places, reviews and amenities for short-term rentals.
// @BasePath					/api/v1
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"hbnb/internal/app"
	"hbnb/internal/config"
	"hbnb/internal/database"
	"hbnb/internal/facade"
	"hbnb/internal/logging"
	"hbnb/internal/middleware"
	jwtsvc "hbnb/internal/pkg/jwt"
	"hbnb/internal/repository"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal().Err(err).Msg("read .env")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	logging.SetGlobalLogger(logger)
	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL, logger.Zerolog())
	if err != nil {
		logger.Fatal(err, "connect database")
	}
	defer func() { _ = database.Close(db) }()

	if cfg.AutoMigrate {
		if err := repository.AutoMigrate(db); err != nil {
			logger.Fatal(err, "migrate schema")
		}
	}

	f := facade.New(repository.NewStore(db))
	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		admin, created, err := f.EnsureAdmin(context.Background(), facade.UserInput{
			FirstName: "Admin",
			LastName:  "HBnB",
			Email:     cfg.AdminEmail,
			Password:  cfg.AdminPassword,
		})
		if err != nil {
			logger.Fatal(err, "bootstrap admin")
		}
		log.Info().Str("user_id", admin.ID).Bool("created", created).Msg("admin account ready")
	}

	router, err := app.NewRouter(app.Deps{
		DB:                 db,
		Facade:             f,
		Tokens:             jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL),
		Logger:             logger,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		TrustedProxies:     cfg.TrustedProxies,
		LoginLimiter:       middleware.NewRateLimiter(cfg.LoginRatePerMinute, cfg.LoginRateBurst),
	})
	if err != nil {
		logger.Fatal(err, "build router")
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", server.Addr).Str("env", cfg.AppEnv).Msg("api listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(err, "server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error(err, "forced shutdown")
	}
}
