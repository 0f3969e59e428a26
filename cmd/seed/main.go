package main

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog/log"

	"hbnb/internal/config"
	"hbnb/internal/database"
	"hbnb/internal/domain"
	"hbnb/internal/facade"
	"hbnb/internal/logging"
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
	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: "text"})
	logging.SetGlobalLogger(logger)

	db, err := database.Connect(cfg.DatabaseURL, logger.Zerolog())
	if err != nil {
		logger.Fatal(err, "connect database")
	}
	defer func() { _ = database.Close(db) }()

	log.Info().Msg("running AutoMigrate")
	if err := repository.AutoMigrate(db); err != nil {
		logger.Fatal(err, "migrate schema")
	}

	// Children first so foreign keys hold on postgres.
	log.Info().Msg("cleaning old data")
	for _, table := range []string{"reviews", "place_amenity", "places", "amenities", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			logger.Fatal(err, "clean "+table)
		}
	}

	ctx := context.Background()
	f := facade.New(repository.NewStore(db))

	// ================== USERS ==================
	admin, _, err := f.EnsureAdmin(ctx, facade.UserInput{
		FirstName: "Admin",
		LastName:  "HBnB",
		Email:     "admin@hbnb.io",
		Password:  "admin1234",
	})
	if err != nil {
		logger.Fatal(err, "create admin")
	}
	log.Info().Str("email", admin.Email).Msg("admin created (password admin1234)")

	hosts := mustUsers(ctx, f, []string{"alice@hbnb.io", "bob@hbnb.io"}, "Host")
	guests := mustUsers(ctx, f, []string{"carol@hbnb.io", "dave@hbnb.io", "erin@hbnb.io"}, "Guest")

	// ================== AMENITIES ==================
	var amenityIDs []string
	for _, name := range []string{"Wi-Fi", "Swimming Pool", "Air Conditioning", "Kitchen", "Free Parking"} {
		a, err := f.CreateAmenity(ctx, name)
		if err != nil {
			logger.Fatal(err, "create amenity")
		}
		amenityIDs = append(amenityIDs, a.ID)
	}
	log.Info().Int("count", len(amenityIDs)).Msg("amenities created")

	// ================== PLACES ==================
	listings := []struct {
		title       string
		description string
		price       float64
		lat, lng    float64
	}{
		{"Cozy Apartment", "Two rooms close to the old town.", 85, 48.8566, 2.3522},
		{"Beach House", "Sea view, five minutes to the sand.", 210, 36.7213, -4.4214},
		{"Mountain Cabin", "Wood stove and hiking trails.", 120, 46.5197, 7.4815},
		{"City Loft", "Open plan loft above a bakery.", 150, 40.7128, -74.0060},
	}
	var places []*domain.Place
	for i, l := range listings {
		p, err := f.CreatePlace(ctx, facade.PlaceInput{
			Title:       l.title,
			Description: l.description,
			Price:       l.price,
			Latitude:    l.lat,
			Longitude:   l.lng,
			OwnerID:     hosts[i%len(hosts)].ID,
			AmenityIDs:  amenityIDs[:2+rand.Intn(len(amenityIDs)-1)],
		})
		if err != nil {
			logger.Fatal(err, "create place")
		}
		places = append(places, p)
	}
	log.Info().Int("count", len(places)).Msg("places created")

	// ================== REVIEWS ==================
	texts := []string{"Great stay!", "Clean and quiet.", "Host was very helpful.", "Would come back.", "Exactly as described."}
	reviews := 0
	for _, p := range places {
		for _, g := range guests {
			if rand.Intn(3) == 0 {
				continue
			}
			_, err := f.CreateReview(ctx, facade.ReviewInput{
				Text:    texts[rand.Intn(len(texts))],
				Rating:  3 + rand.Intn(3),
				PlaceID: p.ID,
				UserID:  g.ID,
			})
			if err != nil {
				logger.Fatal(err, "create review")
			}
			reviews++
		}
	}
	log.Info().Int("count", reviews).Msg("reviews created")
	log.Info().Msg("seed complete; users log in with password123")
}

func mustUsers(ctx context.Context, f *facade.Facade, emails []string, role string) []*domain.User {
	out := make([]*domain.User, 0, len(emails))
	for i, email := range emails {
		u, err := f.CreateUser(ctx, facade.UserInput{
			FirstName: fmt.Sprintf("%s%d", role, i+1),
			LastName:  "Demo",
			Email:     email,
			Password:  "password123",
		})
		if err != nil {
			log.Fatal().Err(err).Str("email", email).Msg("create user")
		}
		out = append(out, u)
	}
	return out
}
