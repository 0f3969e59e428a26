package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"hbnb/internal/database"
	"hbnb/internal/facade"
	"hbnb/internal/logging"
	"hbnb/internal/middleware"
	"hbnb/internal/pkg/jwt"
	"hbnb/internal/repository"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type apiClient struct {
	t      *testing.T
	router *gin.Engine
}

func setupAPI(t *testing.T) (*apiClient, *facade.Facade) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.Connect(fmt.Sprintf("file:app_%s?mode=memory&cache=shared", name), zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))
	t.Cleanup(func() { _ = database.Close(db) })

	f := facade.New(repository.NewStore(db), facade.WithBcryptCost(bcrypt.MinCost))
	router, err := NewRouter(Deps{
		DB:           db,
		Facade:       f,
		Tokens:       jwt.New("test-secret", 3*time.Hour),
		Logger:       logging.Nop(),
		LoginLimiter: middleware.NewRateLimiter(600, 100),
	})
	require.NoError(t, err)
	return &apiClient{t: t, router: router}, f
}

func (a *apiClient) do(method, path string, body any, token string) (*httptest.ResponseRecorder, envelope) {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	a.router.ServeHTTP(resp, req)

	var env envelope
	if resp.Body.Len() > 0 {
		require.NoError(a.t, json.Unmarshal(resp.Body.Bytes(), &env))
	}
	return resp, env
}

func (a *apiClient) register(email string) string {
	a.t.Helper()
	resp, env := a.do(http.MethodPost, "/api/v1/users", map[string]any{
		"first_name": "Test",
		"last_name":  "User",
		"email":      email,
		"password":   "secret",
	}, "")
	require.Equal(a.t, http.StatusCreated, resp.Code, resp.Body.String())
	var u struct {
		ID string `json:"id"`
	}
	require.NoError(a.t, json.Unmarshal(env.Data, &u))
	return u.ID
}

func (a *apiClient) login(email string) string {
	a.t.Helper()
	resp, env := a.do(http.MethodPost, "/api/v1/auth/login", map[string]any{
		"email":    email,
		"password": "secret",
	}, "")
	require.Equal(a.t, http.StatusOK, resp.Code, resp.Body.String())
	var out struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	require.NoError(a.t, json.Unmarshal(env.Data, &out))
	require.NotEmpty(a.t, out.AccessToken)
	assert.Equal(a.t, "Bearer", out.TokenType)
	assert.Equal(a.t, int64((3 * time.Hour).Seconds()), out.ExpiresIn)
	return out.AccessToken
}

func TestHealthz(t *testing.T) {
	api, _ := setupAPI(t)
	resp, env := api.do(http.MethodGet, "/healthz", nil, "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, resp.Header().Get(middleware.RequestIDHeader))
}

func TestLogin(t *testing.T) {
	api, _ := setupAPI(t)
	aliceID := api.register("alice@example.com")

	token := api.login("ALICE@example.com")
	resp, env := api.do(http.MethodGet, "/api/v1/auth/protected", nil, token)
	require.Equal(t, http.StatusOK, resp.Code)
	var who struct {
		UserID  string `json:"user_id"`
		IsAdmin bool   `json:"is_admin"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &who))
	assert.Equal(t, aliceID, who.UserID)
	assert.False(t, who.IsAdmin)

	resp, env = api.do(http.MethodPost, "/api/v1/auth/login", map[string]any{
		"email": "alice@example.com", "password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)

	resp, _ = api.do(http.MethodPost, "/api/v1/auth/login", map[string]any{
		"email": "nobody@example.com", "password": "secret",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp, env = api.do(http.MethodGet, "/api/v1/auth/protected", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "AUTH_HEADER_MISSING", env.Error.Code)
}

func TestReviewScenario(t *testing.T) {
	api, _ := setupAPI(t)

	api.register("a@example.com")
	tokenA := api.login("a@example.com")
	resp, env := api.do(http.MethodPost, "/api/v1/places", map[string]any{
		"title": "P", "price": 50.0, "latitude": 10.0, "longitude": 20.0,
	}, tokenA)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	var p struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &p))

	api.register("b@example.com")
	tokenB := api.login("b@example.com")
	review := map[string]any{"text": "ok", "rating": 5, "place_id": p.ID}

	resp, env = api.do(http.MethodPost, "/api/v1/reviews", review, tokenB)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	var rv struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &rv))

	resp, env = api.do(http.MethodPost, "/api/v1/reviews", review, tokenB)
	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Equal(t, "CONFLICT", env.Error.Code)

	resp, env = api.do(http.MethodPost, "/api/v1/reviews", review, tokenA)
	assert.Equal(t, http.StatusForbidden, resp.Code)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)

	var place struct {
		ReviewsCount int `json:"reviews_count"`
	}
	_, env = api.do(http.MethodGet, "/api/v1/places/"+p.ID, nil, "")
	require.NoError(t, json.Unmarshal(env.Data, &place))
	assert.Equal(t, 1, place.ReviewsCount)

	resp, _ = api.do(http.MethodDelete, "/api/v1/reviews/"+rv.ID, nil, tokenB)
	require.Equal(t, http.StatusNoContent, resp.Code)

	_, env = api.do(http.MethodGet, "/api/v1/places/"+p.ID, nil, "")
	require.NoError(t, json.Unmarshal(env.Data, &place))
	assert.Equal(t, 0, place.ReviewsCount)

	resp, _ = api.do(http.MethodGet, "/api/v1/reviews/"+rv.ID, nil, "")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDeleteUserCascade(t *testing.T) {
	api, f := setupAPI(t)
	ctx := context.Background()

	_, _, err := f.EnsureAdmin(ctx, facade.UserInput{
		FirstName: "Admin",
		LastName:  "User",
		Email:     "admin@example.com",
		Password:  "secret",
	})
	require.NoError(t, err)
	adminToken := api.login("admin@example.com")

	ownerID := api.register("owner@example.com")
	ownerToken := api.login("owner@example.com")
	guestID := api.register("guest@example.com")
	guestToken := api.login("guest@example.com")

	resp, env := api.do(http.MethodPost, "/api/v1/places", map[string]any{
		"title": "Owned", "price": 10.0, "latitude": 0.0, "longitude": 0.0,
	}, ownerToken)
	require.Equal(t, http.StatusCreated, resp.Code)
	var owned struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &owned))

	resp, env = api.do(http.MethodPost, "/api/v1/places", map[string]any{
		"title": "Guest house", "price": 10.0, "latitude": 0.0, "longitude": 0.0,
	}, guestToken)
	require.Equal(t, http.StatusCreated, resp.Code)
	var guestPlace struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &guestPlace))

	resp, _ = api.do(http.MethodPost, "/api/v1/reviews", map[string]any{"text": "nice", "rating": 4, "place_id": owned.ID}, guestToken)
	require.Equal(t, http.StatusCreated, resp.Code)
	resp, _ = api.do(http.MethodPost, "/api/v1/reviews", map[string]any{"text": "fine", "rating": 3, "place_id": guestPlace.ID}, ownerToken)
	require.Equal(t, http.StatusCreated, resp.Code)

	resp, _ = api.do(http.MethodDelete, "/api/v1/users/"+ownerID, nil, adminToken)
	require.Equal(t, http.StatusNoContent, resp.Code)

	places, err := f.GetAllPlaces(ctx)
	require.NoError(t, err)
	for _, p := range places {
		assert.NotEqual(t, ownerID, p.OwnerID)
	}
	reviews, err := f.GetAllReviews(ctx)
	require.NoError(t, err)
	for _, r := range reviews {
		assert.NotEqual(t, ownerID, r.UserID)
		assert.NotEqual(t, owned.ID, r.PlaceID)
	}

	_, env = api.do(http.MethodGet, "/api/v1/users/"+guestID, nil, guestToken)
	assert.True(t, env.Success)
	resp, _ = api.do(http.MethodGet, "/api/v1/places/"+owned.ID, nil, "")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestPasswordNeverReturned(t *testing.T) {
	api, _ := setupAPI(t)
	id := api.register("alice@example.com")
	token := api.login("alice@example.com")

	resp, _ := api.do(http.MethodGet, "/api/v1/users/"+id, nil, token)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.NotContains(t, resp.Body.String(), "password")
}

func TestLoginRateLimited(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, err := database.Connect("file:app_rate_limited?mode=memory&cache=shared", zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))
	t.Cleanup(func() { _ = database.Close(db) })

	router, err := NewRouter(Deps{
		DB:           db,
		Facade:       facade.New(repository.NewStore(db), facade.WithBcryptCost(bcrypt.MinCost)),
		Tokens:       jwt.New("test-secret", time.Hour),
		Logger:       logging.Nop(),
		LoginLimiter: middleware.NewRateLimiter(1, 1),
	})
	require.NoError(t, err)
	api := &apiClient{t: t, router: router}

	body := map[string]any{"email": "x@example.com", "password": "secret"}
	resp, _ := api.do(http.MethodPost, "/api/v1/auth/login", body, "")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	resp, env := api.do(http.MethodPost, "/api/v1/auth/login", body, "")
	assert.Equal(t, http.StatusTooManyRequests, resp.Code)
	assert.Equal(t, "RATE_LIMITED", env.Error.Code)
}

func TestLoginRateLimitIgnoresForwardedFor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, err := database.Connect("file:app_rate_forwarded?mode=memory&cache=shared", zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))
	t.Cleanup(func() { _ = database.Close(db) })

	router, err := NewRouter(Deps{
		DB:           db,
		Facade:       facade.New(repository.NewStore(db), facade.WithBcryptCost(bcrypt.MinCost)),
		Tokens:       jwt.New("test-secret", time.Hour),
		Logger:       logging.Nop(),
		LoginLimiter: middleware.NewRateLimiter(1, 1),
	})
	require.NoError(t, err)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
			strings.NewReader(`{"email":"x@example.com","password":"secret"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i))
		req.RemoteAddr = "203.0.113.7:4000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusUnauthorized, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
}

func TestNewRouterRejectsBadTrustedProxy(t *testing.T) {
	_, err := NewRouter(Deps{Logger: logging.Nop(), TrustedProxies: []string{"not-an-ip"}})
	assert.Error(t, err)
}
