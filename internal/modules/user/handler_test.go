package user

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
	"hbnb/internal/middleware"
	"hbnb/internal/pkg/jwt"
	"hbnb/internal/repository"
)

type userEnvelope struct {
	Success bool         `json:"success"`
	Data    UserResponse `json:"data"`
}

type errorEnvelope struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

type testEnv struct {
	router *gin.Engine
	facade *facade.Facade
	tokens *jwt.Service
}

func setupRouter(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.Connect(fmt.Sprintf("file:users_handler_%s?mode=memory&cache=shared", name), zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))
	t.Cleanup(func() { _ = database.Close(db) })

	f := facade.New(repository.NewStore(db), facade.WithBcryptCost(bcrypt.MinCost))
	tokens := jwt.New("test-secret", time.Hour)

	router := gin.New()
	v1 := router.Group("/api/v1")
	public := v1.Group("")
	public.Use(middleware.OptionalJWTAuth(tokens))
	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(tokens))
	NewHandler(f).RegisterRoutes(public, protected)

	return &testEnv{router: router, facade: f, tokens: tokens}
}

func (e *testEnv) user(t *testing.T, email string, admin bool) (string, string) {
	t.Helper()
	u, err := e.facade.CreateUser(context.Background(), facade.UserInput{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  "secret",
		IsAdmin:   admin,
	})
	require.NoError(t, err)
	token, err := e.tokens.GenerateToken(u.ID, u.IsAdmin)
	require.NoError(t, err)
	return u.ID, token
}

func performRequest(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.False(t, env.Success)
	return env
}

func TestCreateUser(t *testing.T) {
	env := setupRouter(t)

	resp := performRequest(env.router, http.MethodPost, "/api/v1/users", map[string]any{
		"first_name": "John",
		"last_name":  "Doe",
		"email":      "John.Doe@Example.com",
		"password":   "secret",
	}, "")
	require.Equal(t, http.StatusCreated, resp.Code)
	assert.NotContains(t, resp.Body.String(), "password")

	var payload userEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.True(t, payload.Success)
	assert.NotEmpty(t, payload.Data.ID)
	assert.Equal(t, "john.doe@example.com", payload.Data.Email)
	assert.False(t, payload.Data.IsAdmin)
}

func TestCreateUser_Errors(t *testing.T) {
	env := setupRouter(t)
	env.user(t, "taken@example.com", false)
	_, userToken := env.user(t, "plain@example.com", false)

	valid := func(email string) map[string]any {
		return map[string]any{"first_name": "A", "last_name": "B", "email": email, "password": "secret"}
	}

	t.Run("invalid email", func(t *testing.T) {
		resp := performRequest(env.router, http.MethodPost, "/api/v1/users", valid("not-an-email"), "")
		require.Equal(t, http.StatusBadRequest, resp.Code)
		e := decodeError(t, resp)
		assert.Equal(t, "VALIDATION_ERROR", e.Error.Code)
		assert.Equal(t, "email", e.Error.Details["field"])
	})

	t.Run("duplicate email", func(t *testing.T) {
		resp := performRequest(env.router, http.MethodPost, "/api/v1/users", valid("TAKEN@example.com"), "")
		require.Equal(t, http.StatusConflict, resp.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		env.router.ServeHTTP(resp, req)
		require.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("admin flag from anonymous caller", func(t *testing.T) {
		body := valid("anon-admin@example.com")
		body["is_admin"] = true
		resp := performRequest(env.router, http.MethodPost, "/api/v1/users", body, "")
		require.Equal(t, http.StatusForbidden, resp.Code)
	})

	t.Run("admin flag from regular user", func(t *testing.T) {
		body := valid("user-admin@example.com")
		body["is_admin"] = true
		resp := performRequest(env.router, http.MethodPost, "/api/v1/users", body, userToken)
		require.Equal(t, http.StatusForbidden, resp.Code)
	})
}

func TestCreateUser_AdminCreatesAdmin(t *testing.T) {
	env := setupRouter(t)
	_, adminToken := env.user(t, "admin@example.com", true)

	resp := performRequest(env.router, http.MethodPost, "/api/v1/users", map[string]any{
		"first_name": "New",
		"last_name":  "Admin",
		"email":      "second-admin@example.com",
		"password":   "secret",
		"is_admin":   true,
	}, adminToken)
	require.Equal(t, http.StatusCreated, resp.Code)

	var payload userEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.True(t, payload.Data.IsAdmin)
}

func TestListUsers(t *testing.T) {
	env := setupRouter(t)
	_, adminToken := env.user(t, "admin@example.com", true)
	_, userToken := env.user(t, "user@example.com", false)

	resp := performRequest(env.router, http.MethodGet, "/api/v1/users", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = performRequest(env.router, http.MethodGet, "/api/v1/users", nil, userToken)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	resp = performRequest(env.router, http.MethodGet, "/api/v1/users", nil, adminToken)
	require.Equal(t, http.StatusOK, resp.Code)
	var payload struct {
		Data []UserResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Len(t, payload.Data, 2)
	assert.Equal(t, "admin@example.com", payload.Data[0].Email)
}

func TestGetUser(t *testing.T) {
	env := setupRouter(t)
	_, adminToken := env.user(t, "admin@example.com", true)
	aliceID, aliceToken := env.user(t, "alice@example.com", false)
	bobID, _ := env.user(t, "bob@example.com", false)

	resp := performRequest(env.router, http.MethodGet, "/api/v1/users/"+aliceID, nil, aliceToken)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = performRequest(env.router, http.MethodGet, "/api/v1/users/"+bobID, nil, aliceToken)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	resp = performRequest(env.router, http.MethodGet, "/api/v1/users/"+bobID, nil, adminToken)
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = performRequest(env.router, http.MethodGet, "/api/v1/users/missing", nil, adminToken)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
}

func TestUpdateUser(t *testing.T) {
	env := setupRouter(t)
	_, adminToken := env.user(t, "admin@example.com", true)
	aliceID, aliceToken := env.user(t, "alice@example.com", false)
	bobID, _ := env.user(t, "bob@example.com", false)

	t.Run("self rename", func(t *testing.T) {
		resp := performRequest(env.router, http.MethodPut, "/api/v1/users/"+aliceID, map[string]any{
			"first_name": "Alicia",
			"id":         "ignored",
		}, aliceToken)
		require.Equal(t, http.StatusOK, resp.Code)
		var payload userEnvelope
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		assert.Equal(t, aliceID, payload.Data.ID)
		assert.Equal(t, "Alicia", payload.Data.FirstName)
		assert.True(t, payload.Data.UpdatedAt.After(payload.Data.CreatedAt))
	})

	t.Run("self email change denied", func(t *testing.T) {
		resp := performRequest(env.router, http.MethodPut, "/api/v1/users/"+aliceID, map[string]any{
			"email": "new@example.com",
		}, aliceToken)
		assert.Equal(t, http.StatusForbidden, resp.Code)
	})

	t.Run("other user denied", func(t *testing.T) {
		resp := performRequest(env.router, http.MethodPut, "/api/v1/users/"+bobID, map[string]any{
			"first_name": "Robert",
		}, aliceToken)
		assert.Equal(t, http.StatusForbidden, resp.Code)
	})

	t.Run("admin changes email", func(t *testing.T) {
		resp := performRequest(env.router, http.MethodPut, "/api/v1/users/"+bobID, map[string]any{
			"email": "robert@example.com",
		}, adminToken)
		require.Equal(t, http.StatusOK, resp.Code)
	})

	t.Run("admin email conflict", func(t *testing.T) {
		resp := performRequest(env.router, http.MethodPut, "/api/v1/users/"+bobID, map[string]any{
			"email": "alice@example.com",
		}, adminToken)
		assert.Equal(t, http.StatusConflict, resp.Code)
	})

	t.Run("invalid value", func(t *testing.T) {
		resp := performRequest(env.router, http.MethodPut, "/api/v1/users/"+aliceID, map[string]any{
			"first_name": "",
		}, aliceToken)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("missing user", func(t *testing.T) {
		resp := performRequest(env.router, http.MethodPut, "/api/v1/users/missing", map[string]any{
			"first_name": "X",
		}, adminToken)
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestDeleteUser(t *testing.T) {
	env := setupRouter(t)
	adminID, adminToken := env.user(t, "admin@example.com", true)
	aliceID, aliceToken := env.user(t, "alice@example.com", false)

	resp := performRequest(env.router, http.MethodDelete, "/api/v1/users/"+aliceID, nil, aliceToken)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	resp = performRequest(env.router, http.MethodDelete, "/api/v1/users/"+adminID, nil, adminToken)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	resp = performRequest(env.router, http.MethodDelete, "/api/v1/users/"+aliceID, nil, adminToken)
	require.Equal(t, http.StatusNoContent, resp.Code)
	assert.Empty(t, resp.Body.String())

	resp = performRequest(env.router, http.MethodDelete, "/api/v1/users/"+aliceID, nil, adminToken)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
