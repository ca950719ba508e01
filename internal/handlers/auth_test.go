package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/journali/journal-api/internal/auth"
	"github.com/journali/journal-api/internal/constants"
	"github.com/journali/journal-api/internal/database"
	"github.com/journali/journal-api/internal/dto"
	"github.com/journali/journal-api/internal/middleware"
	"github.com/journali/journal-api/internal/models"
	"github.com/journali/journal-api/internal/repository"
	"github.com/journali/journal-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type authTestEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	authService *services.AuthService
	tokens      *auth.TokenService
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{})
	require.NoError(t, err)

	database.SetDB(db)

	tokens := auth.NewTokenService("test-secret", constants.TokenIssuer, time.Hour)
	authService := services.NewAuthService(repository.NewUserRepository(db))
	handler := NewAuthHandler(authService, tokens)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	api.POST("/register", handler.Register)
	api.POST("/login", handler.Login)
	protected := api.Group("")
	protected.Use(middleware.RequireAuth(tokens))
	protected.GET("/user/me", handler.GetCurrentUser)
	protected.PATCH("/users/:id", handler.UpdateUser)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		db:          db,
		router:      r,
		authService: authService,
		tokens:      tokens,
	}
}

func (env authTestEnv) do(t *testing.T, method, url string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/register", map[string]string{
		"username": "alice",
		"password": "s3cret",
	}, "")

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "alice", response.Username)

	// The password hash must never appear in the response.
	require.NotContains(t, w.Body.String(), "password")
}

func TestAuthHandler_RegisterDuplicateUsername(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/register", map[string]string{
		"username": "alice",
		"password": "s3cret",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/api/register", map[string]string{
		"username": "alice",
		"password": "another-password",
	}, "")
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_RegisterShortPassword(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/register", map[string]string{
		"username": "alice",
		"password": "tiny",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/register", map[string]string{
		"username": "alice",
		"password": "s3cret",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/api/login", map[string]string{
		"username": "alice",
		"password": "s3cret",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.TokenDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.Token)

	w = env.do(t, http.MethodPost, "/api/login", map[string]string{
		"username": "alice",
		"password": "wrong",
	}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	env := setupAuthTestEnv(t)

	user, err := env.authService.Register(context.Background(), services.RegisterInput{
		Username: "current-user",
		Password: "supersecret",
	})
	require.NoError(t, err)

	token, err := env.tokens.Issue(user.ID)
	require.NoError(t, err)

	w := env.do(t, http.MethodGet, "/api/user/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, user.Username, response.Username)
	require.Equal(t, user.ID, response.ID)
}

func TestAuthHandler_GetCurrentUserWithoutToken(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/user/me", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_UpdateUser(t *testing.T) {
	env := setupAuthTestEnv(t)

	user, err := env.authService.Register(context.Background(), services.RegisterInput{
		Username: "old-name",
		Password: "supersecret",
	})
	require.NoError(t, err)

	token, err := env.tokens.Issue(user.ID)
	require.NoError(t, err)

	w := env.do(t, http.MethodPatch, "/api/users/"+user.ID.String(), map[string]string{
		"username": "new-name",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "new-name", response.Username)
}

func TestAuthHandler_UpdateOtherUserNotFound(t *testing.T) {
	env := setupAuthTestEnv(t)

	user, err := env.authService.Register(context.Background(), services.RegisterInput{
		Username: "victim",
		Password: "supersecret",
	})
	require.NoError(t, err)

	attacker, err := env.authService.Register(context.Background(), services.RegisterInput{
		Username: "attacker",
		Password: "supersecret",
	})
	require.NoError(t, err)

	token, err := env.tokens.Issue(attacker.ID)
	require.NoError(t, err)

	w := env.do(t, http.MethodPatch, "/api/users/"+user.ID.String(), map[string]string{
		"username": "pwned",
	}, token)
	require.Equal(t, http.StatusNotFound, w.Code)
}
