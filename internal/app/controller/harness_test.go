package controller

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/dinehub-backend/config"
	"github.com/ikkim/dinehub-backend/internal/app/model"
	"github.com/ikkim/dinehub-backend/internal/app/repository"
	"github.com/ikkim/dinehub-backend/internal/app/service"
	"github.com/ikkim/dinehub-backend/internal/db"
	apperrors "github.com/ikkim/dinehub-backend/internal/errors"
	"github.com/ikkim/dinehub-backend/internal/middleware"
	"github.com/ikkim/dinehub-backend/pkg/util"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret"

type testServer struct {
	router   *gin.Engine
	db       *gorm.DB
	userRepo repository.UserRepository
	catalog  service.CatalogService
	orders   service.OrderService
	authMW   *middleware.AuthMiddleware
}

func setupTestServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	userRepo := repository.NewUserRepository(testDB)
	orderRepo := repository.NewOrderRepository(testDB)
	catalog := service.NewCatalogService(
		repository.NewRestaurantRepository(testDB),
		repository.NewMenuItemRepository(testDB),
	)
	authService := service.NewAuthService(userRepo, testJWTConfig(), nil)

	router := gin.New()
	router.Use(middleware.LoggingMiddleware())

	return &testServer{
		router:   router,
		db:       testDB,
		userRepo: userRepo,
		catalog:  catalog,
		orders:   service.NewOrderService(orderRepo, catalog),
		authMW:   middleware.NewAuthMiddleware(authService),
	}
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            testJWTSecret,
		AccessTokenExpiry: 15 * time.Minute,
	}
}

// userToken stores a user and returns a bearer token for it.
func (s *testServer) userToken(t *testing.T, email string, role model.UserRole) (*model.User, string) {
	user := &model.User{
		Email:        email,
		PasswordHash: "hash",
		Name:         "Test User",
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, s.userRepo.Create(user))

	token, err := util.GenerateToken(user.ID, user.Email, string(role), testJWTSecret, 15*time.Minute)
	require.NoError(t, err)
	return user, token.AccessToken
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) apperrors.ErrorResponse {
	var body apperrors.ErrorResponse
	decode(t, w, &body)
	return body
}

func jsonStr(s string) *string { return &s }

func jsonFloat(f float64) *float64 { return &f }
