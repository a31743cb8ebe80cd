package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/dinehub-backend/config"
	"github.com/ikkim/dinehub-backend/internal/app/controller"
	"github.com/ikkim/dinehub-backend/internal/app/repository"
	"github.com/ikkim/dinehub-backend/internal/app/service"
	"github.com/ikkim/dinehub-backend/internal/db"
	"github.com/ikkim/dinehub-backend/internal/middleware"
	"github.com/ikkim/dinehub-backend/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "admin-password"
)

type TestServer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

func setupIntegrationTest(t *testing.T) *TestServer {
	gin.SetMode(gin.TestMode)

	// Setup database
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})
	require.NoError(t, db.SeedAdmin(testDB, adminEmail, adminPassword))

	cfg := &config.Config{
		Server: config.ServerConfig{GinMode: gin.TestMode},
		JWT: config.JWTConfig{
			Secret:            "test-secret",
			AccessTokenExpiry: 15 * time.Minute,
		},
		CORS: config.CORSConfig{AllowedOrigins: []string{"*"}},
	}

	// Setup repositories
	userRepo := repository.NewUserRepository(testDB)
	orderRepo := repository.NewOrderRepository(testDB)

	// Setup services
	authService := service.NewAuthService(userRepo, cfg.JWT, nil)
	userService := service.NewUserService(userRepo)
	catalogService := service.NewCatalogService(
		repository.NewRestaurantRepository(testDB),
		repository.NewMenuItemRepository(testDB),
	)
	orderService := service.NewOrderService(orderRepo, catalogService)
	reviewService := service.NewReviewService(repository.NewReviewRepository(testDB), orderRepo, catalogService)
	favoriteService := service.NewFavoriteService(repository.NewFavoriteRepository(testDB), catalogService)
	searchService := service.NewSearchService(repository.NewSearchRepository(testDB))

	r := router.NewRouter(
		controller.NewAuthController(authService, userService),
		controller.NewUserController(userService),
		controller.NewRestaurantController(catalogService),
		controller.NewOrderController(orderService, service.NewReportService(orderRepo)),
		controller.NewReviewController(reviewService),
		controller.NewFavoriteController(favoriteService),
		controller.NewSearchController(searchService),
		controller.NewUploadController(service.NewUploadService(nil)),
		middleware.NewAuthMiddleware(authService),
		cfg,
	)

	return &TestServer{
		Router: r.Setup(),
		DB:     testDB,
	}
}

func (ts *TestServer) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []interface{} {
	var out []interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func (ts *TestServer) login(t *testing.T, email, password string) string {
	w := ts.request(t, http.MethodPost, "/api/v1/users/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decodeJSON(t, w)
	assert.Equal(t, "bearer", resp["token_type"])
	return resp["access_token"].(string)
}

func TestCompleteDinerJourney(t *testing.T) {
	ts := setupIntegrationTest(t)

	t.Log("Step 1: Admin creates a restaurant with a menu")
	adminToken := ts.login(t, adminEmail, adminPassword)
	w := ts.request(t, http.MethodPost, "/api/v1/restaurants", adminToken, map[string]interface{}{
		"name":    "Trattoria",
		"address": "1 Main Street",
		"cuisine": "Italian",
		"menu_items": []map[string]interface{}{
			{"name": "Margherita", "price": 5.00},
			{"name": "Tiramisu", "price": 3.50},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	restaurant := decodeJSON(t, w)
	restaurantID := uint(restaurant["id"].(float64))
	menu := restaurant["menu_items"].([]interface{})
	require.Len(t, menu, 2)
	margheritaID := menu[0].(map[string]interface{})["id"]
	tiramisuID := menu[1].(map[string]interface{})["id"]

	t.Log("Step 2: Diner registers and logs in")
	w = ts.request(t, http.MethodPost, "/api/v1/users/register", "", map[string]string{
		"email":    "diner@example.com",
		"password": "password123",
		"name":     "Test Diner",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "password")
	token := ts.login(t, "diner@example.com", "password123")

	t.Log("Step 3: Browse and search")
	w = ts.request(t, http.MethodGet, "/api/v1/restaurants", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 1)

	w = ts.request(t, http.MethodGet, "/api/v1/search?q=tiramisu", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeJSON(t, w)["menu_items"], 1)

	t.Log("Step 4: Place an order")
	w = ts.request(t, http.MethodPost, "/api/v1/orders", token, map[string]interface{}{
		"restaurant_id": restaurantID,
		"items": []map[string]interface{}{
			{"menu_item_id": margheritaID, "quantity": 2},
			{"menu_item_id": tiramisuID, "quantity": 1},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := decodeJSON(t, w)
	assert.Equal(t, "PENDING", order["status"])
	assert.InDelta(t, 13.50, order["total_price"].(float64), 0.001)
	orderPath := fmt.Sprintf("/api/v1/orders/%d", uint(order["id"].(float64)))

	t.Log("Step 5: Reviewing before delivery is rejected")
	review := map[string]interface{}{"restaurant_id": restaurantID, "rating": 5, "comment": "Great"}
	w = ts.request(t, http.MethodPost, "/api/v1/reviews", token, review)
	assert.Equal(t, http.StatusForbidden, w.Code)

	t.Log("Step 6: Admin delivers the order")
	w = ts.request(t, http.MethodPut, orderPath+"/status", adminToken, map[string]string{"status": "DELIVERED"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = ts.request(t, http.MethodPut, orderPath+"/cancel", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	t.Log("Step 7: Review and favorite")
	w = ts.request(t, http.MethodPost, "/api/v1/reviews", token, review)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = ts.request(t, http.MethodPost, "/api/v1/reviews", token, review)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = ts.request(t, http.MethodPost, fmt.Sprintf("/api/v1/favorites/%d", restaurantID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeJSON(t, w)["favorited"])

	t.Log("Step 8: Order history")
	w = ts.request(t, http.MethodGet, "/api/v1/orders/my", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 1)

	w = ts.request(t, http.MethodGet, "/api/v1/orders/admin", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthenticationFlow(t *testing.T) {
	ts := setupIntegrationTest(t)

	w := ts.request(t, http.MethodPost, "/api/v1/users/register", "", map[string]string{
		"email":    "test@example.com",
		"password": "password123",
		"name":     "Test User",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// OAuth2 password form
	form := url.Values{"username": {"test@example.com"}, "password": {"password123"}}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	accessToken := decodeJSON(t, w)["access_token"].(string)

	w = ts.request(t, http.MethodGet, "/api/v1/users/me", accessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decodeJSON(t, w)
	assert.Equal(t, "test@example.com", me["email"])
	assert.Equal(t, "customer", me["role"])

	w = ts.request(t, http.MethodPost, "/api/v1/users/logout", accessToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.request(t, http.MethodPost, "/api/v1/users/login", "", map[string]string{
		"email":    "test@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUnauthorizedAccess(t *testing.T) {
	ts := setupIntegrationTest(t)

	protectedRoutes := []string{
		"/api/v1/users/me",
		"/api/v1/orders/my",
		"/api/v1/favorites",
		"/api/v1/users",
	}

	for _, route := range protectedRoutes {
		t.Run(route, func(t *testing.T) {
			w := ts.request(t, http.MethodGet, route, "", nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestHealthAndCORS(t *testing.T) {
	ts := setupIntegrationTest(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://example.org")
	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}
