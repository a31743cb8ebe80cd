package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ikkim/dinehub-backend/config"
	"github.com/ikkim/dinehub-backend/internal/app/model"
	"github.com/ikkim/dinehub-backend/internal/app/repository"
	"github.com/ikkim/dinehub-backend/internal/db"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testJWTConfig = config.JWTConfig{
	Secret:            "test-secret-key",
	AccessTokenExpiry: time.Hour,
}

type testEnv struct {
	db        *gorm.DB
	userRepo  repository.UserRepository
	orderRepo repository.OrderRepository

	auth      AuthService
	users     UserService
	catalog   CatalogService
	orders    OrderService
	reviews   ReviewService
	favorites FavoriteService
	search    SearchService
	reports   ReportService
	revoker   *fakeRevoker
}

func setupTestEnv(t *testing.T) *testEnv {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	userRepo := repository.NewUserRepository(testDB)
	orderRepo := repository.NewOrderRepository(testDB)
	catalog := NewCatalogService(
		repository.NewRestaurantRepository(testDB),
		repository.NewMenuItemRepository(testDB),
	)
	revoker := newFakeRevoker()

	return &testEnv{
		db:        testDB,
		userRepo:  userRepo,
		orderRepo: orderRepo,
		auth:      NewAuthService(userRepo, testJWTConfig, revoker),
		users:     NewUserService(userRepo),
		catalog:   catalog,
		orders:    NewOrderService(orderRepo, catalog),
		reviews:   NewReviewService(repository.NewReviewRepository(testDB), orderRepo, catalog),
		favorites: NewFavoriteService(repository.NewFavoriteRepository(testDB), catalog),
		search:    NewSearchService(repository.NewSearchRepository(testDB)),
		reports:   NewReportService(orderRepo),
		revoker:   revoker,
	}
}

func (e *testEnv) createUser(t *testing.T, email string, role model.UserRole) *model.User {
	user := &model.User{
		Email:        email,
		PasswordHash: "hash",
		Name:         "Test User",
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, e.userRepo.Create(user))
	return user
}

func (e *testEnv) createRestaurant(t *testing.T, name string, menu ...MenuItemInput) *model.Restaurant {
	restaurant, err := e.catalog.CreateRestaurant(RestaurantInput{
		Name:    strPtr(name),
		Address: strPtr("1 Main Street"),
		Cuisine: strPtr("Italian"),
	}, menu)
	require.NoError(t, err)
	return restaurant
}

// deliver forces an order to DELIVERED through the admin path.
func (e *testEnv) deliver(t *testing.T, orderID uint) {
	_, err := e.orders.AdminUpdateStatus(orderID, model.OrderStatusDelivered)
	require.NoError(t, err)
}

func menuItem(name string, price float64) MenuItemInput {
	return MenuItemInput{Name: strPtr(name), Price: floatPtr(price)}
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }
func intPtr(i int) *int           { return &i }

type fakeRevoker struct {
	mu      sync.Mutex
	revoked map[string]time.Duration
	err     error
}

func newFakeRevoker() *fakeRevoker {
	return &fakeRevoker{revoked: make(map[string]time.Duration)}
}

func (f *fakeRevoker) Revoke(_ context.Context, token string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.revoked[token] = ttl
	return nil
}

func (f *fakeRevoker) IsRevoked(_ context.Context, token string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.revoked[token]
	return ok, nil
}
