package repository

import (
	"testing"

	"github.com/ikkim/dinehub-backend/internal/app/model"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestUser(t *testing.T, db *gorm.DB, email string) *model.User {
	user := &model.User{
		Email:        email,
		PasswordHash: "hash",
		Name:         "Test User",
		Role:         model.RoleCustomer,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestRestaurant(t *testing.T, db *gorm.DB, name, cuisine string, rating float64) *model.Restaurant {
	restaurant := &model.Restaurant{
		Name:     name,
		Address:  "1 Main St",
		Cuisine:  cuisine,
		Rating:   rating,
		IsActive: true,
	}
	require.NoError(t, db.Create(restaurant).Error)
	return restaurant
}

func createTestMenuItem(t *testing.T, db *gorm.DB, restaurantID uint, name string, price float64) *model.MenuItem {
	item := &model.MenuItem{
		RestaurantID: restaurantID,
		Name:         name,
		Price:        price,
		IsAvailable:  true,
		Category:     "Main",
	}
	require.NoError(t, db.Create(item).Error)
	return item
}
