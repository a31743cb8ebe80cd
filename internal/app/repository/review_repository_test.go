package repository

import (
	"testing"

	"github.com/ikkim/dinehub-backend/internal/app/model"
	"github.com/ikkim/dinehub-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestReviewRepository_UniquePerUserAndRestaurant(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	defer db.CleanupTestDB(testDB)

	repo := NewReviewRepository(testDB)
	user := createTestUser(t, testDB, "reviewer@example.com")
	restaurant := createTestRestaurant(t, testDB, "Sushi Bar", "Japanese", 0)
	other := createTestRestaurant(t, testDB, "Ramen Shop", "Japanese", 0)

	require.NoError(t, repo.Create(&model.Review{UserID: user.ID, RestaurantID: restaurant.ID, Rating: 4}))

	err = repo.Create(&model.Review{UserID: user.ID, RestaurantID: restaurant.ID, Rating: 2})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	assert.NoError(t, repo.Create(&model.Review{UserID: user.ID, RestaurantID: other.ID, Rating: 5}))
}

func TestReviewRepository_FindAndDelete(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	defer db.CleanupTestDB(testDB)

	repo := NewReviewRepository(testDB)
	user := createTestUser(t, testDB, "reviewer@example.com")
	restaurant := createTestRestaurant(t, testDB, "Taqueria", "Mexican", 0)

	comment := "Great tacos"
	review := &model.Review{UserID: user.ID, RestaurantID: restaurant.ID, Rating: 5, Comment: &comment}
	require.NoError(t, repo.Create(review))

	found, err := repo.FindByUserAndRestaurant(user.ID, restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, review.ID, found.ID)
	require.NotNil(t, found.Comment)
	assert.Equal(t, "Great tacos", *found.Comment)

	reviews, err := repo.FindByRestaurantID(restaurant.ID, 0, 10)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)

	require.NoError(t, repo.Delete(review.ID))
	assert.ErrorIs(t, repo.Delete(review.ID), gorm.ErrRecordNotFound)
}
