package repository

import (
	"testing"

	"github.com/ikkim/dinehub-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchRepository(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	defer db.CleanupTestDB(testDB)

	repo := NewSearchRepository(testDB)

	pizza := createTestRestaurant(t, testDB, "Pizza Palace", "Italian", 4.5)
	createTestRestaurant(t, testDB, "Curry House", "Indian", 3.0)
	closed := createTestRestaurant(t, testDB, "Old Pizza Place", "Italian", 4.8)
	require.NoError(t, testDB.Model(closed).Update("is_active", false).Error)

	createTestMenuItem(t, testDB, pizza.ID, "Margherita Pizza", 9.5)
	bread := createTestMenuItem(t, testDB, pizza.ID, "Garlic Bread", 4.0)
	require.NoError(t, testDB.Model(bread).Update("description", "Bread with PIZZA spices").Error)

	active := true
	minRating := 4.0

	tests := []struct {
		name      string
		filter    SearchFilter
		wantNames []string
	}{
		{
			name:      "Case-insensitive name match, active only",
			filter:    SearchFilter{Query: "PIZZA", IsActive: &active, Limit: 100},
			wantNames: []string{"Pizza Palace"},
		},
		{
			name:      "No active filter includes inactive",
			filter:    SearchFilter{Query: "pizza", Limit: 100},
			wantNames: []string{"Pizza Palace", "Old Pizza Place"},
		},
		{
			name:      "Cuisine substring",
			filter:    SearchFilter{Cuisine: "ind", IsActive: &active, Limit: 100},
			wantNames: []string{"Curry House"},
		},
		{
			name:      "Minimum rating",
			filter:    SearchFilter{MinRating: &minRating, IsActive: &active, Limit: 100},
			wantNames: []string{"Pizza Palace"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restaurants, err := repo.SearchRestaurants(tt.filter)
			require.NoError(t, err)

			var names []string
			for _, r := range restaurants {
				names = append(names, r.Name)
			}
			assert.ElementsMatch(t, tt.wantNames, names)
		})
	}

	items, err := repo.SearchMenuItems(SearchFilter{Query: "pizza", Limit: 100})
	require.NoError(t, err)
	var itemNames []string
	for _, it := range items {
		itemNames = append(itemNames, it.Name)
	}
	assert.ElementsMatch(t, []string{"Margherita Pizza", "Garlic Bread"}, itemNames)
}
