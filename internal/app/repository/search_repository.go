package repository

import (
	"strings"

	"github.com/ikkim/dinehub-backend/internal/app/model"
	"github.com/ikkim/dinehub-backend/pkg/logger"
	"gorm.io/gorm"
)

type SearchFilter struct {
	Query     string
	Cuisine   string
	MinRating *float64
	IsActive  *bool
	Skip      int
	Limit     int
}

type SearchRepository interface {
	SearchRestaurants(filter SearchFilter) ([]model.Restaurant, error)
	SearchMenuItems(filter SearchFilter) ([]model.MenuItem, error)
}

type searchRepository struct {
	db *gorm.DB
}

func NewSearchRepository(db *gorm.DB) SearchRepository {
	return &searchRepository{db: db}
}

// likePattern builds a case-insensitive substring pattern; callers compare
// against LOWER(column).
func likePattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

func (r *searchRepository) SearchRestaurants(filter SearchFilter) ([]model.Restaurant, error) {
	logger.Debug("Searching restaurants in database", map[string]interface{}{
		"query":      filter.Query,
		"cuisine":    filter.Cuisine,
		"min_rating": filter.MinRating,
		"is_active":  filter.IsActive,
	})

	query := r.db.Model(&model.Restaurant{})
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Query != "" {
		pattern := likePattern(filter.Query)
		query = query.Where("LOWER(name) LIKE ? OR LOWER(cuisine) LIKE ?", pattern, pattern)
	}
	if filter.Cuisine != "" {
		query = query.Where("LOWER(cuisine) LIKE ?", likePattern(filter.Cuisine))
	}
	if filter.MinRating != nil {
		query = query.Where("rating >= ?", *filter.MinRating)
	}

	var restaurants []model.Restaurant
	if err := query.Order("id ASC").Offset(filter.Skip).Limit(filter.Limit).Find(&restaurants).Error; err != nil {
		logger.Error("Failed to search restaurants in database", err)
		return nil, err
	}
	return restaurants, nil
}

func (r *searchRepository) SearchMenuItems(filter SearchFilter) ([]model.MenuItem, error) {
	logger.Debug("Searching menu items in database", map[string]interface{}{
		"query": filter.Query,
	})

	query := r.db.Model(&model.MenuItem{})
	if filter.Query != "" {
		pattern := likePattern(filter.Query)
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var items []model.MenuItem
	if err := query.Order("id ASC").Offset(filter.Skip).Limit(filter.Limit).Find(&items).Error; err != nil {
		logger.Error("Failed to search menu items in database", err)
		return nil, err
	}
	return items, nil
}
