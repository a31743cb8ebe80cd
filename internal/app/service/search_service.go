package service

import (
	"strings"

	"github.com/ikkim/dinehub-backend/internal/app/model"
	"github.com/ikkim/dinehub-backend/internal/app/repository"
	apperrors "github.com/ikkim/dinehub-backend/internal/errors"
	"github.com/ikkim/dinehub-backend/pkg/logger"
)

// SearchParams mirrors the /search query string. A nil IsActive means true.
type SearchParams struct {
	Query     string
	Cuisine   string
	MinRating *float64
	IsActive  *bool
	Skip      int
	Limit     int
}

type SearchResult struct {
	Restaurants []model.Restaurant `json:"restaurants"`
	MenuItems   []model.MenuItem   `json:"menu_items"`
}

type SearchService interface {
	Search(params SearchParams) (*SearchResult, error)
}

type searchService struct {
	searchRepo repository.SearchRepository
}

func NewSearchService(searchRepo repository.SearchRepository) SearchService {
	return &searchService{searchRepo: searchRepo}
}

func (s *searchService) Search(params SearchParams) (*SearchResult, error) {
	if err := validatePage(params.Skip, params.Limit); err != nil {
		return nil, err
	}
	if params.MinRating != nil && (*params.MinRating < 0 || *params.MinRating > 5) {
		return nil, apperrors.Validation("min_rating", "Minimum rating must be between 0.0 and 5.0")
	}

	isActive := true
	if params.IsActive != nil {
		isActive = *params.IsActive
	}

	filter := repository.SearchFilter{
		Query:     strings.TrimSpace(params.Query),
		Cuisine:   strings.TrimSpace(params.Cuisine),
		MinRating: params.MinRating,
		IsActive:  &isActive,
		Skip:      params.Skip,
		Limit:     params.Limit,
	}

	restaurants, err := s.searchRepo.SearchRestaurants(filter)
	if err != nil {
		return nil, apperrors.FromDB(err, "restaurants")
	}

	// menu items only filter on free text; an empty query lists them all
	items, err := s.searchRepo.SearchMenuItems(filter)
	if err != nil {
		return nil, apperrors.FromDB(err, "menu items")
	}

	logger.Debug("Search completed", map[string]interface{}{
		"query":       filter.Query,
		"restaurants": len(restaurants),
		"menu_items":  len(items),
	})

	return &SearchResult{
		Restaurants: restaurants,
		MenuItems:   items,
	}, nil
}
