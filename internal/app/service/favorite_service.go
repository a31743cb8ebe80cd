package service

import (
	"errors"

	"github.com/ikkim/dinehub-backend/internal/app/model"
	"github.com/ikkim/dinehub-backend/internal/app/repository"
	apperrors "github.com/ikkim/dinehub-backend/internal/errors"
	"github.com/ikkim/dinehub-backend/pkg/logger"
	"gorm.io/gorm"
)

type FavoriteService interface {
	// Toggle removes the favorite if present and creates it otherwise.
	// favorited reports the state after the call.
	Toggle(userID, restaurantID uint) (favorite *model.Favorite, favorited bool, err error)
	ListFavoriteRestaurants(userID uint, skip, limit int) ([]model.Restaurant, error)
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	catalog      CatalogService
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepository, catalog CatalogService) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		catalog:      catalog,
	}
}

func (s *favoriteService) Toggle(userID, restaurantID uint) (*model.Favorite, bool, error) {
	if _, err := s.catalog.GetRestaurant(restaurantID); err != nil {
		return nil, false, err
	}

	existing, err := s.favoriteRepo.Find(userID, restaurantID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, apperrors.FromDB(err, "favorite")
	}

	if existing != nil {
		if err := s.favoriteRepo.Delete(existing.ID); err != nil {
			return nil, false, apperrors.FromDB(err, "delete favorite")
		}
		logger.Info("Favorite removed", map[string]interface{}{
			"user_id":       userID,
			"restaurant_id": restaurantID,
		})
		return existing, false, nil
	}

	favorite := &model.Favorite{
		UserID:       userID,
		RestaurantID: restaurantID,
	}
	if err := s.favoriteRepo.Create(favorite); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// a concurrent toggle already added it
			current, findErr := s.favoriteRepo.Find(userID, restaurantID)
			if findErr == nil {
				return current, true, nil
			}
		}
		return nil, false, apperrors.FromDB(err, "create favorite")
	}

	logger.Info("Favorite added", map[string]interface{}{
		"user_id":       userID,
		"restaurant_id": restaurantID,
	})
	return favorite, true, nil
}

func (s *favoriteService) ListFavoriteRestaurants(userID uint, skip, limit int) ([]model.Restaurant, error) {
	if err := validatePage(skip, limit); err != nil {
		return nil, err
	}

	favorites, err := s.favoriteRepo.FindByUserID(userID, skip, limit)
	if err != nil {
		return nil, apperrors.FromDB(err, "favorites")
	}

	restaurants := make([]model.Restaurant, 0, len(favorites))
	for _, f := range favorites {
		if f.Restaurant != nil {
			restaurants = append(restaurants, *f.Restaurant)
		}
	}
	return restaurants, nil
}
