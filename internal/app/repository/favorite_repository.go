package repository

import (
	"github.com/ikkim/dinehub-backend/internal/app/model"
	"github.com/ikkim/dinehub-backend/pkg/logger"
	"gorm.io/gorm"
)

type FavoriteRepository interface {
	Find(userID, restaurantID uint) (*model.Favorite, error)
	FindByUserID(userID uint, skip, limit int) ([]model.Favorite, error)
	Create(favorite *model.Favorite) error
	Delete(id uint) error
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Find(userID, restaurantID uint) (*model.Favorite, error) {
	var favorite model.Favorite
	if err := r.db.Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		First(&favorite).Error; err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) FindByUserID(userID uint, skip, limit int) ([]model.Favorite, error) {
	logger.Debug("Finding favorites by user ID in database", map[string]interface{}{
		"user_id": userID,
	})

	var favorites []model.Favorite
	if err := r.db.Preload("Restaurant").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Offset(skip).Limit(limit).
		Find(&favorites).Error; err != nil {
		logger.Error("Failed to find favorites in database", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	logger.Debug("Favorites found in database", map[string]interface{}{
		"user_id": userID,
		"count":   len(favorites),
	})
	return favorites, nil
}

func (r *favoriteRepository) Create(favorite *model.Favorite) error {
	logger.Debug("Adding favorite in database", map[string]interface{}{
		"user_id":       favorite.UserID,
		"restaurant_id": favorite.RestaurantID,
	})

	if err := r.db.Omit("Restaurant").Create(favorite).Error; err != nil {
		logger.Error("Failed to add favorite in database", err, map[string]interface{}{
			"user_id":       favorite.UserID,
			"restaurant_id": favorite.RestaurantID,
		})
		return err
	}
	return nil
}

func (r *favoriteRepository) Delete(id uint) error {
	logger.Debug("Removing favorite from database", map[string]interface{}{
		"favorite_id": id,
	})

	if err := r.db.Delete(&model.Favorite{}, id).Error; err != nil {
		logger.Error("Failed to remove favorite from database", err, map[string]interface{}{
			"favorite_id": id,
		})
		return err
	}
	return nil
}
