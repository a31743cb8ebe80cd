package repository

import (
	"github.com/ikkim/dinehub-backend/internal/app/model"
	"github.com/ikkim/dinehub-backend/pkg/logger"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *model.Review) error
	FindByID(id uint) (*model.Review, error)
	FindByUserAndRestaurant(userID, restaurantID uint) (*model.Review, error)
	FindByRestaurantID(restaurantID uint, skip, limit int) ([]model.Review, error)
	Update(review *model.Review) error
	Delete(id uint) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *model.Review) error {
	logger.Debug("Creating review in database", map[string]interface{}{
		"user_id":       review.UserID,
		"restaurant_id": review.RestaurantID,
		"rating":        review.Rating,
	})

	if err := r.db.Create(review).Error; err != nil {
		logger.Error("Failed to create review in database", err, map[string]interface{}{
			"user_id":       review.UserID,
			"restaurant_id": review.RestaurantID,
		})
		return err
	}

	logger.Debug("Review created in database", map[string]interface{}{
		"review_id": review.ID,
	})
	return nil
}

func (r *reviewRepository) FindByID(id uint) (*model.Review, error) {
	var review model.Review
	if err := r.db.First(&review, id).Error; err != nil {
		logger.Debug("Review lookup by ID failed", map[string]interface{}{
			"review_id": id,
			"error":     err.Error(),
		})
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByUserAndRestaurant(userID, restaurantID uint) (*model.Review, error) {
	var review model.Review
	if err := r.db.Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByRestaurantID(restaurantID uint, skip, limit int) ([]model.Review, error) {
	logger.Debug("Finding reviews by restaurant ID in database", map[string]interface{}{
		"restaurant_id": restaurantID,
		"skip":          skip,
		"limit":         limit,
	})

	var reviews []model.Review
	if err := r.db.Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC, id DESC").
		Offset(skip).Limit(limit).
		Find(&reviews).Error; err != nil {
		logger.Error("Failed to find reviews in database", err, map[string]interface{}{
			"restaurant_id": restaurantID,
		})
		return nil, err
	}

	logger.Debug("Reviews found in database", map[string]interface{}{
		"restaurant_id": restaurantID,
		"count":         len(reviews),
	})
	return reviews, nil
}

func (r *reviewRepository) Update(review *model.Review) error {
	logger.Debug("Updating review in database", map[string]interface{}{
		"review_id": review.ID,
	})

	if err := r.db.Save(review).Error; err != nil {
		logger.Error("Failed to update review in database", err, map[string]interface{}{
			"review_id": review.ID,
		})
		return err
	}
	return nil
}

func (r *reviewRepository) Delete(id uint) error {
	logger.Debug("Deleting review from database", map[string]interface{}{
		"review_id": id,
	})

	result := r.db.Delete(&model.Review{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete review from database", result.Error, map[string]interface{}{
			"review_id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
