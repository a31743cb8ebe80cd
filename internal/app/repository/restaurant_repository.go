package repository

import (
	"github.com/ikkim/dinehub-backend/internal/app/model"
	"github.com/ikkim/dinehub-backend/pkg/logger"
	"gorm.io/gorm"
)

type RestaurantFilter struct {
	Cuisine  string
	IsActive *bool
	Skip     int
	Limit    int
}

type RestaurantRepository interface {
	Create(restaurant *model.Restaurant) error
	Update(restaurant *model.Restaurant) error
	Delete(id uint) error
	FindAll(filter RestaurantFilter) ([]model.Restaurant, error)
	FindByID(id uint) (*model.Restaurant, error)
	FindByPhone(phone string) (*model.Restaurant, error)
}

type restaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) Create(restaurant *model.Restaurant) error {
	logger.Debug("Creating restaurant in database", map[string]interface{}{
		"name":    restaurant.Name,
		"cuisine": restaurant.Cuisine,
	})

	if err := r.db.Create(restaurant).Error; err != nil {
		logger.Error("Failed to create restaurant in database", err, map[string]interface{}{
			"name": restaurant.Name,
		})
		return err
	}

	logger.Debug("Restaurant created in database", map[string]interface{}{
		"restaurant_id": restaurant.ID,
		"name":          restaurant.Name,
	})
	return nil
}

func (r *restaurantRepository) Update(restaurant *model.Restaurant) error {
	logger.Debug("Updating restaurant in database", map[string]interface{}{
		"restaurant_id": restaurant.ID,
	})

	if err := r.db.Omit("MenuItems").Save(restaurant).Error; err != nil {
		logger.Error("Failed to update restaurant in database", err, map[string]interface{}{
			"restaurant_id": restaurant.ID,
		})
		return err
	}

	logger.Debug("Restaurant updated in database", map[string]interface{}{
		"restaurant_id": restaurant.ID,
	})
	return nil
}

// Delete removes the restaurant with its menu, reviews and favorites.
// Orders keep their restaurant_id as history.
func (r *restaurantRepository) Delete(id uint) error {
	logger.Debug("Deleting restaurant from database", map[string]interface{}{
		"restaurant_id": id,
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("restaurant_id = ?", id).Delete(&model.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("restaurant_id = ?", id).Delete(&model.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("restaurant_id = ?", id).Delete(&model.MenuItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Restaurant{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to delete restaurant from database", err, map[string]interface{}{
			"restaurant_id": id,
		})
		return err
	}

	logger.Debug("Restaurant deleted from database", map[string]interface{}{
		"restaurant_id": id,
	})
	return nil
}

func (r *restaurantRepository) FindAll(filter RestaurantFilter) ([]model.Restaurant, error) {
	logger.Debug("Finding restaurants in database", map[string]interface{}{
		"cuisine": filter.Cuisine,
		"skip":    filter.Skip,
		"limit":   filter.Limit,
	})

	query := r.db.Model(&model.Restaurant{})
	if filter.Cuisine != "" {
		query = query.Where("LOWER(cuisine) = LOWER(?)", filter.Cuisine)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var restaurants []model.Restaurant
	if err := query.Order("id ASC").Offset(filter.Skip).Limit(filter.Limit).Find(&restaurants).Error; err != nil {
		logger.Error("Failed to find restaurants in database", err)
		return nil, err
	}

	logger.Debug("Restaurants found in database", map[string]interface{}{
		"count": len(restaurants),
	})
	return restaurants, nil
}

func (r *restaurantRepository) FindByID(id uint) (*model.Restaurant, error) {
	logger.Debug("Finding restaurant by ID in database", map[string]interface{}{
		"restaurant_id": id,
	})

	var restaurant model.Restaurant
	if err := r.db.First(&restaurant, id).Error; err != nil {
		logger.Debug("Restaurant lookup by ID failed", map[string]interface{}{
			"restaurant_id": id,
			"error":         err.Error(),
		})
		return nil, err
	}

	return &restaurant, nil
}

func (r *restaurantRepository) FindByPhone(phone string) (*model.Restaurant, error) {
	var restaurant model.Restaurant
	if err := r.db.Where("phone = ?", phone).First(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}
