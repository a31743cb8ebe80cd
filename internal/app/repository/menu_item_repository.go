package repository

import (
	"github.com/ikkim/dinehub-backend/internal/app/model"
	"github.com/ikkim/dinehub-backend/pkg/logger"
	"gorm.io/gorm"
)

type MenuItemRepository interface {
	Create(item *model.MenuItem) error
	CreateBatch(items []model.MenuItem) error
	Update(item *model.MenuItem) error
	Delete(id uint) error
	FindByID(id uint) (*model.MenuItem, error)
	FindByRestaurantID(restaurantID uint) ([]model.MenuItem, error)
}

type menuItemRepository struct {
	db *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) MenuItemRepository {
	return &menuItemRepository{db: db}
}

func (r *menuItemRepository) Create(item *model.MenuItem) error {
	logger.Debug("Creating menu item in database", map[string]interface{}{
		"restaurant_id": item.RestaurantID,
		"name":          item.Name,
		"price":         item.Price,
	})

	if err := r.db.Create(item).Error; err != nil {
		logger.Error("Failed to create menu item in database", err, map[string]interface{}{
			"restaurant_id": item.RestaurantID,
			"name":          item.Name,
		})
		return err
	}

	logger.Debug("Menu item created in database", map[string]interface{}{
		"menu_item_id": item.ID,
	})
	return nil
}

func (r *menuItemRepository) CreateBatch(items []model.MenuItem) error {
	if len(items) == 0 {
		return nil
	}

	logger.Debug("Creating menu items in batch", map[string]interface{}{
		"count": len(items),
	})

	if err := r.db.CreateInBatches(items, 100).Error; err != nil {
		logger.Error("Failed to create menu items in batch", err, map[string]interface{}{
			"count": len(items),
		})
		return err
	}
	return nil
}

func (r *menuItemRepository) Update(item *model.MenuItem) error {
	logger.Debug("Updating menu item in database", map[string]interface{}{
		"menu_item_id": item.ID,
	})

	if err := r.db.Save(item).Error; err != nil {
		logger.Error("Failed to update menu item in database", err, map[string]interface{}{
			"menu_item_id": item.ID,
		})
		return err
	}
	return nil
}

func (r *menuItemRepository) Delete(id uint) error {
	logger.Debug("Deleting menu item from database", map[string]interface{}{
		"menu_item_id": id,
	})

	result := r.db.Delete(&model.MenuItem{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete menu item from database", result.Error, map[string]interface{}{
			"menu_item_id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *menuItemRepository) FindByID(id uint) (*model.MenuItem, error) {
	var item model.MenuItem
	if err := r.db.First(&item, id).Error; err != nil {
		logger.Debug("Menu item lookup by ID failed", map[string]interface{}{
			"menu_item_id": id,
			"error":        err.Error(),
		})
		return nil, err
	}
	return &item, nil
}

// FindByRestaurantID returns the whole menu in one query.
func (r *menuItemRepository) FindByRestaurantID(restaurantID uint) ([]model.MenuItem, error) {
	logger.Debug("Finding menu items by restaurant ID in database", map[string]interface{}{
		"restaurant_id": restaurantID,
	})

	var items []model.MenuItem
	if err := r.db.Where("restaurant_id = ?", restaurantID).Order("id ASC").Find(&items).Error; err != nil {
		logger.Error("Failed to find menu items in database", err, map[string]interface{}{
			"restaurant_id": restaurantID,
		})
		return nil, err
	}

	logger.Debug("Menu items found in database", map[string]interface{}{
		"restaurant_id": restaurantID,
		"count":         len(items),
	})
	return items, nil
}
