package service

import (
	"errors"
	"strings"

	"github.com/ikkim/dinehub-backend/internal/app/model"
	"github.com/ikkim/dinehub-backend/internal/app/repository"
	apperrors "github.com/ikkim/dinehub-backend/internal/errors"
	"github.com/ikkim/dinehub-backend/pkg/logger"
	"gorm.io/gorm"
)

type RestaurantInput struct {
	Name         *string
	Address      *string
	Phone        *string
	Cuisine      *string
	OpeningHours *string
	ImageURL     *string
	IsActive     *bool
	Rating       *float64
}

type MenuItemInput struct {
	Name        *string
	Description *string
	Price       *float64
	IsAvailable *bool
	Category    *string
	ImageURL    *string
}

type CatalogService interface {
	// Lookups used by order pricing.
	GetRestaurant(id uint) (*model.Restaurant, error)
	GetMenuItemsForRestaurant(restaurantID uint) ([]model.MenuItem, error)

	ListRestaurants(filter repository.RestaurantFilter) ([]model.Restaurant, error)
	CreateRestaurant(input RestaurantInput, menu []MenuItemInput) (*model.Restaurant, error)
	UpdateRestaurant(id uint, input RestaurantInput) (*model.Restaurant, error)
	DeleteRestaurant(id uint) error

	ListMenu(restaurantID uint) ([]model.MenuItem, error)
	CreateMenuItem(restaurantID uint, input MenuItemInput) (*model.MenuItem, error)
	UpdateMenuItem(id uint, input MenuItemInput) (*model.MenuItem, error)
	DeleteMenuItem(id uint) error
}

type catalogService struct {
	restaurantRepo repository.RestaurantRepository
	menuRepo       repository.MenuItemRepository
}

func NewCatalogService(restaurantRepo repository.RestaurantRepository, menuRepo repository.MenuItemRepository) CatalogService {
	return &catalogService{
		restaurantRepo: restaurantRepo,
		menuRepo:       menuRepo,
	}
}

func (s *catalogService) GetRestaurant(id uint) (*model.Restaurant, error) {
	restaurant, err := s.restaurantRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound.Withf("Restaurant with ID %d not found", id)
		}
		logger.Error("Failed to fetch restaurant", err, map[string]interface{}{
			"restaurant_id": id,
		})
		return nil, apperrors.FromDB(err, "restaurant")
	}
	return restaurant, nil
}

func (s *catalogService) GetMenuItemsForRestaurant(restaurantID uint) ([]model.MenuItem, error) {
	items, err := s.menuRepo.FindByRestaurantID(restaurantID)
	if err != nil {
		return nil, apperrors.FromDB(err, "menu")
	}
	return items, nil
}

func (s *catalogService) ListRestaurants(filter repository.RestaurantFilter) ([]model.Restaurant, error) {
	if err := validatePage(filter.Skip, filter.Limit); err != nil {
		return nil, err
	}
	restaurants, err := s.restaurantRepo.FindAll(filter)
	if err != nil {
		return nil, apperrors.FromDB(err, "restaurants")
	}
	return restaurants, nil
}

func (s *catalogService) CreateRestaurant(input RestaurantInput, menu []MenuItemInput) (*model.Restaurant, error) {
	restaurant := &model.Restaurant{IsActive: true}
	if err := s.applyRestaurantInput(restaurant, input); err != nil {
		return nil, err
	}
	if restaurant.Name == "" {
		return nil, apperrors.Validation("name", "Name is required")
	}
	if restaurant.Address == "" {
		return nil, apperrors.Validation("address", "Address is required")
	}

	for _, in := range menu {
		item := model.MenuItem{IsAvailable: true}
		if err := applyMenuItemInput(&item, in); err != nil {
			return nil, err
		}
		if err := validateNewMenuItem(&item); err != nil {
			return nil, err
		}
		restaurant.MenuItems = append(restaurant.MenuItems, item)
	}

	if err := s.restaurantRepo.Create(restaurant); err != nil {
		return nil, apperrors.FromDB(err, "create restaurant")
	}

	logger.Info("Restaurant created", map[string]interface{}{
		"restaurant_id": restaurant.ID,
		"name":          restaurant.Name,
		"menu_items":    len(restaurant.MenuItems),
	})
	return restaurant, nil
}

func (s *catalogService) UpdateRestaurant(id uint, input RestaurantInput) (*model.Restaurant, error) {
	restaurant, err := s.GetRestaurant(id)
	if err != nil {
		return nil, err
	}
	if err := s.applyRestaurantInput(restaurant, input); err != nil {
		return nil, err
	}

	if err := s.restaurantRepo.Update(restaurant); err != nil {
		return nil, apperrors.FromDB(err, "update restaurant")
	}

	logger.Info("Restaurant updated", map[string]interface{}{
		"restaurant_id": restaurant.ID,
	})
	return restaurant, nil
}

func (s *catalogService) applyRestaurantInput(restaurant *model.Restaurant, input RestaurantInput) error {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return apperrors.Validation("name", "Name cannot be empty")
		}
		restaurant.Name = name
	}
	if input.Address != nil {
		restaurant.Address = strings.TrimSpace(*input.Address)
	}
	if input.Phone != nil {
		phone := normalizePhone(input.Phone)
		if phone != nil {
			if err := s.ensureRestaurantPhoneFree(*phone, restaurant.ID); err != nil {
				return err
			}
		}
		restaurant.Phone = phone
	}
	if input.Cuisine != nil {
		restaurant.Cuisine = strings.TrimSpace(*input.Cuisine)
	}
	if input.OpeningHours != nil {
		restaurant.OpeningHours = *input.OpeningHours
	}
	if input.ImageURL != nil {
		restaurant.ImageURL = *input.ImageURL
	}
	if input.IsActive != nil {
		restaurant.IsActive = *input.IsActive
	}
	if input.Rating != nil {
		if *input.Rating < 0 || *input.Rating > model.MaxRating {
			return apperrors.Validation("rating", "Rating must be between 0 and 5")
		}
		restaurant.Rating = *input.Rating
	}
	return nil
}

func (s *catalogService) ensureRestaurantPhoneFree(phone string, selfID uint) error {
	owner, err := s.restaurantRepo.FindByPhone(phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return apperrors.FromDB(err, "restaurant")
	}
	if owner.ID != selfID {
		return ErrRestaurantPhoneExists
	}
	return nil
}

func (s *catalogService) DeleteRestaurant(id uint) error {
	if err := s.restaurantRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRestaurantNotFound.Withf("Restaurant with ID %d not found", id)
		}
		return apperrors.FromDB(err, "delete restaurant")
	}

	logger.Info("Restaurant deleted", map[string]interface{}{
		"restaurant_id": id,
	})
	return nil
}

func (s *catalogService) ListMenu(restaurantID uint) ([]model.MenuItem, error) {
	if _, err := s.GetRestaurant(restaurantID); err != nil {
		return nil, err
	}
	return s.GetMenuItemsForRestaurant(restaurantID)
}

func (s *catalogService) CreateMenuItem(restaurantID uint, input MenuItemInput) (*model.MenuItem, error) {
	if _, err := s.GetRestaurant(restaurantID); err != nil {
		return nil, err
	}

	item := &model.MenuItem{RestaurantID: restaurantID, IsAvailable: true}
	if err := applyMenuItemInput(item, input); err != nil {
		return nil, err
	}
	if err := validateNewMenuItem(item); err != nil {
		return nil, err
	}

	if err := s.menuRepo.Create(item); err != nil {
		return nil, apperrors.FromDB(err, "create menu item")
	}

	logger.Info("Menu item created", map[string]interface{}{
		"menu_item_id":  item.ID,
		"restaurant_id": restaurantID,
		"price":         item.Price,
	})
	return item, nil
}

func (s *catalogService) UpdateMenuItem(id uint, input MenuItemInput) (*model.MenuItem, error) {
	item, err := s.menuRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound.Withf("Menu item with ID %d not found", id)
		}
		return nil, apperrors.FromDB(err, "menu item")
	}

	if err := applyMenuItemInput(item, input); err != nil {
		return nil, err
	}
	if err := s.menuRepo.Update(item); err != nil {
		return nil, apperrors.FromDB(err, "update menu item")
	}

	logger.Info("Menu item updated", map[string]interface{}{
		"menu_item_id": item.ID,
		"price":        item.Price,
		"is_available": item.IsAvailable,
	})
	return item, nil
}

func (s *catalogService) DeleteMenuItem(id uint) error {
	if err := s.menuRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuItemNotFound.Withf("Menu item with ID %d not found", id)
		}
		return apperrors.FromDB(err, "delete menu item")
	}
	return nil
}

func applyMenuItemInput(item *model.MenuItem, input MenuItemInput) error {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return apperrors.Validation("name", "Name cannot be empty")
		}
		item.Name = name
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return apperrors.Validation("price", "Price must be greater than 0")
		}
		item.Price = *input.Price
	}
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}
	if input.Category != nil {
		item.Category = strings.TrimSpace(*input.Category)
	}
	if input.ImageURL != nil {
		item.ImageURL = *input.ImageURL
	}
	return nil
}

func validateNewMenuItem(item *model.MenuItem) error {
	if item.Name == "" {
		return apperrors.Validation("name", "Name is required")
	}
	if item.Price <= 0 {
		return apperrors.Validation("price", "Price must be greater than 0")
	}
	return nil
}
