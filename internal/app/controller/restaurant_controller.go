package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/dinehub-backend/internal/app/repository"
	"github.com/ikkim/dinehub-backend/internal/app/service"
	apperrors "github.com/ikkim/dinehub-backend/internal/errors"
	"github.com/ikkim/dinehub-backend/internal/middleware"
)

type RestaurantController struct {
	catalogService service.CatalogService
}

func NewRestaurantController(catalogService service.CatalogService) *RestaurantController {
	return &RestaurantController{
		catalogService: catalogService,
	}
}

type RestaurantRequest struct {
	Name         *string           `json:"name"`
	Address      *string           `json:"address"`
	Phone        *string           `json:"phone"`
	Cuisine      *string           `json:"cuisine"`
	OpeningHours *string           `json:"opening_hours"`
	ImageURL     *string           `json:"image_url"` // S3 URL from upload API
	IsActive     *bool             `json:"is_active"`
	Rating       *float64          `json:"rating"`
	MenuItems    []MenuItemRequest `json:"menu_items"` // create only
}

func (r RestaurantRequest) input() service.RestaurantInput {
	return service.RestaurantInput{
		Name:         r.Name,
		Address:      r.Address,
		Phone:        r.Phone,
		Cuisine:      r.Cuisine,
		OpeningHours: r.OpeningHours,
		ImageURL:     r.ImageURL,
		IsActive:     r.IsActive,
		Rating:       r.Rating,
	}
}

type MenuItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	IsAvailable *bool    `json:"is_available"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"image_url"`
}

func (r MenuItemRequest) input() service.MenuItemInput {
	return service.MenuItemInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		IsAvailable: r.IsAvailable,
		Category:    r.Category,
		ImageURL:    r.ImageURL,
	}
}

// ListRestaurants returns restaurants with optional cuisine/is_active filters
// GET /api/v1/restaurants
func (ctrl *RestaurantController) ListRestaurants(c *gin.Context) {
	skip, limit, ok := pageQuery(c)
	if !ok {
		return
	}
	isActive, ok := boolQuery(c, "is_active")
	if !ok {
		return
	}

	restaurants, err := ctrl.catalogService.ListRestaurants(repository.RestaurantFilter{
		Cuisine:  c.Query("cuisine"),
		IsActive: isActive,
		Skip:     skip,
		Limit:    limit,
	})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, restaurants)
}

// GET /api/v1/restaurants/:id
func (ctrl *RestaurantController) GetRestaurant(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	restaurant, err := ctrl.catalogService.GetRestaurant(id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

// POST /api/v1/restaurants
func (ctrl *RestaurantController) CreateRestaurant(c *gin.Context) {
	var req RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, err)
		return
	}

	menu := make([]service.MenuItemInput, 0, len(req.MenuItems))
	for _, item := range req.MenuItems {
		menu = append(menu, item.input())
	}

	restaurant, err := ctrl.catalogService.CreateRestaurant(req.input(), menu)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	middleware.GetLoggerFromContext(c).Info("Restaurant created", map[string]interface{}{
		"restaurant_id": restaurant.ID,
	})
	c.JSON(http.StatusCreated, restaurant)
}

// PUT /api/v1/restaurants/:id
func (ctrl *RestaurantController) UpdateRestaurant(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, err)
		return
	}

	restaurant, err := ctrl.catalogService.UpdateRestaurant(id, req.input())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

// DELETE /api/v1/restaurants/:id
func (ctrl *RestaurantController) DeleteRestaurant(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.catalogService.DeleteRestaurant(id); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GET /api/v1/restaurants/:id/menu
func (ctrl *RestaurantController) GetMenu(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	items, err := ctrl.catalogService.ListMenu(id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// POST /api/v1/restaurants/:id/menu
func (ctrl *RestaurantController) CreateMenuItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, err)
		return
	}

	item, err := ctrl.catalogService.CreateMenuItem(id, req.input())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// PUT /api/v1/restaurants/menu/:item_id
func (ctrl *RestaurantController) UpdateMenuItem(c *gin.Context) {
	id, ok := parseIDParam(c, "item_id")
	if !ok {
		return
	}

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, err)
		return
	}

	item, err := ctrl.catalogService.UpdateMenuItem(id, req.input())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DELETE /api/v1/restaurants/menu/:item_id
func (ctrl *RestaurantController) DeleteMenuItem(c *gin.Context) {
	id, ok := parseIDParam(c, "item_id")
	if !ok {
		return
	}

	if err := ctrl.catalogService.DeleteMenuItem(id); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
