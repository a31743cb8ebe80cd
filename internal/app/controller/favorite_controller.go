package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/dinehub-backend/internal/app/service"
	apperrors "github.com/ikkim/dinehub-backend/internal/errors"
)

type FavoriteController struct {
	favoriteService service.FavoriteService
}

func NewFavoriteController(favoriteService service.FavoriteService) *FavoriteController {
	return &FavoriteController{
		favoriteService: favoriteService,
	}
}

// ToggleFavorite adds or removes a restaurant from the caller's favorites
// POST /api/v1/favorites/:restaurant_id
func (ctrl *FavoriteController) ToggleFavorite(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}
	restaurantID, ok := parseIDParam(c, "restaurant_id")
	if !ok {
		return
	}

	favorite, favorited, err := ctrl.favoriteService.Toggle(identity.UserID, restaurantID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            favorite.ID,
		"user_id":       favorite.UserID,
		"restaurant_id": favorite.RestaurantID,
		"created_at":    favorite.CreatedAt,
		"favorited":     favorited,
	})
}

// ListFavorites returns the caller's favorite restaurants
// GET /api/v1/favorites
func (ctrl *FavoriteController) ListFavorites(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}
	skip, limit, ok := pageQuery(c)
	if !ok {
		return
	}

	restaurants, err := ctrl.favoriteService.ListFavoriteRestaurants(identity.UserID, skip, limit)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, restaurants)
}
