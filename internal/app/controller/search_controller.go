package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/dinehub-backend/internal/app/service"
	apperrors "github.com/ikkim/dinehub-backend/internal/errors"
)

type SearchController struct {
	searchService service.SearchService
}

func NewSearchController(searchService service.SearchService) *SearchController {
	return &SearchController{
		searchService: searchService,
	}
}

// Search restaurants and dishes
// GET /api/v1/search?q=&cuisine=&min_rating=&is_active=&skip=&limit=
func (ctrl *SearchController) Search(c *gin.Context) {
	skip, limit, ok := pageQuery(c)
	if !ok {
		return
	}
	minRating, ok := floatQuery(c, "min_rating")
	if !ok {
		return
	}
	isActive, ok := boolQuery(c, "is_active")
	if !ok {
		return
	}

	query := c.Query("q")
	if query == "" {
		query = c.Query("query")
	}

	result, err := ctrl.searchService.Search(service.SearchParams{
		Query:     query,
		Cuisine:   c.Query("cuisine"),
		MinRating: minRating,
		IsActive:  isActive,
		Skip:      skip,
		Limit:     limit,
	})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
