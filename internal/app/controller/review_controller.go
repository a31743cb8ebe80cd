package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/dinehub-backend/internal/app/service"
	apperrors "github.com/ikkim/dinehub-backend/internal/errors"
)

type ReviewController struct {
	reviewService service.ReviewService
}

func NewReviewController(reviewService service.ReviewService) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

// Rating range is enforced by the service so the error carries its code.
type CreateReviewRequest struct {
	RestaurantID uint    `json:"restaurant_id" binding:"required"`
	Rating       int     `json:"rating"`
	Comment      *string `json:"comment"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

// POST /api/v1/reviews
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, err)
		return
	}

	review, err := ctrl.reviewService.CreateReview(identity.UserID, req.RestaurantID, req.Rating, req.Comment)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

// GET /api/v1/reviews/restaurant/:id
func (ctrl *ReviewController) GetRestaurantReviews(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	skip, limit, ok := pageQuery(c)
	if !ok {
		return
	}

	reviews, err := ctrl.reviewService.GetRestaurantReviews(id, skip, limit)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// PUT /api/v1/reviews/:id
func (ctrl *ReviewController) UpdateReview(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, err)
		return
	}

	review, err := ctrl.reviewService.UpdateReview(identity.UserID, id, req.Rating, req.Comment)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

// DELETE /api/v1/reviews/:id
func (ctrl *ReviewController) DeleteReview(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.reviewService.DeleteReview(identity.UserID, identity.Role, id); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
