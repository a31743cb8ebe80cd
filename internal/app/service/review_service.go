package service

import (
	"errors"

	"github.com/ikkim/dinehub-backend/internal/app/model"
	"github.com/ikkim/dinehub-backend/internal/app/repository"
	apperrors "github.com/ikkim/dinehub-backend/internal/errors"
	"github.com/ikkim/dinehub-backend/pkg/logger"
	"gorm.io/gorm"
)

type ReviewService interface {
	CreateReview(requesterID, restaurantID uint, rating int, comment *string) (*model.Review, error)
	UpdateReview(requesterID, reviewID uint, rating *int, comment *string) (*model.Review, error)
	DeleteReview(requesterID uint, role model.UserRole, reviewID uint) error
	GetRestaurantReviews(restaurantID uint, skip, limit int) ([]model.Review, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	orderRepo  repository.OrderRepository
	catalog    CatalogService
}

func NewReviewService(reviewRepo repository.ReviewRepository, orderRepo repository.OrderRepository, catalog CatalogService) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		orderRepo:  orderRepo,
		catalog:    catalog,
	}
}

func validateRating(rating int) error {
	if rating < model.MinRating || rating > model.MaxRating {
		return validationError(apperrors.ReviewInvalidRating, "rating", "Rating must be between 1 and 5")
	}
	return nil
}

// CreateReview requires a DELIVERED order for (requester, restaurant) and at
// most one review per pair. The restaurant's rating is not recomputed.
func (s *reviewService) CreateReview(requesterID, restaurantID uint, rating int, comment *string) (*model.Review, error) {
	logger.Info("Creating review", map[string]interface{}{
		"user_id":       requesterID,
		"restaurant_id": restaurantID,
		"rating":        rating,
	})

	if err := validateRating(rating); err != nil {
		return nil, err
	}

	delivered, err := s.orderRepo.HasDeliveredOrder(requesterID, restaurantID)
	if err != nil {
		return nil, apperrors.FromDB(err, "order")
	}
	if !delivered {
		logger.Warn("Review rejected: no delivered order", map[string]interface{}{
			"user_id":       requesterID,
			"restaurant_id": restaurantID,
		})
		return nil, ErrReviewNotAllowed.Withf("You can only review restaurant %d after completing an order", restaurantID)
	}

	existing, err := s.reviewRepo.FindByUserAndRestaurant(requesterID, restaurantID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.FromDB(err, "review")
	}
	if existing != nil {
		return nil, s.alreadyReviewed(restaurantID)
	}

	review := &model.Review{
		UserID:       requesterID,
		RestaurantID: restaurantID,
		Rating:       rating,
		Comment:      comment,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		// a concurrent insert lost the race against the unique index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.alreadyReviewed(restaurantID)
		}
		return nil, apperrors.FromDB(err, "create review")
	}

	logger.Info("Review created", map[string]interface{}{
		"review_id":     review.ID,
		"user_id":       requesterID,
		"restaurant_id": restaurantID,
	})
	return review, nil
}

func (s *reviewService) alreadyReviewed(restaurantID uint) error {
	return ErrReviewAlreadyExists.Withf("You have already submitted a review for restaurant %d", restaurantID)
}

func (s *reviewService) UpdateReview(requesterID, reviewID uint, rating *int, comment *string) (*model.Review, error) {
	review, err := s.findReview(reviewID)
	if err != nil {
		return nil, err
	}
	if review.UserID != requesterID {
		return nil, ErrReviewAccessDenied.Withf("Access denied for review %d", reviewID)
	}

	if rating != nil {
		if err := validateRating(*rating); err != nil {
			return nil, err
		}
		review.Rating = *rating
	}
	if comment != nil {
		review.Comment = comment
	}

	if err := s.reviewRepo.Update(review); err != nil {
		return nil, apperrors.FromDB(err, "update review")
	}
	return review, nil
}

// DeleteReview allows the author or any admin.
func (s *reviewService) DeleteReview(requesterID uint, role model.UserRole, reviewID uint) error {
	review, err := s.findReview(reviewID)
	if err != nil {
		return err
	}
	if review.UserID != requesterID && !role.IsAdmin() {
		return ErrReviewAccessDenied.Withf("Access denied for review %d", reviewID)
	}

	if err := s.reviewRepo.Delete(reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound.Withf("Review with ID %d not found", reviewID)
		}
		return apperrors.FromDB(err, "delete review")
	}

	logger.Info("Review deleted", map[string]interface{}{
		"review_id":  reviewID,
		"deleted_by": requesterID,
	})
	return nil
}

func (s *reviewService) GetRestaurantReviews(restaurantID uint, skip, limit int) ([]model.Review, error) {
	if err := validatePage(skip, limit); err != nil {
		return nil, err
	}
	if _, err := s.catalog.GetRestaurant(restaurantID); err != nil {
		return nil, err
	}
	reviews, err := s.reviewRepo.FindByRestaurantID(restaurantID, skip, limit)
	if err != nil {
		return nil, apperrors.FromDB(err, "reviews")
	}
	return reviews, nil
}

func (s *reviewService) findReview(reviewID uint) (*model.Review, error) {
	review, err := s.reviewRepo.FindByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound.Withf("Review with ID %d not found", reviewID)
		}
		return nil, apperrors.FromDB(err, "review")
	}
	return review, nil
}
