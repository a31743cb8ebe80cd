package service

import (
	"testing"

	"github.com/ikkim/dinehub-backend/internal/app/model"
	"github.com/ikkim/dinehub-backend/internal/app/repository"
	apperrors "github.com/ikkim/dinehub-backend/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupReviewServiceTest(t *testing.T) (*testEnv, *model.User, *model.Restaurant) {
	env, user, restaurant := setupOrderServiceTest(t)

	order, err := env.orders.CreateOrder(user.ID, restaurant.ID, []OrderItemInput{{MenuItemID: restaurant.MenuItems[0].ID, Quantity: 1}})
	require.NoError(t, err)
	env.deliver(t, order.ID)

	return env, user, restaurant
}

func TestReviewService_CreateReview(t *testing.T) {
	env, user, restaurant := setupReviewServiceTest(t)

	t.Run("Invalid rating", func(t *testing.T) {
		for _, rating := range []int{0, 6, -1} {
			_, err := env.reviews.CreateReview(user.ID, restaurant.ID, rating, nil)
			appErr, ok := apperrors.As(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.ReviewInvalidRating, appErr.Code)
			assert.Equal(t, "rating", appErr.Details["field"])
		}
	})

	t.Run("Success", func(t *testing.T) {
		review, err := env.reviews.CreateReview(user.ID, restaurant.ID, 5, strPtr("Great pizza"))
		require.NoError(t, err)
		assert.NotZero(t, review.ID)
		assert.Equal(t, 5, review.Rating)
		assert.Equal(t, "Great pizza", *review.Comment)
	})

	t.Run("Second review conflicts", func(t *testing.T) {
		_, err := env.reviews.CreateReview(user.ID, restaurant.ID, 3, nil)
		assert.ErrorIs(t, err, ErrReviewAlreadyExists)
		assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	})

	t.Run("Rating is not recomputed", func(t *testing.T) {
		stored, err := env.catalog.GetRestaurant(restaurant.ID)
		require.NoError(t, err)
		assert.Equal(t, 0.0, stored.Rating)
	})
}

// staleReviewLookup never sees existing reviews, as when two requests pass
// the existence check before either has inserted.
type staleReviewLookup struct {
	repository.ReviewRepository
}

func (staleReviewLookup) FindByUserAndRestaurant(_, _ uint) (*model.Review, error) {
	return nil, gorm.ErrRecordNotFound
}

func TestReviewService_CreateReview_UniqueIndexRace(t *testing.T) {
	env, user, restaurant := setupReviewServiceTest(t)
	reviews := NewReviewService(
		staleReviewLookup{repository.NewReviewRepository(env.db)},
		env.orderRepo,
		env.catalog,
	)

	_, err := reviews.CreateReview(user.ID, restaurant.ID, 4, nil)
	require.NoError(t, err)

	_, err = reviews.CreateReview(user.ID, restaurant.ID, 2, nil)
	assert.ErrorIs(t, err, ErrReviewAlreadyExists)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

	stored, err := env.reviews.GetRestaurantReviews(restaurant.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, 4, stored[0].Rating)
}

func TestReviewService_RequiresDeliveredOrder(t *testing.T) {
	env, user, restaurant := setupOrderServiceTest(t)

	_, err := env.reviews.CreateReview(user.ID, restaurant.ID, 4, nil)
	assert.ErrorIs(t, err, ErrReviewNotAllowed)

	order, err := env.orders.CreateOrder(user.ID, restaurant.ID, []OrderItemInput{{MenuItemID: restaurant.MenuItems[0].ID, Quantity: 1}})
	require.NoError(t, err)
	for _, status := range []model.OrderStatus{model.OrderStatusPending, model.OrderStatusConfirmed, model.OrderStatusCancelled} {
		_, err := env.orders.AdminUpdateStatus(order.ID, status)
		require.NoError(t, err)

		_, err = env.reviews.CreateReview(user.ID, restaurant.ID, 4, nil)
		assert.ErrorIs(t, err, ErrReviewNotAllowed, "status %s", status)
	}

	env.deliver(t, order.ID)
	_, err = env.reviews.CreateReview(user.ID, restaurant.ID, 4, nil)
	assert.NoError(t, err)
}

func TestReviewService_UpdateAndDelete(t *testing.T) {
	env, user, restaurant := setupReviewServiceTest(t)
	review, err := env.reviews.CreateReview(user.ID, restaurant.ID, 4, nil)
	require.NoError(t, err)
	stranger := env.createUser(t, "stranger@example.com", model.RoleCustomer)
	admin := env.createUser(t, "admin@example.com", model.RoleAdmin)

	t.Run("Owner updates", func(t *testing.T) {
		updated, err := env.reviews.UpdateReview(user.ID, review.ID, intPtr(2), strPtr("Changed my mind"))
		require.NoError(t, err)
		assert.Equal(t, 2, updated.Rating)
		assert.Equal(t, "Changed my mind", *updated.Comment)
	})

	t.Run("Update validates rating", func(t *testing.T) {
		_, err := env.reviews.UpdateReview(user.ID, review.ID, intPtr(9), nil)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})

	t.Run("Stranger cannot update or delete", func(t *testing.T) {
		_, err := env.reviews.UpdateReview(stranger.ID, review.ID, intPtr(1), nil)
		assert.ErrorIs(t, err, ErrReviewAccessDenied)

		err = env.reviews.DeleteReview(stranger.ID, model.RoleCustomer, review.ID)
		assert.ErrorIs(t, err, ErrReviewAccessDenied)
		assert.Equal(t, apperrors.KindAuthorization, apperrors.KindOf(err))
	})

	t.Run("Admin may delete", func(t *testing.T) {
		require.NoError(t, env.reviews.DeleteReview(admin.ID, model.RoleAdmin, review.ID))

		err := env.reviews.DeleteReview(user.ID, model.RoleCustomer, review.ID)
		assert.ErrorIs(t, err, ErrReviewNotFound)
		_, err = env.reviews.UpdateReview(user.ID, review.ID, intPtr(3), nil)
		assert.ErrorIs(t, err, ErrReviewNotFound)
	})
}

func TestReviewService_GetRestaurantReviews(t *testing.T) {
	env, user, restaurant := setupReviewServiceTest(t)
	_, err := env.reviews.CreateReview(user.ID, restaurant.ID, 4, nil)
	require.NoError(t, err)

	reviews, err := env.reviews.GetRestaurantReviews(restaurant.ID, 0, 10)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)

	_, err = env.reviews.GetRestaurantReviews(9999, 0, 10)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

// U1 orders, gets a delivery and reviews; U2 never ordered.
func TestOrderAndReviewScenario(t *testing.T) {
	env := setupTestEnv(t)
	u1 := env.createUser(t, "u1@example.com", model.RoleCustomer)
	u2 := env.createUser(t, "u2@example.com", model.RoleCustomer)
	r := env.createRestaurant(t, "R", menuItem("ItemA", 5.00), menuItem("ItemB", 3.50))
	itemA, itemB := r.MenuItems[0], r.MenuItems[1]

	order, err := env.orders.CreateOrder(u1.ID, r.ID, []OrderItemInput{
		{MenuItemID: itemA.ID, Quantity: 2},
		{MenuItemID: itemB.ID, Quantity: 1},
	})
	require.NoError(t, err)
	assert.InDelta(t, 13.50, order.TotalPrice, 1e-9)
	assert.Equal(t, model.OrderStatusPending, order.Status)

	delivered, err := env.orders.AdminUpdateStatus(order.ID, model.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusDelivered, delivered.Status)

	review, err := env.reviews.CreateReview(u1.ID, r.ID, 4, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, review.Rating)

	_, err = env.reviews.CreateReview(u1.ID, r.ID, 5, nil)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

	_, err = env.reviews.CreateReview(u2.ID, r.ID, 5, nil)
	assert.ErrorIs(t, err, ErrReviewNotAllowed)

	_, err = env.orders.CancelOrder(u1.ID, order.ID)
	assert.ErrorIs(t, err, ErrOrderNotCancellable)
}
