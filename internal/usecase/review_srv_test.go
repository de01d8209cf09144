package usecase

import (
	"context"
	"errors"
	"testing"

	"restaurant-reviews/internal/dto/request"
	"restaurant-reviews/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReview_ValidRatings(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	customerID := mustCustomer(t, svc, "Alice", "Mwangi")
	restaurantID := mustRestaurant(t, svc, "Mama Oliech")

	for _, rating := range []int{1, 2, 3, 4, 5} {
		resp, err := svc.Review.CreateReview(ctx, &request.CreateReviewRequest{
			CustomerID:   customerID,
			RestaurantID: restaurantID,
			Rating:       rating,
		})
		require.NoError(t, err)
		assert.Equal(t, rating, resp.Rating)
		assert.Equal(t, "Alice Mwangi", resp.CustomerName)
		assert.Equal(t, "Mama Oliech", resp.RestaurantName)
	}
}

func TestCreateReview_RejectsOutOfRangeRating(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	customerID := mustCustomer(t, svc, "Alice", "Mwangi")
	restaurantID := mustRestaurant(t, svc, "Mama Oliech")

	for _, rating := range []int{-1, 0, 6, 100} {
		resp, err := svc.Review.CreateReview(ctx, &request.CreateReviewRequest{
			CustomerID:   customerID,
			RestaurantID: restaurantID,
			Rating:       rating,
		})
		require.Error(t, err, "rating %d must be rejected", rating)
		assert.Nil(t, resp)

		var validationErr *utils.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	}

	// Nothing registered for the rejected ratings
	count, err := svc.Customer.CountNegativeReviews(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestCreateReview_RejectsUnknownReferences(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	customerID := mustCustomer(t, svc, "Alice", "Mwangi")
	restaurantID := mustRestaurant(t, svc, "Mama Oliech")

	_, err := svc.Review.CreateReview(ctx, &request.CreateReviewRequest{
		CustomerID:   uuid.New().String(),
		RestaurantID: restaurantID,
		Rating:       4,
	})
	require.Error(t, err)

	var validationErr *utils.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Fields, "CustomerID")

	_, err = svc.Review.CreateReview(ctx, &request.CreateReviewRequest{
		CustomerID:   customerID,
		RestaurantID: uuid.New().String(),
		Rating:       4,
	})
	require.Error(t, err)
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Fields, "RestaurantID")
}

func TestCreateReview_RejectsMalformedIDs(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Review.CreateReview(ctx, &request.CreateReviewRequest{
		CustomerID:   "not-a-uuid",
		RestaurantID: "also-not-a-uuid",
		Rating:       3,
	})
	require.Error(t, err)

	var validationErr *utils.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestCreateReview_RatingImmutable(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	customerID := mustCustomer(t, svc, "Alice", "Mwangi")
	restaurantID := mustRestaurant(t, svc, "Mama Oliech")
	mustReview(t, svc, customerID, restaurantID, 5)

	// The service surface has no update operation; the stored rating stays
	// what it was at construction.
	resp, err := svc.Customer.GetCustomerReviews(ctx, customerID, &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 5, resp.Data[0].Rating)
}

func TestCreateReview_DuplicatePairAllowed(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	customerID := mustCustomer(t, svc, "Alice", "Mwangi")
	restaurantID := mustRestaurant(t, svc, "Mama Oliech")

	mustReview(t, svc, customerID, restaurantID, 5)
	mustReview(t, svc, customerID, restaurantID, 3)

	resp, err := svc.Customer.GetCustomerReviews(ctx, customerID, &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Pagination.Total)

	restaurants, err := svc.Customer.GetCustomerRestaurants(ctx, customerID)
	require.NoError(t, err)
	assert.Len(t, restaurants, 1)
}
