package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReviewRepository_FindByCustomerIDInsertionOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewReviewRepository(zap.NewNop())

	customerID := uuid.New()
	otherCustomerID := uuid.New()
	restaurantID := uuid.New()

	ratings := []int{5, 2, 4}
	for _, rating := range ratings {
		require.NoError(t, repo.Create(ctx, newReview(customerID, restaurantID, rating)))
	}
	require.NoError(t, repo.Create(ctx, newReview(otherCustomerID, restaurantID, 1)))

	reviews, err := repo.FindByCustomerID(ctx, customerID, 0, 0)
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	for i, rating := range ratings {
		assert.Equal(t, rating, reviews[i].Rating)
		assert.Equal(t, customerID, reviews[i].CustomerID)
	}
}

func TestReviewRepository_FindByRestaurantIDPagination(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewReviewRepository(zap.NewNop())

	restaurantID := uuid.New()
	for _, rating := range []int{1, 2, 3, 4, 5} {
		require.NoError(t, repo.Create(ctx, newReview(uuid.New(), restaurantID, rating)))
	}

	page, err := repo.FindByRestaurantID(ctx, restaurantID, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, 3, page[0].Rating)
	assert.Equal(t, 4, page[1].Rating)

	// Offset past the end yields an empty page
	empty, err := repo.FindByRestaurantID(ctx, restaurantID, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)

	count, err := repo.CountByRestaurantID(ctx, restaurantID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}

func TestReviewRepository_FindByCustomerAndRestaurant(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewReviewRepository(zap.NewNop())

	customerID := uuid.New()
	reviewedID := uuid.New()
	unreviewedID := uuid.New()

	require.NoError(t, repo.Create(ctx, newReview(customerID, reviewedID, 4)))

	review, err := repo.FindByCustomerAndRestaurant(ctx, customerID, reviewedID)
	require.NoError(t, err)
	require.NotNil(t, review)
	assert.Equal(t, 4, review.Rating)

	none, err := repo.FindByCustomerAndRestaurant(ctx, customerID, unreviewedID)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestReviewRepository_CountNegativeByCustomerID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewReviewRepository(zap.NewNop())

	customerID := uuid.New()
	restaurantID := uuid.New()

	for _, rating := range []int{1, 2, 3, 5} {
		require.NoError(t, repo.Create(ctx, newReview(customerID, restaurantID, rating)))
	}

	count, err := repo.CountNegativeByCustomerID(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestReviewRepository_GetRestaurantReviewStats(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewReviewRepository(zap.NewNop())

	restaurantID := uuid.New()

	// No reviews yet
	avg, count, err := repo.GetRestaurantReviewStats(ctx, restaurantID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, avg)
	assert.Equal(t, int64(0), count)

	for _, rating := range []int{3, 4, 5} {
		require.NoError(t, repo.Create(ctx, newReview(uuid.New(), restaurantID, rating)))
	}

	avg, count, err = repo.GetRestaurantReviewStats(ctx, restaurantID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, avg, 1e-9)
	assert.Equal(t, int64(3), count)
}
