package usecase

import (
	"context"
	"testing"

	"restaurant-reviews/internal/data/repository"
	"restaurant-reviews/internal/dto/request"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestService builds a Service on top of a fresh set of registries so
// tests never share state.
func newTestService(t *testing.T) *Service {
	t.Helper()
	repo := repository.NewRepository(zap.NewNop())
	return NewService(repo, zap.NewNop())
}

func mustCustomer(t *testing.T, svc *Service, first, last string) string {
	t.Helper()
	resp, err := svc.Customer.CreateCustomer(context.Background(), &request.CreateCustomerRequest{
		FirstName: first,
		LastName:  last,
	})
	require.NoError(t, err)
	return resp.ID
}

func mustRestaurant(t *testing.T, svc *Service, name string) string {
	t.Helper()
	resp, err := svc.Restaurant.CreateRestaurant(context.Background(), &request.CreateRestaurantRequest{
		Name: name,
	})
	require.NoError(t, err)
	return resp.ID
}

func mustReview(t *testing.T, svc *Service, customerID, restaurantID string, rating int) string {
	t.Helper()
	resp, err := svc.Review.CreateReview(context.Background(), &request.CreateReviewRequest{
		CustomerID:   customerID,
		RestaurantID: restaurantID,
		Rating:       rating,
	})
	require.NoError(t, err)
	return resp.ID
}
