package repository

import (
	"context"
	"testing"

	"restaurant-reviews/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCustomer(first, last string) *entity.Customer {
	return &entity.Customer{
		BaseSimple: entity.NewBaseSimple(),
		FirstName:  first,
		LastName:   last,
	}
}

func newRestaurant(name string) *entity.Restaurant {
	return &entity.Restaurant{
		BaseSimple: entity.NewBaseSimple(),
		Name:       name,
	}
}

func newReview(customerID, restaurantID uuid.UUID, rating int) *entity.Review {
	return &entity.Review{
		BaseSimple:   entity.NewBaseSimple(),
		CustomerID:   customerID,
		RestaurantID: restaurantID,
		Rating:       rating,
	}
}

func TestCustomerRepository_CreateAndFind(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewCustomerRepository(zap.NewNop())

	customer := newCustomer("Alice", "Mwangi")
	require.NoError(t, repo.Create(ctx, customer))

	found, err := repo.FindByID(ctx, customer.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Alice", found.FirstName)
	assert.Equal(t, "Mwangi", found.LastName)

	missing, err := repo.FindByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCustomerRepository_AllPreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewCustomerRepository(zap.NewNop())

	names := []string{"Alice", "Brian", "Cynthia"}
	for _, name := range names {
		require.NoError(t, repo.Create(ctx, newCustomer(name, "Tester")))
	}

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, name := range names {
		assert.Equal(t, name, all[i].FirstName)
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestRestaurantRepository_CreateAndFind(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewRestaurantRepository(zap.NewNop())

	restaurant := newRestaurant("Mama Oliech")
	require.NoError(t, repo.Create(ctx, restaurant))

	found, err := repo.FindByID(ctx, restaurant.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Mama Oliech", found.Name)

	missing, err := repo.FindByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRestaurantRepository_AllPreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewRestaurantRepository(zap.NewNop())

	names := []string{"Mama Oliech", "Carnivore", "Talisman"}
	for _, name := range names {
		require.NoError(t, repo.Create(ctx, newRestaurant(name)))
	}

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, name := range names {
		assert.Equal(t, name, all[i].Name)
	}
}
