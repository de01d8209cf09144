package cmd

import (
	"context"
	"fmt"

	"restaurant-reviews/internal/dto/request"
	"restaurant-reviews/internal/wire"

	"go.uber.org/zap"
)

// RunDemo seeds a few customers, restaurants and reviews, then walks through
// every query helper and logs the results. It stands in for a transport
// layer: the module's boundary is the in-process service API.
func RunDemo(app *wire.App) error {
	ctx := context.Background()
	log := app.Logger.With(zap.String("component", "demo"))

	alice, err := app.Service.Customer.CreateCustomer(ctx, &request.CreateCustomerRequest{
		FirstName: "Alice", LastName: "Mwangi",
	})
	if err != nil {
		return fmt.Errorf("seed customer: %w", err)
	}
	brian, err := app.Service.Customer.CreateCustomer(ctx, &request.CreateCustomerRequest{
		FirstName: "Brian", LastName: "Otieno",
	})
	if err != nil {
		return fmt.Errorf("seed customer: %w", err)
	}

	mamaOliech, err := app.Service.Restaurant.CreateRestaurant(ctx, &request.CreateRestaurantRequest{Name: "Mama Oliech"})
	if err != nil {
		return fmt.Errorf("seed restaurant: %w", err)
	}
	carnivore, err := app.Service.Restaurant.CreateRestaurant(ctx, &request.CreateRestaurantRequest{Name: "Carnivore"})
	if err != nil {
		return fmt.Errorf("seed restaurant: %w", err)
	}
	talisman, err := app.Service.Restaurant.CreateRestaurant(ctx, &request.CreateRestaurantRequest{Name: "Talisman"})
	if err != nil {
		return fmt.Errorf("seed restaurant: %w", err)
	}

	seedReviews := []struct {
		customerID   string
		restaurantID string
		rating       int
	}{
		{alice.ID, mamaOliech.ID, 5},
		{alice.ID, carnivore.ID, 2},
		{alice.ID, talisman.ID, 4},
		{brian.ID, mamaOliech.ID, 4},
		{brian.ID, carnivore.ID, 1},
	}
	for _, seed := range seedReviews {
		if _, err := app.Service.Review.CreateReview(ctx, &request.CreateReviewRequest{
			CustomerID:   seed.customerID,
			RestaurantID: seed.restaurantID,
			Rating:       seed.rating,
		}); err != nil {
			return fmt.Errorf("seed review: %w", err)
		}
	}

	// Per-customer queries
	page := &request.PaginatedRequest{Page: 1, PerPage: 10}
	aliceReviews, err := app.Service.Customer.GetCustomerReviews(ctx, alice.ID, page)
	if err != nil {
		return err
	}
	negatives, err := app.Service.Customer.CountNegativeReviews(ctx, alice.ID)
	if err != nil {
		return err
	}
	log.Info("Customer summary",
		zap.String("customer", alice.FirstName+" "+alice.LastName),
		zap.Int64("reviews", aliceReviews.Pagination.Total),
		zap.Int64("negative_reviews", negatives),
	)

	// Per-restaurant queries
	for _, restaurant := range []struct {
		id   string
		name string
	}{
		{mamaOliech.ID, mamaOliech.Name},
		{carnivore.ID, carnivore.Name},
		{talisman.ID, talisman.Name},
	} {
		stats, err := app.Service.Restaurant.GetReviewStats(ctx, restaurant.id)
		if err != nil {
			return err
		}
		log.Info("Restaurant summary",
			zap.String("restaurant", restaurant.name),
			zap.Float64("average_rating", stats.AverageRating),
			zap.Int64("review_count", stats.ReviewCount),
		)
	}

	// Ranking
	top, err := app.Service.Restaurant.TopTwoRestaurants(ctx)
	if err != nil {
		return err
	}
	for i, ranked := range top {
		log.Info("Top restaurant",
			zap.Int("rank", i+1),
			zap.String("restaurant", ranked.Name),
			zap.Float64("average_rating", ranked.AverageRating),
		)
	}

	return nil
}
