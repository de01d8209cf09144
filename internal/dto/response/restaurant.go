package response

import (
	"time"

	"restaurant-reviews/internal/data/entity"
)

type RestaurantResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type RestaurantReviewStats struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

// RankedRestaurant pairs a restaurant with its average star rating for
// top-N listings.
type RankedRestaurant struct {
	RestaurantResponse
	AverageRating float64 `json:"average_rating"`
}

func RestaurantToResponse(restaurant *entity.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:        restaurant.ID.String(),
		Name:      restaurant.Name,
		CreatedAt: restaurant.CreatedAt,
	}
}
