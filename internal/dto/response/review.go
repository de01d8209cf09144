package response

import (
	"time"

	"restaurant-reviews/internal/data/entity"
)

type ReviewResponse struct {
	ID             string    `json:"id"`
	CustomerID     string    `json:"customer_id"`
	CustomerName   string    `json:"customer_name,omitempty"`
	RestaurantID   string    `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name,omitempty"`
	Rating         int       `json:"rating"`
	Comment        *string   `json:"comment,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Helper converter
func ReviewToResponse(review *entity.Review, customerName, restaurantName string) ReviewResponse {
	return ReviewResponse{
		ID:             review.ID.String(),
		CustomerID:     review.CustomerID.String(),
		CustomerName:   customerName,
		RestaurantID:   review.RestaurantID.String(),
		RestaurantName: restaurantName,
		Rating:         review.Rating,
		Comment:        review.Comment,
		CreatedAt:      review.CreatedAt,
	}
}
