package request

type CreateReviewRequest struct {
	CustomerID   string  `json:"customer_id" validate:"required,uuid4"`
	RestaurantID string  `json:"restaurant_id" validate:"required,uuid4"`
	Rating       int     `json:"rating" validate:"required,min=1,max=5"`
	Comment      *string `json:"comment,omitempty" validate:"omitempty,max=500"`
}
