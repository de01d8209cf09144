package request

type CreateRestaurantRequest struct {
	Name string `json:"name" validate:"required,min=1,max=25"`
}
