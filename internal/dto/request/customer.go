package request

type CreateCustomerRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=25"`
	LastName  string `json:"last_name" validate:"required,min=1,max=25"`
}
