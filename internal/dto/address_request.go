package dto

type AddressPayload struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Street    string `json:"street" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	Zipcode   string `json:"zipcode" validate:"required"`
	Country   string `json:"country" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
}

type AddressRequest struct {
	Address AddressPayload `json:"address"`
}

type AddressResponse struct {
	ID     string `json:"_id"`
	UserID string `json:"userId"`
	AddressPayload
}
