package dto

type OrderItemRequest struct {
	Product  string `json:"product" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=1"`
}

type PlaceOrderRequest struct {
	Items   []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Address string             `json:"address" validate:"required"`
}
