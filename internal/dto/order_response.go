package dto

import "time"

type OrderItemResponse struct {
	Product   *ProductResponse `json:"product"`
	Quantity  int              `json:"quantity"`
	Submitter *UserSummary     `json:"submitter,omitempty"`
}

type OrderResponse struct {
	ID                string              `json:"_id"`
	User              *UserSummary        `json:"user,omitempty"`
	Items             []OrderItemResponse `json:"items"`
	Amount            float64             `json:"amount"`
	Address           *AddressResponse    `json:"address"`
	Status            string              `json:"status"`
	PaymentType       string              `json:"paymentType"`
	IsPaid            bool                `json:"isPaid"`
	TransactionNumber string              `json:"transactionNumber,omitempty"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
}

type EnhancedOrderResponse struct {
	OrderResponse
	HasUserSubmittedProducts bool                `json:"hasUserSubmittedProducts"`
	UserSubmittedItems       []OrderItemResponse `json:"userSubmittedItems"`
}

type PaymentAction struct {
	Name   string `json:"name"`
	Method string `json:"method"`
	URL    string `json:"url"`
}

type OnlineOrderResponse struct {
	Order     OrderResponse   `json:"order"`
	QRString  string          `json:"qrString,omitempty"`
	Actions   []PaymentAction `json:"actions"`
	ExpiredAt *time.Time      `json:"expiredAt,omitempty"`
}
