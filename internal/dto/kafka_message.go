package dto

import "encoding/json"

const (
	EventProductAdded            = "product_added"
	EventProductRequestSubmitted = "product_request_submitted"
	EventProductRequestApproved  = "product_request_approved"
	EventProductRequestRejected  = "product_request_rejected"
	EventOrderPlaced             = "order_placed"
	EventOrderPaid               = "order_paid"
)

type KafkaMessage struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}

// ReceivedKafkaMessage keeps the payload raw until the event type is known.
type ReceivedKafkaMessage struct {
	EventType string          `json:"event_type"`
	Data      json.RawMessage `json:"data"`
}

type ProductRequestDecisionEvent struct {
	RequestID       string `json:"request_id"`
	ProductID       string `json:"product_id,omitempty"`
	UserID          string `json:"user_id"`
	UserName        string `json:"user_name"`
	UserEmail       string `json:"user_email"`
	ProductName     string `json:"product_name"`
	Status          string `json:"status"`
	RejectionReason string `json:"rejection_reason,omitempty"`
	SellerNotes     string `json:"seller_notes,omitempty"`
}

type ProductRequestSubmittedEvent struct {
	RequestID   string `json:"request_id"`
	UserID      string `json:"user_id"`
	ProductName string `json:"product_name"`
}

type ProductEvent struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
}

type OrderEvent struct {
	OrderID           string  `json:"order_id"`
	UserID            string  `json:"user_id"`
	Amount            float64 `json:"amount"`
	PaymentType       string  `json:"payment_type"`
	TransactionNumber string  `json:"transaction_number,omitempty"`
}
