package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PaymentTypeCOD    = "COD"
	PaymentTypeOnline = "Online"

	OrderStatusPlaced          = "Order Placed"
	OrderStatusAwaitingPayment = "Awaiting Payment"
	OrderStatusPaymentFailed   = "Payment Failed"
	OrderStatusPaymentExpired  = "Payment Expired"
)

type Order struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	UserID            primitive.ObjectID `bson:"user_id"`
	Items             []OrderItem        `bson:"items"`
	Amount            float64            `bson:"amount"`
	Address           primitive.ObjectID `bson:"address"`
	Status            string             `bson:"status"`
	PaymentType       string             `bson:"payment_type"`
	IsPaid            bool               `bson:"is_paid"`
	TransactionNumber string             `bson:"transaction_number,omitempty"`
	PaymentExpiredAt  *time.Time         `bson:"payment_expired_at,omitempty"`
	PaidAt            *time.Time         `bson:"paid_at,omitempty"`
	CreatedAt         time.Time          `bson:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at"`
}

type OrderItem struct {
	ProductID primitive.ObjectID `bson:"product"`
	Quantity  int                `bson:"quantity"`
}
