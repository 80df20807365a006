package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

type UserProductRequest struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty"`
	UserID          primitive.ObjectID  `bson:"user_id"`
	Name            string              `bson:"name"`
	Description     []string            `bson:"description"`
	Price           float64             `bson:"price"`
	OfferPrice      float64             `bson:"offer_price"`
	Image           []string            `bson:"image"`
	Category        string              `bson:"category"`
	Status          RequestStatus       `bson:"status"`
	RejectionReason string              `bson:"rejection_reason,omitempty"`
	SellerNotes     string              `bson:"seller_notes,omitempty"`
	ProductID       *primitive.ObjectID `bson:"product_id,omitempty"`
	CreatedAt       time.Time           `bson:"created_at"`
	UpdatedAt       time.Time           `bson:"updated_at"`
}

// ToProduct copies the descriptive fields into a new in-stock catalog entry
// attributed to the submitter.
func (r UserProductRequest) ToProduct(now time.Time) Product {
	submitter := r.UserID
	return Product{
		Name:                r.Name,
		Description:         append([]string(nil), r.Description...),
		Price:               r.Price,
		OfferPrice:          r.OfferPrice,
		Image:               append([]string(nil), r.Image...),
		Category:            r.Category,
		InStock:             true,
		OriginalSubmitterID: &submitter,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}
