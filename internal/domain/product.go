package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID                  primitive.ObjectID  `bson:"_id,omitempty"`
	Name                string              `bson:"name"`
	Description         []string            `bson:"description"`
	Price               float64             `bson:"price"`
	OfferPrice          float64             `bson:"offer_price"`
	Image               []string            `bson:"image"`
	Category            string              `bson:"category"`
	InStock             bool                `bson:"in_stock"`
	OriginalSubmitterID *primitive.ObjectID `bson:"original_submitter_id,omitempty"`
	CreatedAt           time.Time           `bson:"created_at"`
	UpdatedAt           time.Time           `bson:"updated_at"`
}

// SubmittedBy reports whether the product was materialized from a request
// owned by userID.
func (p Product) SubmittedBy(userID primitive.ObjectID) bool {
	return p.OriginalSubmitterID != nil && *p.OriginalSubmitterID == userID
}
