package dto

import "time"

type ProductResponse struct {
	ID                  string    `json:"_id"`
	Name                string    `json:"name"`
	Description         []string  `json:"description"`
	Price               float64   `json:"price"`
	OfferPrice          float64   `json:"offerPrice"`
	Image               []string  `json:"image"`
	Category            string    `json:"category"`
	InStock             bool      `json:"inStock"`
	OriginalSubmitterID string    `json:"originalSubmitterId,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
