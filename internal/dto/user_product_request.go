package dto

import "time"

type ApproveProductRequest struct {
	RequestID   string `json:"requestId" validate:"required"`
	SellerNotes string `json:"sellerNotes"`
}

type RejectProductRequest struct {
	RequestID       string `json:"requestId" validate:"required"`
	RejectionReason string `json:"rejectionReason"`
	SellerNotes     string `json:"sellerNotes"`
}

type UserProductRequestResponse struct {
	ID              string       `json:"_id"`
	UserID          string       `json:"userId"`
	User            *UserSummary `json:"user,omitempty"`
	Name            string       `json:"name"`
	Description     []string     `json:"description"`
	Price           float64      `json:"price"`
	OfferPrice      float64      `json:"offerPrice"`
	Image           []string     `json:"image"`
	Category        string       `json:"category"`
	Status          string       `json:"status"`
	RejectionReason string       `json:"rejectionReason,omitempty"`
	SellerNotes     string       `json:"sellerNotes,omitempty"`
	ProductID       string       `json:"productId,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

type ApproveProductResponse struct {
	Request UserProductRequestResponse `json:"request"`
	Product ProductResponse            `json:"product"`
}
