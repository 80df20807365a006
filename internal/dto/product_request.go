package dto

// ProductPayload carries the descriptive fields shared by seller-created
// products and user product requests.
type ProductPayload struct {
	Name        string   `json:"name" validate:"required"`
	Description []string `json:"description" validate:"required,min=1"`
	Price       float64  `json:"price" validate:"gt=0"`
	OfferPrice  float64  `json:"offerPrice" validate:"gt=0"`
	Category    string   `json:"category" validate:"required"`
}

type ProductIDRequest struct {
	ID string `json:"id" validate:"required"`
}

type ProductStockRequest struct {
	ID      string `json:"id" validate:"required"`
	InStock *bool  `json:"inStock" validate:"required"`
}

type ProductSearchQuery struct {
	Q        string `query:"q"`
	Category string `query:"category"`
	Limit    int    `query:"limit"`
}
