package service

import (
	"github.com/Humayun167/green-nest/internal/domain"
	"github.com/Humayun167/green-nest/internal/dto"
)

func toUserResponse(user domain.User) dto.UserResponse {
	cartItems := user.CartItems
	if cartItems == nil {
		cartItems = map[string]int{}
	}

	return dto.UserResponse{
		ID:           user.ID.Hex(),
		Name:         user.Name,
		Email:        user.Email,
		ProfileImage: user.ProfileImage,
		CartItems:    cartItems,
		LastLogin:    user.LastLogin,
		CreatedAt:    user.CreatedAt,
	}
}

func toUserSummary(user domain.User, withEmail bool) *dto.UserSummary {
	summary := &dto.UserSummary{
		ID:           user.ID.Hex(),
		Name:         user.Name,
		ProfileImage: user.ProfileImage,
	}
	if withEmail {
		summary.Email = user.Email
	}
	return summary
}

func toProductResponse(product domain.Product) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:          product.ID.Hex(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		OfferPrice:  product.OfferPrice,
		Image:       product.Image,
		Category:    product.Category,
		InStock:     product.InStock,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
	if product.OriginalSubmitterID != nil {
		resp.OriginalSubmitterID = product.OriginalSubmitterID.Hex()
	}
	return resp
}

func toProductResponses(products []domain.Product) []dto.ProductResponse {
	resp := make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		resp = append(resp, toProductResponse(product))
	}
	return resp
}

func toAddressResponse(address domain.Address) dto.AddressResponse {
	return dto.AddressResponse{
		ID:     address.ID.Hex(),
		UserID: address.UserID.Hex(),
		AddressPayload: dto.AddressPayload{
			FirstName: address.FirstName,
			LastName:  address.LastName,
			Email:     address.Email,
			Street:    address.Street,
			City:      address.City,
			State:     address.State,
			Zipcode:   address.Zipcode,
			Country:   address.Country,
			Phone:     address.Phone,
		},
	}
}

func toRequestResponse(request domain.UserProductRequest) dto.UserProductRequestResponse {
	resp := dto.UserProductRequestResponse{
		ID:              request.ID.Hex(),
		UserID:          request.UserID.Hex(),
		Name:            request.Name,
		Description:     request.Description,
		Price:           request.Price,
		OfferPrice:      request.OfferPrice,
		Image:           request.Image,
		Category:        request.Category,
		Status:          string(request.Status),
		RejectionReason: request.RejectionReason,
		SellerNotes:     request.SellerNotes,
		CreatedAt:       request.CreatedAt,
		UpdatedAt:       request.UpdatedAt,
	}
	if request.ProductID != nil {
		resp.ProductID = request.ProductID.Hex()
	}
	return resp
}
