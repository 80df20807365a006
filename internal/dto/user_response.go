package dto

import (
	"time"

	pkgdto "github.com/Humayun167/green-nest/pkg/dto"
)

type UserResponse struct {
	ID           string         `json:"_id"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	ProfileImage string         `json:"profileImage,omitempty"`
	CartItems    map[string]int `json:"cartItems"`
	LastLogin    *time.Time     `json:"lastLogin,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// UserSummary is the populated form of a user reference.
type UserSummary struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type SellerAuthResponse struct {
	Email string `json:"email"`
	Token string `json:"token,omitempty"`
}

type OrderCountResponse struct {
	OrderCount int64 `json:"orderCount"`
}

type ProfileImageResponse struct {
	User     UserResponse `json:"user"`
	ImageURL string       `json:"imageUrl"`
}

type UsersPageResponse struct {
	Users      []UserResponse            `json:"users"`
	Pagination pkgdto.PaginationMetadata `json:"pagination"`
}
