package service

import (
	"context"

	"github.com/Humayun167/green-nest/internal/dto"
	paymentgateway "github.com/Humayun167/green-nest/internal/infrastructure/payment-gateway"
	pkgdto "github.com/Humayun167/green-nest/pkg/dto"
	"github.com/Humayun167/green-nest/pkg/utils"
)

type UserService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (resp dto.AuthResponse, err error)
	Login(ctx context.Context, req dto.LoginRequest) (resp dto.AuthResponse, err error)
	GetProfile(ctx context.Context, userID string) (resp dto.UserResponse, err error)
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (resp dto.UserResponse, err error)
	UpdatePassword(ctx context.Context, userID string, req dto.UpdatePasswordRequest) (err error)
	GetOrderCount(ctx context.Context, userID string) (resp dto.OrderCountResponse, err error)
	UploadProfileImage(ctx context.Context, userID string, image utils.UploadedFile) (resp dto.ProfileImageResponse, err error)
	UpdateCart(ctx context.Context, userID string, req dto.CartUpdateRequest) (err error)
	GetUsers(ctx context.Context, filter pkgdto.Filter) (resp dto.UsersPageResponse, err error)
}

type SellerService interface {
	Login(ctx context.Context, req dto.LoginRequest) (resp dto.SellerAuthResponse, err error)
}

type ProductService interface {
	AddProduct(ctx context.Context, req dto.ProductPayload, images []utils.UploadedFile) (resp dto.ProductResponse, err error)
	GetProducts(ctx context.Context) (resp []dto.ProductResponse, err error)
	GetProductByID(ctx context.Context, id string) (resp dto.ProductResponse, err error)
	UpdateStock(ctx context.Context, req dto.ProductStockRequest) (err error)
	SearchProducts(ctx context.Context, query dto.ProductSearchQuery) (resp []dto.ProductResponse, err error)
	ReindexProducts()
}

type AddressService interface {
	AddAddress(ctx context.Context, userID string, req dto.AddressPayload) (resp dto.AddressResponse, err error)
	GetAddresses(ctx context.Context, userID string) (resp []dto.AddressResponse, err error)
	UpdateAddress(ctx context.Context, userID string, addressID string, req dto.AddressPayload) (resp dto.AddressResponse, err error)
	DeleteAddress(ctx context.Context, userID string, addressID string) (err error)
}

type OrderService interface {
	PlaceCODOrder(ctx context.Context, userID string, req dto.PlaceOrderRequest) (resp dto.OrderResponse, err error)
	PlaceOnlineOrder(ctx context.Context, userID string, req dto.PlaceOrderRequest) (resp dto.OnlineOrderResponse, err error)
	HandlePaymentNotification(ctx context.Context, req dto.PaymentNotification) (err error)
	GetUserOrders(ctx context.Context, userID string) (resp []dto.OrderResponse, err error)
	GetUserSales(ctx context.Context, userID string) (resp []dto.OrderResponse, err error)
	GetAllOrders(ctx context.Context) (resp []dto.OrderResponse, err error)
	GetEnhancedOrders(ctx context.Context) (resp []dto.EnhancedOrderResponse, err error)
	ExpireUnpaidOrders()
}

type PostService interface {
	GetPosts(ctx context.Context, filter pkgdto.Filter) (resp dto.PostPageResponse, err error)
	CreatePost(ctx context.Context, userID string, req dto.PostContentRequest, image *utils.UploadedFile) (resp dto.PostResponse, err error)
	GetPostsByUser(ctx context.Context, userID string) (resp []dto.PostResponse, err error)
	GetPostByID(ctx context.Context, postID string) (resp dto.PostResponse, err error)
	ToggleLike(ctx context.Context, userID string, postID string) (resp dto.LikeToggleResponse, err error)
	AddComment(ctx context.Context, userID string, postID string, req dto.CommentRequest) (resp dto.PostResponse, err error)
	DeleteComment(ctx context.Context, userID string, postID string, commentID string) (err error)
	UpdatePost(ctx context.Context, userID string, postID string, req dto.PostContentRequest) (resp dto.PostResponse, err error)
	DeletePost(ctx context.Context, userID string, postID string) (err error)
	DeletePostAsSeller(ctx context.Context, postID string) (err error)
}

type UserProductRequestService interface {
	SubmitRequest(ctx context.Context, userID string, req dto.ProductPayload, images []utils.UploadedFile) (resp dto.UserProductRequestResponse, err error)
	GetUserRequests(ctx context.Context, userID string) (resp []dto.UserProductRequestResponse, err error)
	GetAllRequests(ctx context.Context) (resp []dto.UserProductRequestResponse, err error)
	ApproveRequest(ctx context.Context, req dto.ApproveProductRequest) (resp dto.ApproveProductResponse, err error)
	RejectRequest(ctx context.Context, req dto.RejectProductRequest) (resp dto.UserProductRequestResponse, err error)
}

type NotificationService interface {
	ConsumeEvents(ctx context.Context)
	HandleMessage(ctx context.Context, value []byte) (err error)
}

// EventPublisher emits domain events to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, key string, msg dto.KafkaMessage) error
}

type Mailer interface {
	Send(ctx context.Context, to string, subject string, body string) error
}

type PaymentGateway interface {
	ChargeQris(ctx context.Context, req paymentgateway.ChargeRequest) (paymentgateway.ChargeResult, error)
}
