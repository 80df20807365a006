package repository

import (
	"context"
	"time"

	"github.com/Humayun167/green-nest/internal/domain"
	"github.com/Humayun167/green-nest/internal/dto"
	pkgdto "github.com/Humayun167/green-nest/pkg/dto"
	"github.com/Humayun167/green-nest/pkg/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransactionManager runs fn inside a database transaction. Repositories
// called with the ctx handed to fn take part in the transaction.
type TransactionManager interface {
	HandleTrx(ctx context.Context, fn func(ctx context.Context) error) error
}

type UserRepository interface {
	AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (user domain.User, err error)
	GetUserByEmail(ctx context.Context, email string) (user domain.User, err error)
	GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) (users []domain.User, err error)
	GetUsers(ctx context.Context, filter pkgdto.Filter) (users []domain.User, totalCount int64, err error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, name string, email string) (err error)
	UpdatePassword(ctx context.Context, id primitive.ObjectID, hashedPassword string) (err error)
	UpdateProfileImage(ctx context.Context, id primitive.ObjectID, imageURL string) (err error)
	UpdateCartItems(ctx context.Context, id primitive.ObjectID, cartItems map[string]int) (err error)
	UpdateLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) (err error)
}

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	GetProducts(ctx context.Context) (products []domain.Product, err error)
	GetProductByID(ctx context.Context, id primitive.ObjectID) (product domain.Product, err error)
	GetProductsByIDs(ctx context.Context, ids []primitive.ObjectID) (products []domain.Product, err error)
	GetProductsBySubmitter(ctx context.Context, userID primitive.ObjectID) (products []domain.Product, err error)
	SearchProducts(ctx context.Context, query dto.ProductSearchQuery) (products []domain.Product, err error)
	UpdateStock(ctx context.Context, id primitive.ObjectID, inStock bool) (err error)
	// InvalidateProducts drops any cached listing. Writers call it after
	// their change commits, never from inside a transaction.
	InvalidateProducts(ctx context.Context) (err error)
}

// ProductSearchRepository is the secondary full-text index of the catalog.
type ProductSearchRepository interface {
	IndexProduct(ctx context.Context, product dto.ProductResponse) (err error)
	SearchProducts(ctx context.Context, query dto.ProductSearchQuery) (products []dto.ProductResponse, err error)
}

type UserProductRequestRepository interface {
	AddRequest(ctx context.Context, data domain.UserProductRequest) (id primitive.ObjectID, err error)
	GetRequestByID(ctx context.Context, id primitive.ObjectID) (request domain.UserProductRequest, err error)
	GetRequestsByUserID(ctx context.Context, userID primitive.ObjectID) (requests []domain.UserProductRequest, err error)
	GetRequests(ctx context.Context) (requests []domain.UserProductRequest, err error)
	MarkApproved(ctx context.Context, id primitive.ObjectID, productID primitive.ObjectID, sellerNotes string, at time.Time) (err error)
	MarkRejected(ctx context.Context, id primitive.ObjectID, reason string, sellerNotes string, at time.Time) (err error)
}

type OrderRepository interface {
	AddOrder(ctx context.Context, data domain.Order) (id primitive.ObjectID, err error)
	GetVisibleOrders(ctx context.Context) (orders []domain.Order, err error)
	GetVisibleOrdersByUserID(ctx context.Context, userID primitive.ObjectID) (orders []domain.Order, err error)
	GetVisibleOrdersByProductIDs(ctx context.Context, productIDs []primitive.ObjectID) (orders []domain.Order, err error)
	CountVisibleOrdersByUserID(ctx context.Context, userID primitive.ObjectID) (count int64, err error)
	GetOrderByTransactionNumber(ctx context.Context, transactionNumber string) (order domain.Order, err error)
	MarkOrderPaid(ctx context.Context, id primitive.ObjectID, at time.Time) (err error)
	UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status string) (err error)
	ExpireUnpaidOrders(ctx context.Context, now time.Time) (expired int64, err error)
}

type AddressRepository interface {
	AddAddress(ctx context.Context, data domain.Address) (id primitive.ObjectID, err error)
	GetAddressByID(ctx context.Context, id primitive.ObjectID) (address domain.Address, err error)
	GetAddressesByIDs(ctx context.Context, ids []primitive.ObjectID) (addresses []domain.Address, err error)
	GetAddressesByUserID(ctx context.Context, userID primitive.ObjectID) (addresses []domain.Address, err error)
	UpdateAddress(ctx context.Context, data domain.Address) (address domain.Address, err error)
	DeleteAddress(ctx context.Context, id primitive.ObjectID) (err error)
}

type PostRepository interface {
	AddPost(ctx context.Context, data domain.Post) (id primitive.ObjectID, err error)
	GetPosts(ctx context.Context, filter pkgdto.Filter) (posts []domain.Post, totalCount int64, err error)
	GetPostsByUserID(ctx context.Context, userID primitive.ObjectID) (posts []domain.Post, err error)
	GetPostByID(ctx context.Context, id primitive.ObjectID) (post domain.Post, err error)
	UpdatePostContent(ctx context.Context, id primitive.ObjectID, content string, at time.Time) (err error)
	DeletePost(ctx context.Context, id primitive.ObjectID) (err error)
	AddLike(ctx context.Context, postID primitive.ObjectID, like domain.Like) (err error)
	RemoveLike(ctx context.Context, postID primitive.ObjectID, userID primitive.ObjectID) (err error)
	AddComment(ctx context.Context, postID primitive.ObjectID, comment domain.Comment) (err error)
	RemoveComment(ctx context.Context, postID primitive.ObjectID, commentID primitive.ObjectID) (err error)
}

// ImageRepository stores uploaded images in object storage and hands back
// their public URLs.
type ImageRepository interface {
	Upload(ctx context.Context, folder string, file utils.UploadedFile) (url string, err error)
	Delete(ctx context.Context, url string) (err error)
}
