package mocks

import (
	"context"
	"time"

	"github.com/Humayun167/green-nest/internal/domain"
	"github.com/Humayun167/green-nest/internal/dto"
	pkgdto "github.com/Humayun167/green-nest/pkg/dto"
	"github.com/Humayun167/green-nest/pkg/utils"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) AddUser(ctx context.Context, data domain.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *UserRepository) GetUserByID(ctx context.Context, id primitive.ObjectID) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *UserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *UserRepository) GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.User, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *UserRepository) GetUsers(ctx context.Context, filter pkgdto.Filter) ([]domain.User, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

func (m *UserRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, name string, email string) error {
	return m.Called(ctx, id, name, email).Error(0)
}

func (m *UserRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, hashedPassword string) error {
	return m.Called(ctx, id, hashedPassword).Error(0)
}

func (m *UserRepository) UpdateProfileImage(ctx context.Context, id primitive.ObjectID, imageURL string) error {
	return m.Called(ctx, id, imageURL).Error(0)
}

func (m *UserRepository) UpdateCartItems(ctx context.Context, id primitive.ObjectID, cartItems map[string]int) error {
	return m.Called(ctx, id, cartItems).Error(0)
}

func (m *UserRepository) UpdateLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) AddProduct(ctx context.Context, data domain.Product) (primitive.ObjectID, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *ProductRepository) GetProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *ProductRepository) GetProductByID(ctx context.Context, id primitive.ObjectID) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *ProductRepository) GetProductsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *ProductRepository) GetProductsBySubmitter(ctx context.Context, userID primitive.ObjectID) ([]domain.Product, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *ProductRepository) SearchProducts(ctx context.Context, query dto.ProductSearchQuery) ([]domain.Product, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *ProductRepository) UpdateStock(ctx context.Context, id primitive.ObjectID, inStock bool) error {
	return m.Called(ctx, id, inStock).Error(0)
}

func (m *ProductRepository) InvalidateProducts(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type ProductSearchRepository struct {
	mock.Mock
}

func (m *ProductSearchRepository) IndexProduct(ctx context.Context, product dto.ProductResponse) error {
	return m.Called(ctx, product).Error(0)
}

func (m *ProductSearchRepository) SearchProducts(ctx context.Context, query dto.ProductSearchQuery) ([]dto.ProductResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]dto.ProductResponse), args.Error(1)
}

type UserProductRequestRepository struct {
	mock.Mock
}

func (m *UserProductRequestRepository) AddRequest(ctx context.Context, data domain.UserProductRequest) (primitive.ObjectID, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *UserProductRequestRepository) GetRequestByID(ctx context.Context, id primitive.ObjectID) (domain.UserProductRequest, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.UserProductRequest), args.Error(1)
}

func (m *UserProductRequestRepository) GetRequestsByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.UserProductRequest, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.UserProductRequest), args.Error(1)
}

func (m *UserProductRequestRepository) GetRequests(ctx context.Context) ([]domain.UserProductRequest, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.UserProductRequest), args.Error(1)
}

func (m *UserProductRequestRepository) MarkApproved(ctx context.Context, id primitive.ObjectID, productID primitive.ObjectID, sellerNotes string, at time.Time) error {
	return m.Called(ctx, id, productID, sellerNotes, at).Error(0)
}

func (m *UserProductRequestRepository) MarkRejected(ctx context.Context, id primitive.ObjectID, reason string, sellerNotes string, at time.Time) error {
	return m.Called(ctx, id, reason, sellerNotes, at).Error(0)
}

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) AddOrder(ctx context.Context, data domain.Order) (primitive.ObjectID, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *OrderRepository) GetVisibleOrders(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *OrderRepository) GetVisibleOrdersByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *OrderRepository) GetVisibleOrdersByProductIDs(ctx context.Context, productIDs []primitive.ObjectID) ([]domain.Order, error) {
	args := m.Called(ctx, productIDs)
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *OrderRepository) CountVisibleOrdersByUserID(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepository) GetOrderByTransactionNumber(ctx context.Context, transactionNumber string) (domain.Order, error) {
	args := m.Called(ctx, transactionNumber)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *OrderRepository) MarkOrderPaid(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

func (m *OrderRepository) UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *OrderRepository) ExpireUnpaidOrders(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type AddressRepository struct {
	mock.Mock
}

func (m *AddressRepository) AddAddress(ctx context.Context, data domain.Address) (primitive.ObjectID, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *AddressRepository) GetAddressByID(ctx context.Context, id primitive.ObjectID) (domain.Address, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Address), args.Error(1)
}

func (m *AddressRepository) GetAddressesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Address, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]domain.Address), args.Error(1)
}

func (m *AddressRepository) GetAddressesByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Address, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Address), args.Error(1)
}

func (m *AddressRepository) UpdateAddress(ctx context.Context, data domain.Address) (domain.Address, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(domain.Address), args.Error(1)
}

func (m *AddressRepository) DeleteAddress(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

type ImageRepository struct {
	mock.Mock
}

func (m *ImageRepository) Upload(ctx context.Context, folder string, file utils.UploadedFile) (string, error) {
	args := m.Called(ctx, folder, file)
	return args.String(0), args.Error(1)
}

func (m *ImageRepository) Delete(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}

// TransactionManager runs the callback inline, so repository expectations
// inside a transaction are checked like any other call.
type TransactionManager struct {
	mock.Mock
}

func (m *TransactionManager) HandleTrx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Called(ctx)
	return fn(ctx)
}

type EventPublisher struct {
	mock.Mock
}

func (m *EventPublisher) Publish(ctx context.Context, key string, msg dto.KafkaMessage) error {
	return m.Called(ctx, key, msg).Error(0)
}

type Mailer struct {
	mock.Mock
}

func (m *Mailer) Send(ctx context.Context, to string, subject string, body string) error {
	return m.Called(ctx, to, subject, body).Error(0)
}
