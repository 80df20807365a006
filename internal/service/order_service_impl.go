package service

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/Humayun167/green-nest/config"
	"github.com/Humayun167/green-nest/internal/domain"
	"github.com/Humayun167/green-nest/internal/dto"
	paymentgateway "github.com/Humayun167/green-nest/internal/infrastructure/payment-gateway"
	"github.com/Humayun167/green-nest/internal/repository"
	"github.com/Humayun167/green-nest/pkg/errs"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderServiceImpl struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	addressRepo repository.AddressRepository
	userRepo    repository.UserRepository
	gateway     PaymentGateway
	publisher   EventPublisher
	config      *config.Config
}

// CreateOrderService wires order handling. gateway may be nil, which
// disables online payment.
func CreateOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, addressRepo repository.AddressRepository, userRepo repository.UserRepository, gateway PaymentGateway, publisher EventPublisher, config *config.Config) OrderService {
	return &OrderServiceImpl{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		addressRepo: addressRepo,
		userRepo:    userRepo,
		gateway:     gateway,
		publisher:   publisher,
		config:      config,
	}
}

// CalculateOrderAmount returns floor(sum(offerPrice * quantity) * (1 + taxRate)).
func CalculateOrderAmount(items []domain.OrderItem, products map[primitive.ObjectID]domain.Product, taxRate float64) float64 {
	subtotal := decimal.Zero
	for _, item := range items {
		price := decimal.NewFromFloat(products[item.ProductID].OfferPrice)
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	multiplier := decimal.NewFromInt(1).Add(decimal.NewFromFloat(taxRate))

	return subtotal.Mul(multiplier).Floor().InexactFloat64()
}

type preparedOrder struct {
	userID   primitive.ObjectID
	items    []domain.OrderItem
	address  domain.Address
	products map[primitive.ObjectID]domain.Product
	amount   float64
}

// prepareOrder validates the checkout input and prices every line from the
// catalog. Client supplied prices are never trusted.
func (s *OrderServiceImpl) prepareOrder(ctx context.Context, userID string, req dto.PlaceOrderRequest) (prepared preparedOrder, err error) {
	prepared.userID, err = parseUserID(userID)
	if err != nil {
		return prepared, err
	}

	if req.Address == "" || len(req.Items) == 0 {
		return prepared, errs.ErrValidation
	}

	addressID, err := parseObjectID(req.Address, errs.ErrAddressNotFound)
	if err != nil {
		return prepared, err
	}

	prepared.address, err = s.addressRepo.GetAddressByID(ctx, addressID)
	if err != nil {
		return prepared, err
	}
	if prepared.address.UserID != prepared.userID {
		return prepared, errs.ErrAddressNotOwned
	}

	productIDs := make([]primitive.ObjectID, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return prepared, errs.ErrValidation
		}

		productID, err := parseObjectID(item.Product, errs.ErrProductNotFound)
		if err != nil {
			return prepared, err
		}

		prepared.items = append(prepared.items, domain.OrderItem{
			ProductID: productID,
			Quantity:  item.Quantity,
		})
		productIDs = append(productIDs, productID)
	}

	products, err := s.productRepo.GetProductsByIDs(ctx, uniqueObjectIDs(productIDs))
	if err != nil {
		return prepared, err
	}

	prepared.products = make(map[primitive.ObjectID]domain.Product, len(products))
	for _, product := range products {
		prepared.products[product.ID] = product
	}

	for _, item := range prepared.items {
		if _, ok := prepared.products[item.ProductID]; !ok {
			return prepared, fmt.Errorf("%w: %s", errs.ErrProductNotFound, item.ProductID.Hex())
		}
	}

	prepared.amount = CalculateOrderAmount(prepared.items, prepared.products, s.config.OrderConfig.TaxRate)

	return prepared, nil
}

func (s *OrderServiceImpl) PlaceCODOrder(ctx context.Context, userID string, req dto.PlaceOrderRequest) (resp dto.OrderResponse, err error) {
	prepared, err := s.prepareOrder(ctx, userID, req)
	if err != nil {
		return resp, err
	}

	now := time.Now()
	order := domain.Order{
		UserID:      prepared.userID,
		Items:       prepared.items,
		Amount:      prepared.amount,
		Address:     prepared.address.ID,
		Status:      domain.OrderStatusPlaced,
		PaymentType: domain.PaymentTypeCOD,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	order.ID, err = s.orderRepo.AddOrder(ctx, order)
	if err != nil {
		return resp, err
	}

	publishEvent(ctx, s.publisher, order.ID.Hex(), dto.EventOrderPlaced, dto.OrderEvent{
		OrderID:     order.ID.Hex(),
		UserID:      order.UserID.Hex(),
		Amount:      order.Amount,
		PaymentType: order.PaymentType,
	})

	population := orderPopulation{
		products:  prepared.products,
		addresses: map[primitive.ObjectID]domain.Address{prepared.address.ID: prepared.address},
	}

	return population.toOrderResponse(order, nil), nil
}

func (s *OrderServiceImpl) PlaceOnlineOrder(ctx context.Context, userID string, req dto.PlaceOrderRequest) (resp dto.OnlineOrderResponse, err error) {
	if s.gateway == nil {
		return resp, errs.ErrServiceUnavailable
	}

	prepared, err := s.prepareOrder(ctx, userID, req)
	if err != nil {
		return resp, err
	}

	user, err := s.userRepo.GetUserByID(ctx, prepared.userID)
	if err != nil {
		return resp, err
	}

	trxNumber, err := uuid.NewV7()
	if err != nil {
		return resp, fmt.Errorf("error generating transaction number: %w", err)
	}

	now := time.Now()
	expiredAt := now.Add(s.config.OrderConfig.PaymentTimeout)
	order := domain.Order{
		UserID:            prepared.userID,
		Items:             prepared.items,
		Amount:            prepared.amount,
		Address:           prepared.address.ID,
		Status:            domain.OrderStatusAwaitingPayment,
		PaymentType:       domain.PaymentTypeOnline,
		TransactionNumber: trxNumber.String(),
		PaymentExpiredAt:  &expiredAt,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	order.ID, err = s.orderRepo.AddOrder(ctx, order)
	if err != nil {
		return resp, err
	}

	charge, err := s.gateway.ChargeQris(ctx, paymentgateway.ChargeRequest{
		OrderID:       order.TransactionNumber,
		GrossAmount:   int64(order.Amount),
		CustomerName:  user.Name,
		CustomerEmail: user.Email,
		Items: []paymentgateway.ChargeItem{{
			ID:       order.ID.Hex(),
			Name:     "Green Nest order",
			Price:    int64(order.Amount),
			Quantity: 1,
		}},
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "PlaceOnlineOrder").Str("transaction_number", order.TransactionNumber).Msg("")
		if statusErr := s.orderRepo.UpdateOrderStatus(ctx, order.ID, domain.OrderStatusPaymentFailed); statusErr != nil {
			log.Ctx(ctx).Error().Err(statusErr).Str("component", "PlaceOnlineOrder").Msg("")
		}
		return resp, err
	}

	population := orderPopulation{
		products:  prepared.products,
		addresses: map[primitive.ObjectID]domain.Address{prepared.address.ID: prepared.address},
	}

	resp.Order = population.toOrderResponse(order, nil)
	resp.QRString = charge.QRString
	resp.ExpiredAt = order.PaymentExpiredAt
	for _, action := range charge.Actions {
		resp.Actions = append(resp.Actions, dto.PaymentAction{
			Name:   action.Name,
			Method: action.Method,
			URL:    action.URL,
		})
	}

	return resp, nil
}

func (s *OrderServiceImpl) HandlePaymentNotification(ctx context.Context, req dto.PaymentNotification) (err error) {
	if !s.validSignature(req) {
		return errs.ErrInvalidSignature
	}

	order, err := s.orderRepo.GetOrderByTransactionNumber(ctx, req.OrderID)
	if err != nil {
		return err
	}

	switch req.TransactionStatus {
	case "capture", "settlement":
		if order.IsPaid {
			return nil
		}
		if order.Status == domain.OrderStatusPaymentExpired {
			return errs.ErrPaymentExpired
		}

		if err = s.orderRepo.MarkOrderPaid(ctx, order.ID, time.Now()); err != nil {
			if errors.Is(err, errs.ErrConflict) {
				return nil
			}
			return err
		}

		publishEvent(ctx, s.publisher, order.ID.Hex(), dto.EventOrderPaid, dto.OrderEvent{
			OrderID:           order.ID.Hex(),
			UserID:            order.UserID.Hex(),
			Amount:            order.Amount,
			PaymentType:       order.PaymentType,
			TransactionNumber: order.TransactionNumber,
		})
	case "expire":
		if !order.IsPaid {
			return s.orderRepo.UpdateOrderStatus(ctx, order.ID, domain.OrderStatusPaymentExpired)
		}
	case "deny", "cancel", "failure":
		if !order.IsPaid {
			return s.orderRepo.UpdateOrderStatus(ctx, order.ID, domain.OrderStatusPaymentFailed)
		}
	default:
		log.Ctx(ctx).Info().Str("component", "HandlePaymentNotification").Str("transaction_status", req.TransactionStatus).Msg("ignored")
	}

	return nil
}

// validSignature checks SHA512(order_id + status_code + gross_amount + server key).
func (s *OrderServiceImpl) validSignature(req dto.PaymentNotification) bool {
	serverKey := s.config.MidtransConfig.ServerKey
	if serverKey == "" {
		return false
	}

	sum := sha512.Sum512([]byte(req.OrderID + req.StatusCode + req.GrossAmount + serverKey))
	expected := hex.EncodeToString(sum[:])

	return subtle.ConstantTimeCompare([]byte(expected), []byte(req.SignatureKey)) == 1
}

func (s *OrderServiceImpl) GetUserOrders(ctx context.Context, userID string) (resp []dto.OrderResponse, err error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.GetVisibleOrdersByUserID(ctx, id)
	if err != nil {
		return nil, err
	}

	population, err := s.populate(ctx, orders, false)
	if err != nil {
		return nil, err
	}

	resp = make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, population.toOrderResponse(order, nil))
	}

	return resp, nil
}

// GetUserSales lists the orders that contain products the user originally
// submitted. Only the attributed line items are returned for each order.
func (s *OrderServiceImpl) GetUserSales(ctx context.Context, userID string) (resp []dto.OrderResponse, err error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	submitted, err := s.productRepo.GetProductsBySubmitter(ctx, id)
	if err != nil {
		return nil, err
	}

	resp = []dto.OrderResponse{}
	if len(submitted) == 0 {
		return resp, nil
	}

	productIDs := make([]primitive.ObjectID, 0, len(submitted))
	for _, product := range submitted {
		productIDs = append(productIDs, product.ID)
	}

	orders, err := s.orderRepo.GetVisibleOrdersByProductIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	population, err := s.populate(ctx, orders, false)
	if err != nil {
		return nil, err
	}

	attributed := func(item domain.OrderItem) bool {
		product, ok := population.products[item.ProductID]
		return ok && product.SubmittedBy(id)
	}

	for _, order := range orders {
		orderResp := population.toOrderResponse(order, attributed)
		if len(orderResp.Items) == 0 {
			continue
		}
		resp = append(resp, orderResp)
	}

	return resp, nil
}

func (s *OrderServiceImpl) GetAllOrders(ctx context.Context) (resp []dto.OrderResponse, err error) {
	orders, err := s.orderRepo.GetVisibleOrders(ctx)
	if err != nil {
		return nil, err
	}

	population, err := s.populate(ctx, orders, false)
	if err != nil {
		return nil, err
	}

	resp = make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, population.toOrderResponse(order, nil))
	}

	return resp, nil
}

// GetEnhancedOrders annotates every order with the line items that came from
// user submitted products, together with their submitters.
func (s *OrderServiceImpl) GetEnhancedOrders(ctx context.Context) (resp []dto.EnhancedOrderResponse, err error) {
	orders, err := s.orderRepo.GetVisibleOrders(ctx)
	if err != nil {
		return nil, err
	}

	population, err := s.populate(ctx, orders, true)
	if err != nil {
		return nil, err
	}

	resp = make([]dto.EnhancedOrderResponse, 0, len(orders))
	for _, order := range orders {
		enhanced := dto.EnhancedOrderResponse{
			OrderResponse:      population.toOrderResponse(order, nil),
			UserSubmittedItems: []dto.OrderItemResponse{},
		}

		for _, item := range enhanced.Items {
			if item.Product != nil && item.Product.OriginalSubmitterID != "" {
				enhanced.UserSubmittedItems = append(enhanced.UserSubmittedItems, item)
			}
		}
		enhanced.HasUserSubmittedProducts = len(enhanced.UserSubmittedItems) > 0

		resp = append(resp, enhanced)
	}

	return resp, nil
}

func (s *OrderServiceImpl) ExpireUnpaidOrders() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	expired, err := s.orderRepo.ExpireUnpaidOrders(ctx, time.Now())
	if err != nil {
		log.Error().Err(err).Str("component", "ExpireUnpaidOrders").Msg("")
		return
	}

	if expired > 0 {
		log.Info().Str("component", "ExpireUnpaidOrders").Int64("expired", expired).Msg("unpaid orders expired")
	}
}

// populate loads every document referenced by orders in one query per
// collection.
func (s *OrderServiceImpl) populate(ctx context.Context, orders []domain.Order, withSubmitters bool) (population orderPopulation, err error) {
	var productIDs, addressIDs, userIDs []primitive.ObjectID
	for _, order := range orders {
		addressIDs = append(addressIDs, order.Address)
		userIDs = append(userIDs, order.UserID)
		for _, item := range order.Items {
			productIDs = append(productIDs, item.ProductID)
		}
	}

	products, err := s.productRepo.GetProductsByIDs(ctx, uniqueObjectIDs(productIDs))
	if err != nil {
		return population, err
	}

	population.products = make(map[primitive.ObjectID]domain.Product, len(products))
	for _, product := range products {
		population.products[product.ID] = product
		if withSubmitters && product.OriginalSubmitterID != nil {
			userIDs = append(userIDs, *product.OriginalSubmitterID)
		}
	}

	addresses, err := s.addressRepo.GetAddressesByIDs(ctx, uniqueObjectIDs(addressIDs))
	if err != nil {
		return population, err
	}

	population.addresses = make(map[primitive.ObjectID]domain.Address, len(addresses))
	for _, address := range addresses {
		population.addresses[address.ID] = address
	}

	population.users, err = collectUsers(ctx, s.userRepo, userIDs)
	if err != nil {
		return population, err
	}

	return population, nil
}

type orderPopulation struct {
	products  map[primitive.ObjectID]domain.Product
	addresses map[primitive.ObjectID]domain.Address
	users     map[primitive.ObjectID]domain.User
}

// toOrderResponse renders order with its references resolved. When keep is
// set only the items it accepts are rendered.
func (p orderPopulation) toOrderResponse(order domain.Order, keep func(domain.OrderItem) bool) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:                order.ID.Hex(),
		Items:             []dto.OrderItemResponse{},
		Amount:            order.Amount,
		Status:            order.Status,
		PaymentType:       order.PaymentType,
		IsPaid:            order.IsPaid,
		TransactionNumber: order.TransactionNumber,
		CreatedAt:         order.CreatedAt,
		UpdatedAt:         order.UpdatedAt,
	}

	if user, ok := p.users[order.UserID]; ok {
		resp.User = toUserSummary(user, true)
	}

	if address, ok := p.addresses[order.Address]; ok {
		addressResp := toAddressResponse(address)
		resp.Address = &addressResp
	}

	for _, item := range order.Items {
		if keep != nil && !keep(item) {
			continue
		}

		itemResp := dto.OrderItemResponse{Quantity: item.Quantity}
		if product, ok := p.products[item.ProductID]; ok {
			productResp := toProductResponse(product)
			itemResp.Product = &productResp

			if product.OriginalSubmitterID != nil {
				if submitter, ok := p.users[*product.OriginalSubmitterID]; ok {
					itemResp.Submitter = toUserSummary(submitter, true)
				}
			}
		}

		resp.Items = append(resp.Items, itemResp)
	}

	return resp
}
