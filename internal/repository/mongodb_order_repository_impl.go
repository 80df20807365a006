package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Humayun167/green-nest/internal/domain"
	"github.com/Humayun167/green-nest/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ordersCollection = "orders"

type MongoDBOrderRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBOrderRepository(db *mongo.Database) OrderRepository {
	return &MongoDBOrderRepositoryImpl{db: db}
}

func (r *MongoDBOrderRepositoryImpl) AddOrder(ctx context.Context, data domain.Order) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection(ordersCollection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddOrder").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoDBOrderRepositoryImpl) GetVisibleOrders(ctx context.Context) (orders []domain.Order, err error) {
	return r.find(ctx, "GetVisibleOrders", visibleOrdersFilter())
}

func (r *MongoDBOrderRepositoryImpl) GetVisibleOrdersByUserID(ctx context.Context, userID primitive.ObjectID) (orders []domain.Order, err error) {
	filter := append(bson.D{{Key: "user_id", Value: userID}}, visibleOrdersFilter()...)
	return r.find(ctx, "GetVisibleOrdersByUserID", filter)
}

func (r *MongoDBOrderRepositoryImpl) GetVisibleOrdersByProductIDs(ctx context.Context, productIDs []primitive.ObjectID) (orders []domain.Order, err error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	filter := append(bson.D{{Key: "items.product", Value: bson.D{{Key: "$in", Value: productIDs}}}}, visibleOrdersFilter()...)
	return r.find(ctx, "GetVisibleOrdersByProductIDs", filter)
}

func (r *MongoDBOrderRepositoryImpl) CountVisibleOrdersByUserID(ctx context.Context, userID primitive.ObjectID) (count int64, err error) {
	filter := append(bson.D{{Key: "user_id", Value: userID}}, visibleOrdersFilter()...)

	count, err = r.db.Collection(ordersCollection).CountDocuments(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountVisibleOrdersByUserID").Msg("")
		return
	}

	return count, nil
}

func (r *MongoDBOrderRepositoryImpl) GetOrderByTransactionNumber(ctx context.Context, transactionNumber string) (order domain.Order, err error) {
	filter := bson.D{{Key: "transaction_number", Value: transactionNumber}}

	err = r.db.Collection(ordersCollection).FindOne(ctx, filter).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return order, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrderByTransactionNumber").Msg("")
		return order, err
	}

	return order, nil
}

// MarkOrderPaid settles an unpaid order whose payment window has not been
// expired. An order that is already paid yields ErrConflict.
func (r *MongoDBOrderRepositoryImpl) MarkOrderPaid(ctx context.Context, id primitive.ObjectID, at time.Time) (err error) {
	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "is_paid", Value: false},
		{Key: "status", Value: bson.D{{Key: "$ne", Value: domain.OrderStatusPaymentExpired}}},
	}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "is_paid", Value: true},
		{Key: "paid_at", Value: at},
		{Key: "status", Value: domain.OrderStatusPlaced},
		{Key: "updated_at", Value: at},
	}}}

	result, err := r.db.Collection(ordersCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "MarkOrderPaid").Msg("")
		return err
	}

	if result.MatchedCount > 0 {
		return nil
	}

	var order domain.Order
	err = r.db.Collection(ordersCollection).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&order)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return errs.ErrNotFound
	case err != nil:
		log.Ctx(ctx).Error().Err(err).Str("component", "MarkOrderPaid").Msg("")
		return err
	case order.IsPaid:
		return errs.ErrConflict
	default:
		return errs.ErrPaymentExpired
	}
}

func (r *MongoDBOrderRepositoryImpl) UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status string) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: status},
		{Key: "updated_at", Value: time.Now()},
	}}}

	return r.updateOne(ctx, "UpdateOrderStatus", filter, update)
}

// ExpireUnpaidOrders flags online orders whose payment window has passed.
func (r *MongoDBOrderRepositoryImpl) ExpireUnpaidOrders(ctx context.Context, now time.Time) (expired int64, err error) {
	filter := bson.D{
		{Key: "payment_type", Value: domain.PaymentTypeOnline},
		{Key: "is_paid", Value: false},
		{Key: "status", Value: domain.OrderStatusAwaitingPayment},
		{Key: "payment_expired_at", Value: bson.D{{Key: "$lt", Value: now}}},
	}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: domain.OrderStatusPaymentExpired},
		{Key: "updated_at", Value: now},
	}}}

	result, err := r.db.Collection(ordersCollection).UpdateMany(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ExpireUnpaidOrders").Msg("")
		return
	}

	return result.ModifiedCount, nil
}

func (r *MongoDBOrderRepositoryImpl) updateOne(ctx context.Context, component string, filter bson.D, update bson.D) error {
	result, err := r.db.Collection(ordersCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("Failed to update order")
		return err
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBOrderRepositoryImpl) find(ctx context.Context, component string, filter bson.D) (orders []domain.Order, err error) {
	cursor, err := r.db.Collection(ordersCollection).Find(ctx, filter, options.Find().SetSort(newestFirst()))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return
	}

	if err = cursor.All(ctx, &orders); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return
	}

	return orders, nil
}
