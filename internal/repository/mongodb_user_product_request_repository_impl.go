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

const userProductRequestsCollection = "user_product_requests"

type MongoDBUserProductRequestRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBUserProductRequestRepository(db *mongo.Database) UserProductRequestRepository {
	return &MongoDBUserProductRequestRepositoryImpl{db: db}
}

func (r *MongoDBUserProductRequestRepositoryImpl) AddRequest(ctx context.Context, data domain.UserProductRequest) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection(userProductRequestsCollection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddRequest").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoDBUserProductRequestRepositoryImpl) GetRequestByID(ctx context.Context, id primitive.ObjectID) (request domain.UserProductRequest, err error) {
	err = r.db.Collection(userProductRequestsCollection).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&request)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return request, errs.ErrRequestNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetRequestByID").Msg("")
		return request, err
	}

	return request, nil
}

func (r *MongoDBUserProductRequestRepositoryImpl) GetRequestsByUserID(ctx context.Context, userID primitive.ObjectID) (requests []domain.UserProductRequest, err error) {
	return r.find(ctx, "GetRequestsByUserID", bson.D{{Key: "user_id", Value: userID}})
}

func (r *MongoDBUserProductRequestRepositoryImpl) GetRequests(ctx context.Context) (requests []domain.UserProductRequest, err error) {
	return r.find(ctx, "GetRequests", bson.D{})
}

func (r *MongoDBUserProductRequestRepositoryImpl) find(ctx context.Context, component string, filter bson.D) (requests []domain.UserProductRequest, err error) {
	cursor, err := r.db.Collection(userProductRequestsCollection).Find(ctx, filter, options.Find().SetSort(newestFirst()))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return
	}

	if err = cursor.All(ctx, &requests); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return
	}

	return requests, nil
}

func (r *MongoDBUserProductRequestRepositoryImpl) MarkApproved(ctx context.Context, id primitive.ObjectID, productID primitive.ObjectID, sellerNotes string, at time.Time) (err error) {
	return r.transition(ctx, "MarkApproved", id, bson.D{
		{Key: "status", Value: domain.RequestStatusApproved},
		{Key: "product_id", Value: productID},
		{Key: "seller_notes", Value: sellerNotes},
		{Key: "updated_at", Value: at},
	})
}

func (r *MongoDBUserProductRequestRepositoryImpl) MarkRejected(ctx context.Context, id primitive.ObjectID, reason string, sellerNotes string, at time.Time) (err error) {
	return r.transition(ctx, "MarkRejected", id, bson.D{
		{Key: "status", Value: domain.RequestStatusRejected},
		{Key: "rejection_reason", Value: reason},
		{Key: "seller_notes", Value: sellerNotes},
		{Key: "updated_at", Value: at},
	})
}

// transition applies fields only while the request is still pending, so a
// decided request is never overwritten.
func (r *MongoDBUserProductRequestRepositoryImpl) transition(ctx context.Context, component string, id primitive.ObjectID, fields bson.D) error {
	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "status", Value: domain.RequestStatusPending},
	}
	update := bson.D{{Key: "$set", Value: fields}}

	result, err := r.db.Collection(userProductRequestsCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return err
	}

	if result.MatchedCount == 0 {
		if _, err := r.GetRequestByID(ctx, id); err != nil {
			return err
		}
		return errs.ErrRequestNotPending
	}

	return nil
}
