package repository

import (
	"context"
	"errors"

	"github.com/Humayun167/green-nest/internal/domain"
	"github.com/Humayun167/green-nest/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const addressesCollection = "addresses"

type MongoDBAddressRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBAddressRepository(db *mongo.Database) AddressRepository {
	return &MongoDBAddressRepositoryImpl{db: db}
}

func (r *MongoDBAddressRepositoryImpl) AddAddress(ctx context.Context, data domain.Address) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection(addressesCollection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddAddress").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoDBAddressRepositoryImpl) GetAddressByID(ctx context.Context, id primitive.ObjectID) (address domain.Address, err error) {
	err = r.db.Collection(addressesCollection).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&address)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return address, errs.ErrAddressNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetAddressByID").Msg("")
		return address, err
	}

	return address, nil
}

func (r *MongoDBAddressRepositoryImpl) GetAddressesByIDs(ctx context.Context, ids []primitive.ObjectID) (addresses []domain.Address, err error) {
	if len(ids) == 0 {
		return nil, nil
	}

	return r.find(ctx, "GetAddressesByIDs", bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}})
}

func (r *MongoDBAddressRepositoryImpl) GetAddressesByUserID(ctx context.Context, userID primitive.ObjectID) (addresses []domain.Address, err error) {
	return r.find(ctx, "GetAddressesByUserID", bson.D{{Key: "user_id", Value: userID}})
}

func (r *MongoDBAddressRepositoryImpl) UpdateAddress(ctx context.Context, data domain.Address) (address domain.Address, err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "first_name", Value: data.FirstName},
		{Key: "last_name", Value: data.LastName},
		{Key: "email", Value: data.Email},
		{Key: "street", Value: data.Street},
		{Key: "city", Value: data.City},
		{Key: "state", Value: data.State},
		{Key: "zipcode", Value: data.Zipcode},
		{Key: "country", Value: data.Country},
		{Key: "phone", Value: data.Phone},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	err = r.db.Collection(addressesCollection).FindOneAndUpdate(ctx, filter, update, opts).Decode(&address)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return address, errs.ErrAddressNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateAddress").Msg("")
		return address, err
	}

	return address, nil
}

func (r *MongoDBAddressRepositoryImpl) DeleteAddress(ctx context.Context, id primitive.ObjectID) (err error) {
	result, err := r.db.Collection(addressesCollection).DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteAddress").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrAddressNotFound
	}

	return nil
}

func (r *MongoDBAddressRepositoryImpl) find(ctx context.Context, component string, filter bson.D) (addresses []domain.Address, err error) {
	cursor, err := r.db.Collection(addressesCollection).Find(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return
	}

	if err = cursor.All(ctx, &addresses); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return
	}

	return addresses, nil
}
