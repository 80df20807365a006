package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Humayun167/green-nest/internal/domain"
	pkgdto "github.com/Humayun167/green-nest/pkg/dto"
	"github.com/Humayun167/green-nest/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const usersCollection = "users"

type MongoDBUserRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBUserRepository(db *mongo.Database) UserRepository {
	return &MongoDBUserRepositoryImpl{db: db}
}

func (r *MongoDBUserRepositoryImpl) AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error) {
	if data.CartItems == nil {
		data.CartItems = map[string]int{}
	}

	result, err := r.db.Collection(usersCollection).InsertOne(ctx, data)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return id, errs.ErrUserAlreadyExists
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "AddUser").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoDBUserRepositoryImpl) GetUserByID(ctx context.Context, id primitive.ObjectID) (user domain.User, err error) {
	return r.findOne(ctx, "GetUserByID", bson.D{{Key: "_id", Value: id}})
}

func (r *MongoDBUserRepositoryImpl) GetUserByEmail(ctx context.Context, email string) (user domain.User, err error) {
	return r.findOne(ctx, "GetUserByEmail", bson.D{{Key: "email", Value: email}})
}

func (r *MongoDBUserRepositoryImpl) findOne(ctx context.Context, component string, filter bson.D) (user domain.User, err error) {
	err = r.db.Collection(usersCollection).FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user, errs.ErrUserNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return user, err
	}

	return user, nil
}

func (r *MongoDBUserRepositoryImpl) GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) (users []domain.User, err error) {
	if len(ids) == 0 {
		return nil, nil
	}

	filter := bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}}
	opts := options.Find().SetProjection(bson.D{{Key: "password", Value: 0}, {Key: "cart_items", Value: 0}})

	cursor, err := r.db.Collection(usersCollection).Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUsersByIDs").Msg("")
		return
	}

	if err = cursor.All(ctx, &users); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUsersByIDs").Msg("")
		return
	}

	return users, nil
}

func (r *MongoDBUserRepositoryImpl) GetUsers(ctx context.Context, filter pkgdto.Filter) (users []domain.User, totalCount int64, err error) {
	filter = filter.Normalize()

	query := bson.D{}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: escapeRegex(filter.Search), Options: "i"}
		query = bson.D{{Key: "$or", Value: bson.A{
			bson.D{{Key: "name", Value: pattern}},
			bson.D{{Key: "email", Value: pattern}},
		}}}
	}

	totalCount, err = r.db.Collection(usersCollection).CountDocuments(ctx, query)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUsers").Msg("")
		return
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(filter.Skip()).
		SetLimit(int64(filter.Limit)).
		SetProjection(bson.D{{Key: "password", Value: 0}})

	cursor, err := r.db.Collection(usersCollection).Find(ctx, query, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUsers").Msg("")
		return
	}

	if err = cursor.All(ctx, &users); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUsers").Msg("")
		return
	}

	return users, totalCount, nil
}

func (r *MongoDBUserRepositoryImpl) UpdateProfile(ctx context.Context, id primitive.ObjectID, name string, email string) (err error) {
	err = r.updateOne(ctx, "UpdateProfile", id, bson.D{
		{Key: "name", Value: name},
		{Key: "email", Value: email},
	})
	if mongo.IsDuplicateKeyError(err) {
		return errs.ErrEmailAlreadyUsed
	}

	return err
}

func (r *MongoDBUserRepositoryImpl) UpdatePassword(ctx context.Context, id primitive.ObjectID, hashedPassword string) (err error) {
	return r.updateOne(ctx, "UpdatePassword", id, bson.D{{Key: "password", Value: hashedPassword}})
}

func (r *MongoDBUserRepositoryImpl) UpdateProfileImage(ctx context.Context, id primitive.ObjectID, imageURL string) (err error) {
	return r.updateOne(ctx, "UpdateProfileImage", id, bson.D{{Key: "profile_image", Value: imageURL}})
}

func (r *MongoDBUserRepositoryImpl) UpdateCartItems(ctx context.Context, id primitive.ObjectID, cartItems map[string]int) (err error) {
	return r.updateOne(ctx, "UpdateCartItems", id, bson.D{{Key: "cart_items", Value: cartItems}})
}

func (r *MongoDBUserRepositoryImpl) UpdateLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) (err error) {
	return r.updateOne(ctx, "UpdateLastLogin", id, bson.D{{Key: "last_login", Value: at}})
}

func (r *MongoDBUserRepositoryImpl) updateOne(ctx context.Context, component string, id primitive.ObjectID, fields bson.D) error {
	fields = append(fields, bson.E{Key: "updated_at", Value: time.Now()})
	update := bson.D{{Key: "$set", Value: fields}}

	result, err := r.db.Collection(usersCollection).UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update)
	if err != nil {
		if !mongo.IsDuplicateKeyError(err) {
			log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("Failed to update user")
		}
		return err
	}

	if result.MatchedCount == 0 {
		return errs.ErrUserNotFound
	}

	return nil
}
