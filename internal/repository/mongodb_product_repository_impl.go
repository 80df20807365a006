package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Humayun167/green-nest/internal/domain"
	"github.com/Humayun167/green-nest/internal/dto"
	"github.com/Humayun167/green-nest/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	productsCollection = "products"

	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

type MongoDBProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBProductRepository(db *mongo.Database) ProductRepository {
	return &MongoDBProductRepositoryImpl{db: db}
}

func (r *MongoDBProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection(productsCollection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoDBProductRepositoryImpl) GetProducts(ctx context.Context) (products []domain.Product, err error) {
	return r.find(ctx, "GetProducts", bson.D{}, options.Find().SetSort(newestFirst()))
}

func (r *MongoDBProductRepositoryImpl) GetProductByID(ctx context.Context, id primitive.ObjectID) (product domain.Product, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection(productsCollection).FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return product, errs.ErrProductNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		return product, err
	}

	return product, nil
}

func (r *MongoDBProductRepositoryImpl) GetProductsByIDs(ctx context.Context, ids []primitive.ObjectID) (products []domain.Product, err error) {
	if len(ids) == 0 {
		return nil, nil
	}

	filter := bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}}
	return r.find(ctx, "GetProductsByIDs", filter)
}

func (r *MongoDBProductRepositoryImpl) GetProductsBySubmitter(ctx context.Context, userID primitive.ObjectID) (products []domain.Product, err error) {
	filter := bson.D{{Key: "original_submitter_id", Value: userID}}
	return r.find(ctx, "GetProductsBySubmitter", filter)
}

// SearchProducts matches in-stock products whose name, description lines or
// category contain query.Q, optionally restricted to query.Category.
func (r *MongoDBProductRepositoryImpl) SearchProducts(ctx context.Context, query dto.ProductSearchQuery) (products []domain.Product, err error) {
	filter := bson.D{{Key: "in_stock", Value: true}}

	if query.Q != "" {
		pattern := primitive.Regex{Pattern: escapeRegex(query.Q), Options: "i"}
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "name", Value: pattern}},
			bson.D{{Key: "description", Value: pattern}},
			bson.D{{Key: "category", Value: pattern}},
		}})
	}

	if query.Category != "" {
		filter = append(filter, bson.E{Key: "category", Value: primitive.Regex{Pattern: "^" + escapeRegex(query.Category) + "$", Options: "i"}})
	}

	opts := options.Find().
		SetSort(newestFirst()).
		SetLimit(int64(NormalizeSearchLimit(query.Limit)))

	return r.find(ctx, "SearchProducts", filter, opts)
}

func (r *MongoDBProductRepositoryImpl) UpdateStock(ctx context.Context, id primitive.ObjectID, inStock bool) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "in_stock", Value: inStock},
		{Key: "updated_at", Value: time.Now()},
	}}}

	result, err := r.db.Collection(productsCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateStock").Msg("Failed to update product")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrProductNotFound
	}

	return nil
}

func (r *MongoDBProductRepositoryImpl) find(ctx context.Context, component string, filter bson.D, opts ...*options.FindOptions) (products []domain.Product, err error) {
	cursor, err := r.db.Collection(productsCollection).Find(ctx, filter, opts...)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return
	}

	if err = cursor.All(ctx, &products); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return
	}

	return products, nil
}

// InvalidateProducts is a no-op: the document store holds no cached listing.
func (r *MongoDBProductRepositoryImpl) InvalidateProducts(ctx context.Context) (err error) {
	return nil
}

func NormalizeSearchLimit(limit int) int {
	if limit < 1 {
		return defaultSearchLimit
	}
	if limit > maxSearchLimit {
		return maxSearchLimit
	}
	return limit
}
