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

const postsCollection = "posts"

type MongoDBPostRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBPostRepository(db *mongo.Database) PostRepository {
	return &MongoDBPostRepositoryImpl{db: db}
}

func (r *MongoDBPostRepositoryImpl) AddPost(ctx context.Context, data domain.Post) (id primitive.ObjectID, err error) {
	if data.Likes == nil {
		data.Likes = []domain.Like{}
	}
	if data.Comments == nil {
		data.Comments = []domain.Comment{}
	}

	result, err := r.db.Collection(postsCollection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddPost").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoDBPostRepositoryImpl) GetPosts(ctx context.Context, filter pkgdto.Filter) (posts []domain.Post, totalCount int64, err error) {
	filter = filter.Normalize()

	totalCount, err = r.db.Collection(postsCollection).CountDocuments(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetPosts").Msg("")
		return
	}

	opts := options.Find().
		SetSort(newestFirst()).
		SetSkip(filter.Skip()).
		SetLimit(int64(filter.Limit))

	posts, err = r.find(ctx, "GetPosts", bson.D{}, opts)
	if err != nil {
		return
	}

	return posts, totalCount, nil
}

func (r *MongoDBPostRepositoryImpl) GetPostsByUserID(ctx context.Context, userID primitive.ObjectID) (posts []domain.Post, err error) {
	return r.find(ctx, "GetPostsByUserID", bson.D{{Key: "user_id", Value: userID}}, options.Find().SetSort(newestFirst()))
}

func (r *MongoDBPostRepositoryImpl) GetPostByID(ctx context.Context, id primitive.ObjectID) (post domain.Post, err error) {
	err = r.db.Collection(postsCollection).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return post, errs.ErrPostNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetPostByID").Msg("")
		return post, err
	}

	return post, nil
}

func (r *MongoDBPostRepositoryImpl) UpdatePostContent(ctx context.Context, id primitive.ObjectID, content string, at time.Time) (err error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "content", Value: content},
		{Key: "updated_at", Value: at},
	}}}

	return r.updateOne(ctx, "UpdatePostContent", bson.D{{Key: "_id", Value: id}}, update)
}

func (r *MongoDBPostRepositoryImpl) DeletePost(ctx context.Context, id primitive.ObjectID) (err error) {
	result, err := r.db.Collection(postsCollection).DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeletePost").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrPostNotFound
	}

	return nil
}

// AddLike pushes like unless the same user already liked the post.
func (r *MongoDBPostRepositoryImpl) AddLike(ctx context.Context, postID primitive.ObjectID, like domain.Like) (err error) {
	filter := bson.D{
		{Key: "_id", Value: postID},
		{Key: "likes.user_id", Value: bson.D{{Key: "$ne", Value: like.UserID}}},
	}
	update := bson.D{{Key: "$push", Value: bson.D{{Key: "likes", Value: like}}}}

	result, err := r.db.Collection(postsCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddLike").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		if _, err := r.GetPostByID(ctx, postID); err != nil {
			return err
		}
	}

	return nil
}

func (r *MongoDBPostRepositoryImpl) RemoveLike(ctx context.Context, postID primitive.ObjectID, userID primitive.ObjectID) (err error) {
	update := bson.D{{Key: "$pull", Value: bson.D{{Key: "likes", Value: bson.D{{Key: "user_id", Value: userID}}}}}}
	return r.updateOne(ctx, "RemoveLike", bson.D{{Key: "_id", Value: postID}}, update)
}

func (r *MongoDBPostRepositoryImpl) AddComment(ctx context.Context, postID primitive.ObjectID, comment domain.Comment) (err error) {
	update := bson.D{{Key: "$push", Value: bson.D{{Key: "comments", Value: comment}}}}
	return r.updateOne(ctx, "AddComment", bson.D{{Key: "_id", Value: postID}}, update)
}

func (r *MongoDBPostRepositoryImpl) RemoveComment(ctx context.Context, postID primitive.ObjectID, commentID primitive.ObjectID) (err error) {
	update := bson.D{{Key: "$pull", Value: bson.D{{Key: "comments", Value: bson.D{{Key: "_id", Value: commentID}}}}}}
	return r.updateOne(ctx, "RemoveComment", bson.D{{Key: "_id", Value: postID}}, update)
}

func (r *MongoDBPostRepositoryImpl) updateOne(ctx context.Context, component string, filter bson.D, update bson.D) error {
	result, err := r.db.Collection(postsCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("Failed to update post")
		return err
	}

	if result.MatchedCount == 0 {
		return errs.ErrPostNotFound
	}

	return nil
}

func (r *MongoDBPostRepositoryImpl) find(ctx context.Context, component string, filter bson.D, opts ...*options.FindOptions) (posts []domain.Post, err error) {
	cursor, err := r.db.Collection(postsCollection).Find(ctx, filter, opts...)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return
	}

	if err = cursor.All(ctx, &posts); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return
	}

	return posts, nil
}
