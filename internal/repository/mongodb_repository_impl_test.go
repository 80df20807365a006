package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/Humayun167/green-nest/internal/domain"
	"github.com/Humayun167/green-nest/internal/repository"
	"github.com/Humayun167/green-nest/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func updated(matched int32) bson.D {
	return mtest.CreateSuccessResponse(bson.E{Key: "n", Value: matched}, bson.E{Key: "nModified", Value: matched})
}

func found(mt *mtest.T, collection string, docs ...bson.D) bson.D {
	return mtest.CreateCursorResponse(0, mt.DB.Name()+"."+collection, mtest.FirstBatch, docs...)
}

// updateFilter returns the query document of the first update statement sent.
func updateFilter(mt *mtest.T) bson.Raw {
	evt := mt.GetStartedEvent()
	require.NotNil(mt, evt)
	require.Equal(mt, "update", evt.CommandName)
	return evt.Command.Lookup("updates", "0", "q").Document()
}

func TestUserProductRequestRepository_Transition(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	requestID := primitive.NewObjectID()
	productID := primitive.NewObjectID()

	mt.Run("Only pending requests are updated", func(mt *mtest.T) {
		repo := repository.CreateNewMongoDBUserProductRequestRepository(mt.DB)
		mt.AddMockResponses(updated(1))

		require.NoError(mt, repo.MarkApproved(context.Background(), requestID, productID, "", time.Now()))

		filter := updateFilter(mt)
		assert.Equal(mt, requestID, filter.Lookup("_id").ObjectID())
		assert.Equal(mt, string(domain.RequestStatusPending), filter.Lookup("status").StringValue())
	})

	mt.Run("Decided request is not pending", func(mt *mtest.T) {
		repo := repository.CreateNewMongoDBUserProductRequestRepository(mt.DB)
		mt.AddMockResponses(
			updated(0),
			found(mt, "user_product_requests", bson.D{
				{Key: "_id", Value: requestID},
				{Key: "status", Value: string(domain.RequestStatusApproved)},
			}),
		)

		err := repo.MarkRejected(context.Background(), requestID, "Duplicate", "", time.Now())
		assert.ErrorIs(mt, err, errs.ErrRequestNotPending)
	})

	mt.Run("Missing request is not found", func(mt *mtest.T) {
		repo := repository.CreateNewMongoDBUserProductRequestRepository(mt.DB)
		mt.AddMockResponses(updated(0), found(mt, "user_product_requests"))

		err := repo.MarkApproved(context.Background(), requestID, productID, "", time.Now())
		assert.ErrorIs(mt, err, errs.ErrRequestNotFound)
	})
}

func TestPostRepository_AddLike(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	postID := primitive.NewObjectID()
	userID := primitive.NewObjectID()
	like := domain.Like{UserID: userID, CreatedAt: time.Now()}

	mt.Run("Push is guarded by the liking user", func(mt *mtest.T) {
		repo := repository.CreateNewMongoDBPostRepository(mt.DB)
		mt.AddMockResponses(updated(1))

		require.NoError(mt, repo.AddLike(context.Background(), postID, like))

		filter := updateFilter(mt)
		assert.Equal(mt, postID, filter.Lookup("_id").ObjectID())
		assert.Equal(mt, userID, filter.Lookup("likes.user_id", "$ne").ObjectID())
	})

	mt.Run("Already liked is not an error", func(mt *mtest.T) {
		repo := repository.CreateNewMongoDBPostRepository(mt.DB)
		mt.AddMockResponses(updated(0), found(mt, "posts", bson.D{{Key: "_id", Value: postID}}))

		assert.NoError(mt, repo.AddLike(context.Background(), postID, like))
	})

	mt.Run("Missing post", func(mt *mtest.T) {
		repo := repository.CreateNewMongoDBPostRepository(mt.DB)
		mt.AddMockResponses(updated(0), found(mt, "posts"))

		assert.ErrorIs(mt, repo.AddLike(context.Background(), postID, like), errs.ErrPostNotFound)
	})
}

func TestOrderRepository_VisibleOrders(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	userID := primitive.NewObjectID()

	mt.Run("Only COD or paid orders are listed", func(mt *mtest.T) {
		repo := repository.CreateNewMongoDBOrderRepository(mt.DB)
		mt.AddMockResponses(found(mt, "orders", bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "user_id", Value: userID},
			{Key: "payment_type", Value: domain.PaymentTypeCOD},
		}))

		orders, err := repo.GetVisibleOrdersByUserID(context.Background(), userID)
		require.NoError(mt, err)
		require.Len(mt, orders, 1)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		require.Equal(mt, "find", evt.CommandName)
		filter := evt.Command.Lookup("filter").Document()
		assert.Equal(mt, userID, filter.Lookup("user_id").ObjectID())
		assert.Equal(mt, domain.PaymentTypeCOD, filter.Lookup("$or", "0", "payment_type").StringValue())
		assert.True(mt, filter.Lookup("$or", "1", "is_paid").Boolean())
	})
}

func TestOrderRepository_MarkOrderPaid(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	orderID := primitive.NewObjectID()

	mt.Run("Unpaid order is settled", func(mt *mtest.T) {
		repo := repository.CreateNewMongoDBOrderRepository(mt.DB)
		mt.AddMockResponses(updated(1))

		require.NoError(mt, repo.MarkOrderPaid(context.Background(), orderID, time.Now()))

		filter := updateFilter(mt)
		assert.False(mt, filter.Lookup("is_paid").Boolean())
		assert.Equal(mt, domain.OrderStatusPaymentExpired, filter.Lookup("status", "$ne").StringValue())
	})

	type TestCase struct {
		Name        string
		Stored      []bson.D
		ExpectedErr error
	}

	testCases := []TestCase{
		{Name: "Already paid", Stored: []bson.D{{{Key: "_id", Value: orderID}, {Key: "is_paid", Value: true}}}, ExpectedErr: errs.ErrConflict},
		{Name: "Expired", Stored: []bson.D{{{Key: "_id", Value: orderID}, {Key: "status", Value: domain.OrderStatusPaymentExpired}}}, ExpectedErr: errs.ErrPaymentExpired},
		{Name: "Missing", ExpectedErr: errs.ErrNotFound},
	}

	for _, tc := range testCases {
		mt.Run(tc.Name, func(mt *mtest.T) {
			repo := repository.CreateNewMongoDBOrderRepository(mt.DB)
			mt.AddMockResponses(updated(0), found(mt, "orders", tc.Stored...))

			assert.ErrorIs(mt, repo.MarkOrderPaid(context.Background(), orderID, time.Now()), tc.ExpectedErr)
		})
	}
}
