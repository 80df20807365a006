package repository

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoDBTransactionManagerImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBTransactionManager(db *mongo.Database) TransactionManager {
	return &MongoDBTransactionManagerImpl{db: db}
}

// HandleTrx needs a replica set or sharded cluster; standalone servers reject
// transactions.
func (m *MongoDBTransactionManagerImpl) HandleTrx(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := m.db.Client().StartSession()
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "HandleTrx").Msg("")
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		err := fn(sessCtx)
		if err != nil {
			log.Ctx(sessCtx).Error().Err(err).Str("component", "HandleTrx").Msg("")
		}
		return nil, err
	})

	return err
}
