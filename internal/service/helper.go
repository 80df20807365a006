package service

import (
	"context"
	"strings"

	"github.com/Humayun167/green-nest/internal/domain"
	"github.com/Humayun167/green-nest/internal/dto"
	"github.com/Humayun167/green-nest/internal/repository"
	"github.com/Humayun167/green-nest/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func parseObjectID(hex string, errInvalid error) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(hex))
	if err != nil {
		return primitive.NilObjectID, errInvalid
	}
	return id, nil
}

func parseUserID(hex string) (primitive.ObjectID, error) {
	return parseObjectID(hex, errs.ErrNotLoggedIn)
}

// publishEvent is best effort: the write already succeeded, so a broker
// failure is logged and swallowed.
func publishEvent(ctx context.Context, publisher EventPublisher, key string, eventType string, data interface{}) {
	if publisher == nil {
		return
	}

	err := publisher.Publish(ctx, key, dto.KafkaMessage{
		EventType: eventType,
		Data:      data,
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Str("event_type", eventType).Msg("")
	}
}

// indexProduct keeps the search index in step with the catalog. The index is
// optional and a failure never fails the write.
func indexProduct(ctx context.Context, searchRepo repository.ProductSearchRepository, product domain.Product) {
	if searchRepo == nil {
		return
	}

	if err := searchRepo.IndexProduct(ctx, toProductResponse(product)); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "indexProduct").Str("product_id", product.ID.Hex()).Msg("")
	}
}

func collectUsers(ctx context.Context, userRepo repository.UserRepository, ids []primitive.ObjectID) (map[primitive.ObjectID]domain.User, error) {
	users, err := userRepo.GetUsersByIDs(ctx, uniqueObjectIDs(ids))
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]domain.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}
	return byID, nil
}

func uniqueObjectIDs(ids []primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	unique := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if id.IsZero() {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
