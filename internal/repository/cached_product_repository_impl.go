package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Humayun167/green-nest/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const productListCacheKey = "green-nest:products:list"

// CachedProductRepositoryImpl keeps the full catalog listing in redis and
// delegates everything else to the wrapped repository. Writers call
// InvalidateProducts once their change is committed. Order pricing never
// reads through the cache.
type CachedProductRepositoryImpl struct {
	ProductRepository
	client *redis.Client
	ttl    time.Duration
}

func CreateNewCachedProductRepository(inner ProductRepository, client *redis.Client, ttl time.Duration) ProductRepository {
	return &CachedProductRepositoryImpl{
		ProductRepository: inner,
		client:            client,
		ttl:               ttl,
	}
}

func (r *CachedProductRepositoryImpl) GetProducts(ctx context.Context) (products []domain.Product, err error) {
	cached, err := r.client.Get(ctx, productListCacheKey).Bytes()
	switch {
	case err == nil:
		if err = json.Unmarshal(cached, &products); err == nil {
			return products, nil
		}
		log.Ctx(ctx).Warn().Err(err).Str("component", "GetProducts").Msg("discarding unreadable cache entry")
	case !errors.Is(err, redis.Nil):
		log.Ctx(ctx).Warn().Err(err).Str("component", "GetProducts").Msg("cache read failed")
	}

	products, err = r.ProductRepository.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(products)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "GetProducts").Msg("")
		return products, nil
	}

	if err := r.client.Set(ctx, productListCacheKey, payload, r.ttl).Err(); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "GetProducts").Msg("cache write failed")
	}

	return products, nil
}

func (r *CachedProductRepositoryImpl) InvalidateProducts(ctx context.Context) (err error) {
	if err = r.client.Del(ctx, productListCacheKey).Err(); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "InvalidateProducts").Msg("cache invalidation failed")
		return err
	}

	return nil
}
