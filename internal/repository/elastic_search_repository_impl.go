package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Humayun167/green-nest/config"
	"github.com/Humayun167/green-nest/internal/dto"
	pkgdto "github.com/Humayun167/green-nest/pkg/dto"
	"github.com/Humayun167/green-nest/pkg/httpclient"
	"github.com/rs/zerolog/log"
)

type ElasticSearchProductRepositoryImpl struct {
	host  string
	index string
}

func CreateNewElasticSearchRepository(config *config.Config) ProductSearchRepository {
	return &ElasticSearchProductRepositoryImpl{
		host:  config.SearchConfig.ElasticsearchHost,
		index: config.SearchConfig.Index,
	}
}

func (r *ElasticSearchProductRepositoryImpl) IndexProduct(ctx context.Context, product dto.ProductResponse) (err error) {
	requestPayload, err := json.Marshal(product)
	if err != nil {
		return
	}

	statusCode, body, err := httpclient.SendRequest(ctx, httpclient.HttpRequest{
		Body:   requestPayload,
		URL:    fmt.Sprintf("%s/%s/_doc/%s", r.host, r.index, product.ID),
		Method: http.MethodPut,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "IndexProduct").Msg("")
		return
	}

	if statusCode != http.StatusOK && statusCode != http.StatusCreated {
		log.Ctx(ctx).Error().Int("status", statusCode).Str("component", "IndexProduct").Msg(string(body))
		return fmt.Errorf("indexing product %s: unexpected status %d", product.ID, statusCode)
	}

	return nil
}

// SearchProducts mirrors the catalog search: in-stock only, free text over
// name, description and category, optional exact category, newest first.
func (r *ElasticSearchProductRepositoryImpl) SearchProducts(ctx context.Context, query dto.ProductSearchQuery) (products []dto.ProductResponse, err error) {
	filters := []map[string]interface{}{
		{"term": map[string]interface{}{"inStock": true}},
	}
	if query.Category != "" {
		filters = append(filters, map[string]interface{}{
			"match": map[string]interface{}{"category": map[string]interface{}{"query": query.Category, "operator": "and"}},
		})
	}

	boolQuery := map[string]interface{}{"filter": filters}
	if query.Q != "" {
		boolQuery["must"] = map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query.Q,
				"fields": []string{"name^3", "description", "category"},
				"type":   "phrase_prefix",
			},
		}
	}

	param := map[string]interface{}{
		"size":  NormalizeSearchLimit(query.Limit),
		"query": map[string]interface{}{"bool": boolQuery},
		"sort":  []map[string]interface{}{{"createdAt": map[string]interface{}{"order": "desc"}}},
	}

	requestPayload, err := json.Marshal(param)
	if err != nil {
		return
	}

	statusCode, responseBody, err := httpclient.SendRequest(ctx, httpclient.HttpRequest{
		Body:   requestPayload,
		URL:    fmt.Sprintf("%s/%s/_search", r.host, r.index),
		Method: http.MethodPost,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SearchProducts").Msg("")
		return
	}

	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("searching products: unexpected status %d", statusCode)
	}

	var parsedResponseBody pkgdto.ElasticsearchResponse[dto.ProductResponse]
	if err = json.Unmarshal(responseBody, &parsedResponseBody); err != nil {
		return
	}

	products = make([]dto.ProductResponse, 0, len(parsedResponseBody.Hits.Hits))
	for _, hit := range parsedResponseBody.Hits.Hits {
		products = append(products, hit.Source)
	}

	return products, nil
}
