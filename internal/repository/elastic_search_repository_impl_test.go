package repository_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Humayun167/green-nest/config"
	"github.com/Humayun167/green-nest/internal/dto"
	"github.com/Humayun167/green-nest/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchConfig(host string) *config.Config {
	return &config.Config{SearchConfig: config.SearchConfig{ElasticsearchHost: host, Index: "products"}}
}

func TestElasticSearchRepository_SearchProducts(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/_search", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &captured)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"took":1,"hits":{"total":{"value":1},"hits":[{"_id":"p1","_source":{"_id":"p1","name":"Boston Fern","inStock":true}}]}}`))
	}))
	defer server.Close()

	repo := repository.CreateNewElasticSearchRepository(searchConfig(server.URL))
	products, err := repo.SearchProducts(context.Background(), dto.ProductSearchQuery{Q: "fern", Category: "Indoor", Limit: 500})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Boston Fern", products[0].Name)

	assert.EqualValues(t, 50, captured["size"])
	boolQuery := captured["query"].(map[string]interface{})["bool"].(map[string]interface{})
	assert.Len(t, boolQuery["filter"], 2)
	assert.Contains(t, boolQuery, "must")
}

func TestElasticSearchRepository_Errors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	repo := repository.CreateNewElasticSearchRepository(searchConfig(server.URL))

	_, err := repo.SearchProducts(context.Background(), dto.ProductSearchQuery{Q: "fern"})
	assert.Error(t, err)

	err = repo.IndexProduct(context.Background(), dto.ProductResponse{ID: "p1", Name: "Boston Fern"})
	assert.Error(t, err)
}

func TestElasticSearchRepository_IndexProduct(t *testing.T) {
	var method, path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	repo := repository.CreateNewElasticSearchRepository(searchConfig(server.URL))
	require.NoError(t, repo.IndexProduct(context.Background(), dto.ProductResponse{ID: "p1", Name: "Boston Fern"}))
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/products/_doc/p1", path)
}
