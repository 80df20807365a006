package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Humayun167/green-nest/internal/domain"
	"github.com/Humayun167/green-nest/internal/dto"
	"github.com/Humayun167/green-nest/internal/mocks"
	"github.com/Humayun167/green-nest/internal/service"
	"github.com/Humayun167/green-nest/pkg/errs"
	"github.com/Humayun167/green-nest/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestProductService_AddProduct(t *testing.T) {
	image := utils.UploadedFile{Filename: "a.png", ContentType: "image/png", Extension: ".png", Data: []byte{1}}
	payload := dto.ProductPayload{Name: "Aloe", Description: []string{"Soothing"}, Price: 12, OfferPrice: 10, Category: "Succulent"}

	t.Run("Requires an image", func(t *testing.T) {
		productRepo := new(mocks.ProductRepository)
		svc := service.CreateProductService(productRepo, nil, new(mocks.ImageRepository), new(mocks.EventPublisher))

		_, err := svc.AddProduct(context.Background(), payload, nil)
		assert.ErrorIs(t, err, errs.ErrImageRequired)
		productRepo.AssertNotCalled(t, "AddProduct", mock.Anything, mock.Anything)
	})

	t.Run("Uploads, stores and indexes", func(t *testing.T) {
		productID := primitive.NewObjectID()
		productRepo := new(mocks.ProductRepository)
		searchRepo := new(mocks.ProductSearchRepository)
		imageRepo := new(mocks.ImageRepository)
		publisher := new(mocks.EventPublisher)

		imageRepo.On("Upload", mock.Anything, "products", image).Return("http://cdn/products/a.png", nil)
		productRepo.On("AddProduct", mock.Anything, mock.MatchedBy(func(p domain.Product) bool {
			return p.InStock && p.OriginalSubmitterID == nil && p.Image[0] == "http://cdn/products/a.png"
		})).Return(productID, nil)
		productRepo.On("InvalidateProducts", mock.Anything).Return(nil)
		searchRepo.On("IndexProduct", mock.Anything, mock.MatchedBy(func(p dto.ProductResponse) bool {
			return p.ID == productID.Hex()
		})).Return(nil)
		publisher.On("Publish", mock.Anything, productID.Hex(), mock.Anything).Return(nil)

		svc := service.CreateProductService(productRepo, searchRepo, imageRepo, publisher)
		resp, err := svc.AddProduct(context.Background(), payload, []utils.UploadedFile{image})
		require.NoError(t, err)
		assert.Equal(t, productID.Hex(), resp.ID)
		assert.True(t, resp.InStock)
		searchRepo.AssertExpectations(t)
		publisher.AssertExpectations(t)
		productRepo.AssertExpectations(t)
	})

	t.Run("Failed upload rolls back earlier images", func(t *testing.T) {
		second := image
		second.Filename = "b.png"
		imageRepo := new(mocks.ImageRepository)
		imageRepo.On("Upload", mock.Anything, "products", image).Return("http://cdn/products/a.png", nil)
		imageRepo.On("Upload", mock.Anything, "products", second).Return("", errs.ErrServiceUnavailable)
		imageRepo.On("Delete", mock.Anything, "http://cdn/products/a.png").Return(nil)

		productRepo := new(mocks.ProductRepository)
		svc := service.CreateProductService(productRepo, nil, imageRepo, new(mocks.EventPublisher))

		_, err := svc.AddProduct(context.Background(), payload, []utils.UploadedFile{image, second})
		assert.ErrorIs(t, err, errs.ErrServiceUnavailable)
		imageRepo.AssertExpectations(t)
		productRepo.AssertNotCalled(t, "AddProduct", mock.Anything, mock.Anything)
	})
}

func TestProductService_SearchProducts(t *testing.T) {
	t.Run("Index answers", func(t *testing.T) {
		searchRepo := new(mocks.ProductSearchRepository)
		searchRepo.On("SearchProducts", mock.Anything, dto.ProductSearchQuery{Q: "fern", Limit: 10}).
			Return([]dto.ProductResponse{{Name: "Boston Fern"}}, nil)
		productRepo := new(mocks.ProductRepository)

		svc := service.CreateProductService(productRepo, searchRepo, nil, nil)
		resp, err := svc.SearchProducts(context.Background(), dto.ProductSearchQuery{Q: " fern "})
		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "Boston Fern", resp[0].Name)
		productRepo.AssertNotCalled(t, "SearchProducts", mock.Anything, mock.Anything)
	})

	t.Run("Falls back to the catalog", func(t *testing.T) {
		query := dto.ProductSearchQuery{Q: "fern", Category: "Indoor", Limit: 50}
		searchRepo := new(mocks.ProductSearchRepository)
		searchRepo.On("SearchProducts", mock.Anything, query).Return([]dto.ProductResponse(nil), errors.New("connection refused"))
		productRepo := new(mocks.ProductRepository)
		productRepo.On("SearchProducts", mock.Anything, query).Return([]domain.Product{{ID: primitive.NewObjectID(), Name: "Boston Fern", InStock: true}}, nil)

		svc := service.CreateProductService(productRepo, searchRepo, nil, nil)
		resp, err := svc.SearchProducts(context.Background(), dto.ProductSearchQuery{Q: "fern", Category: "Indoor", Limit: 500})
		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "Boston Fern", resp[0].Name)
	})
}

func TestProductService_UpdateStock(t *testing.T) {
	productID := primitive.NewObjectID()
	inStock := false

	t.Run("Requires the stock flag", func(t *testing.T) {
		productRepo := new(mocks.ProductRepository)
		svc := service.CreateProductService(productRepo, nil, nil, nil)

		err := svc.UpdateStock(context.Background(), dto.ProductStockRequest{ID: productID.Hex()})
		assert.ErrorIs(t, err, errs.ErrValidation)
		productRepo.AssertNotCalled(t, "UpdateStock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Drops the cached listing after the write", func(t *testing.T) {
		productRepo := new(mocks.ProductRepository)
		productRepo.On("UpdateStock", mock.Anything, productID, false).Return(nil)
		productRepo.On("InvalidateProducts", mock.Anything).Return(nil)
		svc := service.CreateProductService(productRepo, nil, nil, nil)

		require.NoError(t, svc.UpdateStock(context.Background(), dto.ProductStockRequest{ID: productID.Hex(), InStock: &inStock}))
		productRepo.AssertExpectations(t)
	})

	t.Run("Failed write leaves the cache alone", func(t *testing.T) {
		productRepo := new(mocks.ProductRepository)
		productRepo.On("UpdateStock", mock.Anything, productID, false).Return(errs.ErrProductNotFound)
		svc := service.CreateProductService(productRepo, nil, nil, nil)

		err := svc.UpdateStock(context.Background(), dto.ProductStockRequest{ID: productID.Hex(), InStock: &inStock})
		assert.ErrorIs(t, err, errs.ErrProductNotFound)
		productRepo.AssertNotCalled(t, "InvalidateProducts", mock.Anything)
	})
}
