package service

import (
	"context"
	"strings"
	"time"

	"github.com/Humayun167/green-nest/internal/domain"
	"github.com/Humayun167/green-nest/internal/dto"
	"github.com/Humayun167/green-nest/internal/repository"
	"github.com/Humayun167/green-nest/pkg/errs"
	"github.com/Humayun167/green-nest/pkg/utils"
	"github.com/rs/zerolog/log"
)

const productImageFolder = "products"

type ProductServiceImpl struct {
	productRepo repository.ProductRepository
	searchRepo  repository.ProductSearchRepository
	imageRepo   repository.ImageRepository
	publisher   EventPublisher
}

// CreateProductService wires the catalog. searchRepo may be nil, in which
// case search runs against the document store.
func CreateProductService(productRepo repository.ProductRepository, searchRepo repository.ProductSearchRepository, imageRepo repository.ImageRepository, publisher EventPublisher) ProductService {
	return &ProductServiceImpl{
		productRepo: productRepo,
		searchRepo:  searchRepo,
		imageRepo:   imageRepo,
		publisher:   publisher,
	}
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, req dto.ProductPayload, images []utils.UploadedFile) (resp dto.ProductResponse, err error) {
	if len(images) == 0 {
		return resp, errs.ErrImageRequired
	}

	imageURLs, err := uploadImages(ctx, s.imageRepo, productImageFolder, images)
	if err != nil {
		return resp, err
	}

	now := time.Now()
	product := domain.Product{
		Name:        strings.TrimSpace(req.Name),
		Description: trimLines(req.Description),
		Price:       req.Price,
		OfferPrice:  req.OfferPrice,
		Image:       imageURLs,
		Category:    strings.TrimSpace(req.Category),
		InStock:     true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	product.ID, err = s.productRepo.AddProduct(ctx, product)
	if err != nil {
		return resp, err
	}

	s.invalidateListing(ctx, "AddProduct")
	indexProduct(ctx, s.searchRepo, product)
	publishEvent(ctx, s.publisher, product.ID.Hex(), dto.EventProductAdded, dto.ProductEvent{
		ProductID: product.ID.Hex(),
		Name:      product.Name,
	})

	return toProductResponse(product), nil
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context) (resp []dto.ProductResponse, err error) {
	products, err := s.productRepo.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	return toProductResponses(products), nil
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id string) (resp dto.ProductResponse, err error) {
	productID, err := parseObjectID(id, errs.ErrProductNotFound)
	if err != nil {
		return resp, err
	}

	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return resp, err
	}

	return toProductResponse(product), nil
}

func (s *ProductServiceImpl) UpdateStock(ctx context.Context, req dto.ProductStockRequest) (err error) {
	productID, err := parseObjectID(req.ID, errs.ErrProductNotFound)
	if err != nil {
		return err
	}
	if req.InStock == nil {
		return errs.ErrValidation
	}

	if err = s.productRepo.UpdateStock(ctx, productID, *req.InStock); err != nil {
		return err
	}
	s.invalidateListing(ctx, "UpdateStock")

	if s.searchRepo != nil {
		product, err := s.productRepo.GetProductByID(ctx, productID)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "UpdateStock").Msg("")
			return nil
		}
		indexProduct(ctx, s.searchRepo, product)
	}

	return nil
}

// SearchProducts prefers the search index and falls back to the document
// store when the index is absent or failing.
func (s *ProductServiceImpl) SearchProducts(ctx context.Context, query dto.ProductSearchQuery) (resp []dto.ProductResponse, err error) {
	query.Q = strings.TrimSpace(query.Q)
	query.Category = strings.TrimSpace(query.Category)
	query.Limit = repository.NormalizeSearchLimit(query.Limit)

	if s.searchRepo != nil {
		resp, err = s.searchRepo.SearchProducts(ctx, query)
		if err == nil {
			return resp, nil
		}
		log.Ctx(ctx).Warn().Err(err).Str("component", "SearchProducts").Msg("search index unavailable, querying the catalog")
	}

	products, err := s.productRepo.SearchProducts(ctx, query)
	if err != nil {
		return nil, err
	}

	return toProductResponses(products), nil
}

// ReindexProducts pushes the whole catalog into the search index. It runs on
// a schedule to repair documents whose index write failed.
func (s *ProductServiceImpl) ReindexProducts() {
	if s.searchRepo == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	products, err := s.productRepo.GetProducts(ctx)
	if err != nil {
		log.Error().Err(err).Str("component", "ReindexProducts").Msg("")
		return
	}

	failed := 0
	for _, product := range products {
		if err := s.searchRepo.IndexProduct(ctx, toProductResponse(product)); err != nil {
			failed++
		}
	}

	log.Info().Str("component", "ReindexProducts").Int("products", len(products)).Int("failed", failed).Msg("reindex finished")
}

func (s *ProductServiceImpl) invalidateListing(ctx context.Context, component string) {
	if err := s.productRepo.InvalidateProducts(ctx); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", component).Msg("")
	}
}

func uploadImages(ctx context.Context, imageRepo repository.ImageRepository, folder string, images []utils.UploadedFile) ([]string, error) {
	urls := make([]string, 0, len(images))
	for _, image := range images {
		url, err := imageRepo.Upload(ctx, folder, image)
		if err != nil {
			for _, uploaded := range urls {
				if delErr := imageRepo.Delete(ctx, uploaded); delErr != nil {
					log.Ctx(ctx).Warn().Err(delErr).Str("component", "uploadImages").Msg("")
				}
			}
			return nil, err
		}
		urls = append(urls, url)
	}

	return urls, nil
}

func trimLines(lines []string) []string {
	trimmed := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			trimmed = append(trimmed, line)
		}
	}
	return trimmed
}
