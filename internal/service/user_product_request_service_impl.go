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
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const requestImageFolder = "user_product_requests"

type UserProductRequestServiceImpl struct {
	requestRepo repository.UserProductRequestRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	searchRepo  repository.ProductSearchRepository
	imageRepo   repository.ImageRepository
	trxManager  repository.TransactionManager
	publisher   EventPublisher
}

func CreateUserProductRequestService(requestRepo repository.UserProductRequestRepository, productRepo repository.ProductRepository, userRepo repository.UserRepository, searchRepo repository.ProductSearchRepository, imageRepo repository.ImageRepository, trxManager repository.TransactionManager, publisher EventPublisher) UserProductRequestService {
	return &UserProductRequestServiceImpl{
		requestRepo: requestRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		searchRepo:  searchRepo,
		imageRepo:   imageRepo,
		trxManager:  trxManager,
		publisher:   publisher,
	}
}

func (s *UserProductRequestServiceImpl) SubmitRequest(ctx context.Context, userID string, req dto.ProductPayload, images []utils.UploadedFile) (resp dto.UserProductRequestResponse, err error) {
	id, err := parseUserID(userID)
	if err != nil {
		return resp, err
	}

	if len(images) == 0 {
		return resp, errs.ErrImageRequired
	}

	imageURLs, err := uploadImages(ctx, s.imageRepo, requestImageFolder, images)
	if err != nil {
		return resp, err
	}

	now := time.Now()
	request := domain.UserProductRequest{
		UserID:      id,
		Name:        strings.TrimSpace(req.Name),
		Description: trimLines(req.Description),
		Price:       req.Price,
		OfferPrice:  req.OfferPrice,
		Image:       imageURLs,
		Category:    strings.TrimSpace(req.Category),
		Status:      domain.RequestStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	request.ID, err = s.requestRepo.AddRequest(ctx, request)
	if err != nil {
		return resp, err
	}

	publishEvent(ctx, s.publisher, request.ID.Hex(), dto.EventProductRequestSubmitted, dto.ProductRequestSubmittedEvent{
		RequestID:   request.ID.Hex(),
		UserID:      id.Hex(),
		ProductName: request.Name,
	})

	return toRequestResponse(request), nil
}

func (s *UserProductRequestServiceImpl) GetUserRequests(ctx context.Context, userID string) (resp []dto.UserProductRequestResponse, err error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	requests, err := s.requestRepo.GetRequestsByUserID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp = make([]dto.UserProductRequestResponse, 0, len(requests))
	for _, request := range requests {
		resp = append(resp, toRequestResponse(request))
	}

	return resp, nil
}

// GetAllRequests lists every request with its submitter's name and email.
func (s *UserProductRequestServiceImpl) GetAllRequests(ctx context.Context) (resp []dto.UserProductRequestResponse, err error) {
	requests, err := s.requestRepo.GetRequests(ctx)
	if err != nil {
		return nil, err
	}

	userIDs := make([]primitive.ObjectID, 0, len(requests))
	for _, request := range requests {
		userIDs = append(userIDs, request.UserID)
	}

	users, err := collectUsers(ctx, s.userRepo, userIDs)
	if err != nil {
		return nil, err
	}

	resp = make([]dto.UserProductRequestResponse, 0, len(requests))
	for _, request := range requests {
		requestResp := toRequestResponse(request)
		if user, ok := users[request.UserID]; ok {
			requestResp.User = toUserSummary(user, true)
		}
		resp = append(resp, requestResp)
	}

	return resp, nil
}

// ApproveRequest materializes a pending request as a catalog product. The
// product insert and the status change commit together; a request that is no
// longer pending is refused with a conflict.
func (s *UserProductRequestServiceImpl) ApproveRequest(ctx context.Context, req dto.ApproveProductRequest) (resp dto.ApproveProductResponse, err error) {
	requestID, err := parseObjectID(req.RequestID, errs.ErrRequestNotFound)
	if err != nil {
		return resp, err
	}

	sellerNotes := strings.TrimSpace(req.SellerNotes)

	var (
		request domain.UserProductRequest
		product domain.Product
	)

	err = s.trxManager.HandleTrx(ctx, func(ctx context.Context) error {
		var err error

		request, err = s.requestRepo.GetRequestByID(ctx, requestID)
		if err != nil {
			return err
		}
		if request.Status != domain.RequestStatusPending {
			return errs.ErrRequestNotPending
		}

		now := time.Now()
		product = request.ToProduct(now)

		product.ID, err = s.productRepo.AddProduct(ctx, product)
		if err != nil {
			return err
		}

		if err = s.requestRepo.MarkApproved(ctx, request.ID, product.ID, sellerNotes, now); err != nil {
			return err
		}

		request.Status = domain.RequestStatusApproved
		request.ProductID = &product.ID
		request.SellerNotes = sellerNotes
		request.UpdatedAt = now

		return nil
	})
	if err != nil {
		return resp, err
	}

	if err := s.productRepo.InvalidateProducts(ctx); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "ApproveRequest").Msg("")
	}
	indexProduct(ctx, s.searchRepo, product)
	s.publishDecision(ctx, request, dto.EventProductRequestApproved)

	resp.Request = toRequestResponse(request)
	resp.Product = toProductResponse(product)

	return resp, nil
}

// RejectRequest refuses a pending request. A blank reason is rejected before
// anything is read or written.
func (s *UserProductRequestServiceImpl) RejectRequest(ctx context.Context, req dto.RejectProductRequest) (resp dto.UserProductRequestResponse, err error) {
	reason := strings.TrimSpace(req.RejectionReason)
	if reason == "" {
		return resp, errs.ErrRejectionReasonRequired
	}

	requestID, err := parseObjectID(req.RequestID, errs.ErrRequestNotFound)
	if err != nil {
		return resp, err
	}

	sellerNotes := strings.TrimSpace(req.SellerNotes)
	now := time.Now()

	if err = s.requestRepo.MarkRejected(ctx, requestID, reason, sellerNotes, now); err != nil {
		return resp, err
	}

	request, err := s.requestRepo.GetRequestByID(ctx, requestID)
	if err != nil {
		return resp, err
	}

	s.publishDecision(ctx, request, dto.EventProductRequestRejected)

	return toRequestResponse(request), nil
}

func (s *UserProductRequestServiceImpl) publishDecision(ctx context.Context, request domain.UserProductRequest, eventType string) {
	event := dto.ProductRequestDecisionEvent{
		RequestID:       request.ID.Hex(),
		UserID:          request.UserID.Hex(),
		ProductName:     request.Name,
		Status:          string(request.Status),
		RejectionReason: request.RejectionReason,
		SellerNotes:     request.SellerNotes,
	}
	if request.ProductID != nil {
		event.ProductID = request.ProductID.Hex()
	}

	user, err := s.userRepo.GetUserByID(ctx, request.UserID)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "publishDecision").Msg("submitter lookup failed")
	} else {
		event.UserName = user.Name
		event.UserEmail = user.Email
	}

	publishEvent(ctx, s.publisher, request.ID.Hex(), eventType, event)
}
