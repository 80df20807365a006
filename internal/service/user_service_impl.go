package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Humayun167/green-nest/config"
	"github.com/Humayun167/green-nest/internal/domain"
	"github.com/Humayun167/green-nest/internal/dto"
	"github.com/Humayun167/green-nest/internal/repository"
	pkgdto "github.com/Humayun167/green-nest/pkg/dto"
	"github.com/Humayun167/green-nest/pkg/errs"
	"github.com/Humayun167/green-nest/pkg/utils"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptCost        = 10
	minPasswordLength = 6
	// bcrypt only hashes the first 72 bytes.
	maxPasswordBytes = 72

	profileImageFolder = "profile_images"
)

type UserServiceImpl struct {
	userRepo  repository.UserRepository
	orderRepo repository.OrderRepository
	imageRepo repository.ImageRepository
	config    *config.Config
}

func CreateUserService(userRepo repository.UserRepository, orderRepo repository.OrderRepository, imageRepo repository.ImageRepository, config *config.Config) UserService {
	return &UserServiceImpl{
		userRepo:  userRepo,
		orderRepo: orderRepo,
		imageRepo: imageRepo,
		config:    config,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, req dto.RegisterRequest) (resp dto.AuthResponse, err error) {
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)
	if name == "" || email == "" || req.Password == "" {
		return resp, errs.ErrMissingFields
	}
	if len(req.Password) > maxPasswordBytes {
		return resp, errs.ErrPasswordTooLong
	}

	_, err = s.userRepo.GetUserByEmail(ctx, email)
	if err == nil {
		return resp, errs.ErrUserAlreadyExists
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return resp, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return resp, err
	}

	now := time.Now()
	user := domain.User{
		Name:      name,
		Email:     email,
		Password:  string(hash),
		CartItems: map[string]int{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	user.ID, err = s.userRepo.AddUser(ctx, user)
	if err != nil {
		return resp, err
	}

	token, err := utils.CreateUserJWTToken(user.ID.Hex(), s.config.JWTSecret)
	if err != nil {
		return resp, err
	}

	resp.User = toUserResponse(user)
	resp.Token = token

	return resp, nil
}

// Login answers a wrong email and a wrong password with the same error.
func (s *UserServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (resp dto.AuthResponse, err error) {
	user, err := s.userRepo.GetUserByEmail(ctx, normalizeEmail(req.Email))
	if errors.Is(err, errs.ErrUserNotFound) {
		return resp, errs.ErrInvalidCredentialsEmail
	}
	if err != nil {
		return resp, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password))
	if err != nil {
		log.Ctx(ctx).Info().Str("component", "Login").Msg("password mismatch")
		return resp, errs.ErrInvalidCredentialsEmail
	}

	now := time.Now()
	if err = s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Login").Msg("")
	} else {
		user.LastLogin = &now
	}

	token, err := utils.CreateUserJWTToken(user.ID.Hex(), s.config.JWTSecret)
	if err != nil {
		return resp, err
	}

	resp.User = toUserResponse(user)
	resp.Token = token

	return resp, nil
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID string) (resp dto.UserResponse, err error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return resp, err
	}

	return toUserResponse(user), nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (resp dto.UserResponse, err error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return resp, err
	}

	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)
	if name == "" || email == "" {
		return resp, errs.ErrMissingFields
	}

	if email != user.Email {
		existing, err := s.userRepo.GetUserByEmail(ctx, email)
		if err == nil && existing.ID != user.ID {
			return resp, errs.ErrEmailAlreadyUsed
		}
		if err != nil && !errors.Is(err, errs.ErrUserNotFound) {
			return resp, err
		}
	}

	if err = s.userRepo.UpdateProfile(ctx, user.ID, name, email); err != nil {
		return resp, err
	}

	user.Name = name
	user.Email = email

	return toUserResponse(user), nil
}

func (s *UserServiceImpl) UpdatePassword(ctx context.Context, userID string, req dto.UpdatePasswordRequest) (err error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}

	if len(req.NewPassword) < minPasswordLength {
		return errs.ErrPasswordTooShort
	}
	if len(req.NewPassword) > maxPasswordBytes {
		return errs.ErrPasswordTooLong
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return errs.ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(ctx, user.ID, string(hash))
}

func (s *UserServiceImpl) GetOrderCount(ctx context.Context, userID string) (resp dto.OrderCountResponse, err error) {
	id, err := parseUserID(userID)
	if err != nil {
		return resp, err
	}

	resp.OrderCount, err = s.orderRepo.CountVisibleOrdersByUserID(ctx, id)
	return resp, err
}

func (s *UserServiceImpl) UploadProfileImage(ctx context.Context, userID string, image utils.UploadedFile) (resp dto.ProfileImageResponse, err error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return resp, err
	}

	imageURL, err := s.imageRepo.Upload(ctx, profileImageFolder, image)
	if err != nil {
		return resp, err
	}

	if err = s.userRepo.UpdateProfileImage(ctx, user.ID, imageURL); err != nil {
		return resp, err
	}

	if user.ProfileImage != "" {
		if err := s.imageRepo.Delete(ctx, user.ProfileImage); err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("component", "UploadProfileImage").Msg("old profile image left behind")
		}
	}

	user.ProfileImage = imageURL
	resp.User = toUserResponse(user)
	resp.ImageURL = imageURL

	return resp, nil
}

// UpdateCart replaces the stored cart. Entries with a non-positive quantity
// or a malformed product id are dropped.
func (s *UserServiceImpl) UpdateCart(ctx context.Context, userID string, req dto.CartUpdateRequest) (err error) {
	id, err := parseUserID(userID)
	if err != nil {
		return err
	}

	cartItems := make(map[string]int, len(req.CartItems))
	for productID, quantity := range req.CartItems {
		if quantity <= 0 || !primitive.IsValidObjectID(productID) {
			continue
		}
		cartItems[productID] = quantity
	}

	return s.userRepo.UpdateCartItems(ctx, id, cartItems)
}

func (s *UserServiceImpl) GetUsers(ctx context.Context, filter pkgdto.Filter) (resp dto.UsersPageResponse, err error) {
	filter = filter.Normalize()
	filter.Search = strings.TrimSpace(filter.Search)

	users, totalCount, err := s.userRepo.GetUsers(ctx, filter)
	if err != nil {
		return resp, err
	}

	resp.Users = make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		resp.Users = append(resp.Users, toUserResponse(user))
	}
	resp.Pagination = pkgdto.NewPaginationMetadata(filter, totalCount)

	return resp, nil
}

func (s *UserServiceImpl) getUser(ctx context.Context, userID string) (domain.User, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return domain.User{}, err
	}

	return s.userRepo.GetUserByID(ctx, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
