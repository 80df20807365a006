package service

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/Humayun167/green-nest/config"
	"github.com/Humayun167/green-nest/internal/dto"
	"github.com/Humayun167/green-nest/pkg/errs"
	"github.com/Humayun167/green-nest/pkg/utils"
	"github.com/rs/zerolog/log"
)

type SellerServiceImpl struct {
	config *config.Config
}

func CreateSellerService(config *config.Config) SellerService {
	return &SellerServiceImpl{config: config}
}

// Login checks the single configured seller credential pair.
func (s *SellerServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (resp dto.SellerAuthResponse, err error) {
	seller := s.config.SellerConfig
	if seller.Email == "" || seller.Password == "" {
		log.Ctx(ctx).Error().Str("component", "SellerLogin").Msg("seller credentials are not configured")
		return resp, errs.ErrInvalidCredentialsEmail
	}

	emailMatch := subtle.ConstantTimeCompare([]byte(strings.ToLower(strings.TrimSpace(req.Email))), []byte(strings.ToLower(seller.Email)))
	passwordMatch := subtle.ConstantTimeCompare([]byte(req.Password), []byte(seller.Password))
	if emailMatch&passwordMatch != 1 {
		return resp, errs.ErrInvalidCredentialsEmail
	}

	token, err := utils.CreateSellerJWTToken(seller.Email, s.config.JWTSecret)
	if err != nil {
		return resp, err
	}

	resp.Email = seller.Email
	resp.Token = token

	return resp, nil
}
