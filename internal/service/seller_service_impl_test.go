package service_test

import (
	"context"
	"testing"

	"github.com/Humayun167/green-nest/config"
	"github.com/Humayun167/green-nest/internal/dto"
	"github.com/Humayun167/green-nest/internal/service"
	"github.com/Humayun167/green-nest/pkg/errs"
	"github.com/Humayun167/green-nest/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSellerService_Login(t *testing.T) {
	conf := &config.Config{
		JWTSecret:    testSecret,
		SellerConfig: config.SellerConfig{Email: "seller@greennest.com", Password: "plants4ever"},
	}
	svc := service.CreateSellerService(conf)

	type TestCase struct {
		Name        string
		Request     dto.LoginRequest
		ExpectedErr error
	}

	testCases := []TestCase{
		{Name: "Configured pair", Request: dto.LoginRequest{Email: "Seller@GreenNest.com", Password: "plants4ever"}},
		{Name: "Wrong password", Request: dto.LoginRequest{Email: "seller@greennest.com", Password: "plants"}, ExpectedErr: errs.ErrInvalidCredentialsEmail},
		{Name: "Wrong email", Request: dto.LoginRequest{Email: "buyer@greennest.com", Password: "plants4ever"}, ExpectedErr: errs.ErrInvalidCredentialsEmail},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			resp, err := svc.Login(context.Background(), tc.Request)
			if tc.ExpectedErr != nil {
				assert.ErrorIs(t, err, tc.ExpectedErr)
				return
			}

			require.NoError(t, err)
			claims, err := utils.ParseJWTToken(resp.Token, testSecret)
			require.NoError(t, err)
			email, ok := utils.ExtractSellerEmail(claims)
			assert.True(t, ok)
			assert.Equal(t, "seller@greennest.com", email)
		})
	}
}
