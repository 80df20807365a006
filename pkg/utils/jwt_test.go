package utils_test

import (
	"testing"
	"time"

	"github.com/Humayun167/green-nest/pkg/utils"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "unit-test-secret"

func TestUserToken(t *testing.T) {
	token, err := utils.CreateUserJWTToken("6650f0c2a1b2c3d4e5f60718", secret)
	require.NoError(t, err)

	claims, err := utils.ParseJWTToken(token, secret)
	require.NoError(t, err)

	id, ok := utils.ExtractUserID(claims)
	assert.True(t, ok)
	assert.Equal(t, "6650f0c2a1b2c3d4e5f60718", id)

	_, ok = utils.ExtractSellerEmail(claims)
	assert.False(t, ok, "user tokens never carry the seller role")
}

func TestSellerToken(t *testing.T) {
	token, err := utils.CreateSellerJWTToken("seller@greennest.com", secret)
	require.NoError(t, err)

	claims, err := utils.ParseJWTToken(token, secret)
	require.NoError(t, err)

	email, ok := utils.ExtractSellerEmail(claims)
	assert.True(t, ok)
	assert.Equal(t, "seller@greennest.com", email)

	_, ok = utils.ExtractUserID(claims)
	assert.False(t, ok)
}

func TestParseJWTToken_Rejects(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "6650f0c2a1b2c3d4e5f60718",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	expiredToken, err := expired.SignedString([]byte(secret))
	require.NoError(t, err)

	valid, err := utils.CreateUserJWTToken("6650f0c2a1b2c3d4e5f60718", secret)
	require.NoError(t, err)

	type TestCase struct {
		Name   string
		Token  string
		Secret string
	}

	testCases := []TestCase{
		{Name: "Expired", Token: expiredToken, Secret: secret},
		{Name: "Wrong secret", Token: valid, Secret: "another-secret"},
		{Name: "Garbage", Token: "not.a.token", Secret: secret},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			_, err := utils.ParseJWTToken(tc.Token, tc.Secret)
			assert.ErrorIs(t, err, utils.ErrInvalidToken)
		})
	}
}
