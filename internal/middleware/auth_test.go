package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Humayun167/green-nest/config"
	"github.com/Humayun167/green-nest/internal/middleware"
	"github.com/Humayun167/green-nest/pkg/errs"
	"github.com/Humayun167/green-nest/pkg/response"
	"github.com/Humayun167/green-nest/pkg/utils"
	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	secret      = "middleware-secret"
	sellerEmail = "seller@greennest.com"
	userID      = "6650f0c2a1b2c3d4e5f60718"
)

func newServer(transport string) *echo.Echo {
	auth := middleware.CreateAuthenticator(&config.Config{
		JWTSecret:      secret,
		TokenTransport: transport,
		SellerConfig:   config.SellerConfig{Email: sellerEmail},
	})

	e := echo.New()
	e.GET("/user", func(c echo.Context) error {
		return c.String(http.StatusOK, middleware.UserID(c))
	}, auth.UserAuth)
	e.GET("/seller", func(c echo.Context) error {
		return c.String(http.StatusOK, middleware.SellerEmail(c))
	}, auth.SellerAuth)
	e.POST("/login", func(c echo.Context) error {
		auth.IssueToken(c, middleware.UserTokenCookie, "issued")
		return c.NoContent(http.StatusOK)
	})

	return e
}

func userToken(t *testing.T) string {
	token, err := utils.CreateUserJWTToken(userID, secret)
	require.NoError(t, err)
	return token
}

func sellerToken(t *testing.T, email string) string {
	token, err := utils.CreateSellerJWTToken(email, secret)
	require.NoError(t, err)
	return token
}

func signedToken(t *testing.T, claims jwt.MapClaims, key string) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return token
}

func TestUserAuth_HeaderTransport(t *testing.T) {
	e := newServer(config.TokenTransportHeader)

	type TestCase struct {
		Name           string
		Authorization  string
		Cookie         *http.Cookie
		ExpectedStatus int
	}

	testCases := []TestCase{
		{Name: "Bearer token", Authorization: "Bearer " + userToken(t), ExpectedStatus: http.StatusOK},
		{Name: "Missing header", ExpectedStatus: http.StatusUnauthorized},
		{Name: "Wrong scheme", Authorization: "Basic " + userToken(t), ExpectedStatus: http.StatusUnauthorized},
		{Name: "Cookie is ignored", Cookie: &http.Cookie{Name: middleware.UserTokenCookie, Value: userToken(t)}, ExpectedStatus: http.StatusUnauthorized},
		{Name: "Seller token has no user id", Authorization: "Bearer " + sellerToken(t, sellerEmail), ExpectedStatus: http.StatusUnauthorized},
		{Name: "Expired token", Authorization: "Bearer " + signedToken(t, jwt.MapClaims{"id": userID, "exp": time.Now().Add(-time.Minute).Unix()}, secret), ExpectedStatus: http.StatusUnauthorized},
		{Name: "Foreign signing key", Authorization: "Bearer " + signedToken(t, jwt.MapClaims{"id": userID, "exp": time.Now().Add(time.Hour).Unix()}, "other-secret"), ExpectedStatus: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/user", nil)
			if tc.Authorization != "" {
				req.Header.Set(echo.HeaderAuthorization, tc.Authorization)
			}
			if tc.Cookie != nil {
				req.AddCookie(tc.Cookie)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tc.ExpectedStatus, rec.Code)
			if tc.ExpectedStatus == http.StatusOK {
				assert.Equal(t, userID, rec.Body.String())
			}
		})
	}
}

func TestUserAuth_CookieTransport(t *testing.T) {
	e := newServer(config.TokenTransportCookie)

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.AddCookie(&http.Cookie{Name: middleware.UserTokenCookie, Value: userToken(t)})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+userToken(t))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserAuth_RejectionEnvelope(t *testing.T) {
	e := newServer(config.TokenTransportHeader)

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, errs.ErrNotLoggedIn.Error(), body.Message)
}

func TestSellerAuth(t *testing.T) {
	e := newServer(config.TokenTransportHeader)

	type TestCase struct {
		Name           string
		Token          string
		ExpectedStatus int
	}

	testCases := []TestCase{
		{Name: "Configured seller", Token: sellerToken(t, sellerEmail), ExpectedStatus: http.StatusOK},
		{Name: "User token", Token: userToken(t), ExpectedStatus: http.StatusUnauthorized},
		{Name: "Other seller email", Token: sellerToken(t, "intruder@greennest.com"), ExpectedStatus: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/seller", nil)
			req.Header.Set(echo.HeaderAuthorization, "Bearer "+tc.Token)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tc.ExpectedStatus, rec.Code)
		})
	}
}

func TestIssueToken(t *testing.T) {
	t.Run("Cookie transport sets an http-only cookie", func(t *testing.T) {
		e := newServer(config.TokenTransportCookie)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, middleware.UserTokenCookie, cookies[0].Name)
		assert.Equal(t, "issued", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)
	})

	t.Run("Header transport sets nothing", func(t *testing.T) {
		e := newServer(config.TokenTransportHeader)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))

		assert.Empty(t, rec.Result().Cookies())
	})
}
