package controller_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Humayun167/green-nest/config"
	"github.com/Humayun167/green-nest/internal/controller"
	"github.com/Humayun167/green-nest/internal/middleware"
	"github.com/Humayun167/green-nest/internal/mocks"
	"github.com/Humayun167/green-nest/internal/service"
	"github.com/Humayun167/green-nest/pkg/errs"
	"github.com/Humayun167/green-nest/pkg/response"
	"github.com/Humayun167/green-nest/pkg/utils"
	"github.com/Humayun167/green-nest/pkg/validator"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	testSecret      = "controller-secret"
	testSellerEmail = "seller@greennest.com"
)

type UserProductRequestControllerTestSuite struct {
	suite.Suite
	e           *echo.Echo
	requestRepo *mocks.UserProductRequestRepository
	productRepo *mocks.ProductRepository
	sellerToken string
	userToken   string
}

func (s *UserProductRequestControllerTestSuite) SetupTest() {
	conf := &config.Config{
		JWTSecret:      testSecret,
		TokenTransport: config.TokenTransportHeader,
		SellerConfig:   config.SellerConfig{Email: testSellerEmail},
	}

	s.requestRepo = new(mocks.UserProductRequestRepository)
	s.productRepo = new(mocks.ProductRepository)
	svc := service.CreateUserProductRequestService(s.requestRepo, s.productRepo, new(mocks.UserRepository), nil,
		new(mocks.ImageRepository), new(mocks.TransactionManager), new(mocks.EventPublisher))

	s.e = echo.New()
	s.e.Validator = validator.NewValidator()
	controller.CreateUserProductRequestController(s.e.Group("/api/user-product-requests"), svc, middleware.CreateAuthenticator(conf))

	var err error
	s.sellerToken, err = utils.CreateSellerJWTToken(testSellerEmail, testSecret)
	s.Require().NoError(err)
	s.userToken, err = utils.CreateUserJWTToken(primitive.NewObjectID().Hex(), testSecret)
	s.Require().NoError(err)
}

func (s *UserProductRequestControllerTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *UserProductRequestControllerTestSuite) do(req *http.Request, token string) (*httptest.ResponseRecorder, response.ErrorResponse) {
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	body := response.ErrorResponse{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func jsonRequest(path string, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func (s *UserProductRequestControllerTestSuite) Test_RejectRequest() {
	type TestCase struct {
		Name            string
		Body            string
		Token           func() string
		ExpectedStatus  int
		ExpectedMessage string
	}

	testCases := []TestCase{
		{
			Name:            "Missing reason",
			Body:            `{"requestId":"` + primitive.NewObjectID().Hex() + `"}`,
			Token:           func() string { return s.sellerToken },
			ExpectedStatus:  http.StatusBadRequest,
			ExpectedMessage: errs.ErrRejectionReasonRequired.Error(),
		},
		{
			Name:            "Missing request id",
			Body:            `{"rejectionReason":"Blurry"}`,
			Token:           func() string { return s.sellerToken },
			ExpectedStatus:  http.StatusBadRequest,
			ExpectedMessage: errs.ErrValidation.Error(),
		},
		{
			Name:            "User token",
			Body:            `{"requestId":"x","rejectionReason":"Blurry"}`,
			Token:           func() string { return s.userToken },
			ExpectedStatus:  http.StatusUnauthorized,
			ExpectedMessage: errs.ErrNotLoggedIn.Error(),
		},
	}

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			rec, body := s.do(jsonRequest("/api/user-product-requests/reject", tc.Body), tc.Token())

			s.Equal(tc.ExpectedStatus, rec.Code)
			s.False(body.Success)
			s.Equal(tc.ExpectedMessage, body.Message)
			s.requestRepo.AssertNotCalled(s.T(), "MarkRejected", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func (s *UserProductRequestControllerTestSuite) Test_ApproveRequestReportsFields() {
	rec, body := s.do(jsonRequest("/api/user-product-requests/approve", `{}`), s.sellerToken)

	s.Equal(http.StatusBadRequest, rec.Code)
	fields, ok := body.Errors.([]interface{})
	s.Require().True(ok)
	s.Require().Len(fields, 1)
	s.Equal("requestId", fields[0].(map[string]interface{})["field"])
}

func (s *UserProductRequestControllerTestSuite) Test_SubmitRequestWithoutImages() {
	form := &bytes.Buffer{}
	writer := multipart.NewWriter(form)
	require.NoError(s.T(), writer.WriteField("requestData", `{"name":"Fern","description":["Green"],"price":10,"offerPrice":8,"category":"Indoor"}`))
	require.NoError(s.T(), writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/user-product-requests/submit", form)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	rec, body := s.do(req, s.userToken)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(errs.ErrImageRequired.Error(), body.Message)
	s.requestRepo.AssertNotCalled(s.T(), "AddRequest", mock.Anything, mock.Anything)
}

func TestUserProductRequestControllerTestSuite(t *testing.T) {
	suite.Run(t, new(UserProductRequestControllerTestSuite))
}
