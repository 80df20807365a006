package controller

import (
	"github.com/Humayun167/green-nest/internal/dto"
	"github.com/Humayun167/green-nest/internal/middleware"
	"github.com/Humayun167/green-nest/internal/service"
	"github.com/Humayun167/green-nest/pkg/response"
	"github.com/labstack/echo/v4"
)

type UserProductRequestController struct {
	service service.UserProductRequestService
}

func CreateUserProductRequestController(g *echo.Group, service service.UserProductRequestService, auth *middleware.Authenticator) {
	c := UserProductRequestController{
		service: service,
	}

	g.POST("/submit", c.SubmitRequest, auth.UserAuth)
	g.GET("/user-requests", c.GetUserRequests, auth.UserAuth)
	g.GET("/all-requests", c.GetAllRequests, auth.SellerAuth)
	g.POST("/approve", c.ApproveRequest, auth.SellerAuth)
	g.POST("/reject", c.RejectRequest, auth.SellerAuth)
}

// SubmitRequest expects the proposed product as JSON in requestData and one
// or more files under images.
func (c *UserProductRequestController) SubmitRequest(e echo.Context) error {
	payload := dto.ProductPayload{}
	if err := bindFormJSON(e, "requestData", &payload, "SubmitRequest"); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	images, err := formImages(e, "images")
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	resp, err := c.service.SubmitRequest(e.Request().Context(), middleware.UserID(e), payload, images)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Product request submitted", resp)
}

func (c *UserProductRequestController) GetUserRequests(e echo.Context) error {
	resp, err := c.service.GetUserRequests(e.Request().Context(), middleware.UserID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *UserProductRequestController) GetAllRequests(e echo.Context) error {
	resp, err := c.service.GetAllRequests(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *UserProductRequestController) ApproveRequest(e echo.Context) error {
	payload := dto.ApproveProductRequest{}
	if err := bindAndValidate(e, &payload, "ApproveRequest"); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	resp, err := c.service.ApproveRequest(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Product request approved", resp)
}

func (c *UserProductRequestController) RejectRequest(e echo.Context) error {
	payload := dto.RejectProductRequest{}
	if err := bindAndValidate(e, &payload, "RejectRequest"); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	resp, err := c.service.RejectRequest(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Product request rejected", resp)
}
