package controller

import (
	"github.com/Humayun167/green-nest/internal/dto"
	"github.com/Humayun167/green-nest/internal/middleware"
	"github.com/Humayun167/green-nest/internal/service"
	"github.com/Humayun167/green-nest/pkg/response"
	"github.com/labstack/echo/v4"
)

type CartController struct {
	service service.UserService
}

func CreateCartController(g *echo.Group, service service.UserService, auth *middleware.Authenticator) {
	c := CartController{
		service: service,
	}

	g.POST("/update", c.UpdateCart, auth.UserAuth)
}

func (c *CartController) UpdateCart(e echo.Context) error {
	payload := dto.CartUpdateRequest{}
	if err := bindAndValidate(e, &payload, "UpdateCart"); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	err := c.service.UpdateCart(e.Request().Context(), middleware.UserID(e), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Cart updated", nil)
}
