package controller

import (
	"github.com/Humayun167/green-nest/internal/dto"
	"github.com/Humayun167/green-nest/internal/middleware"
	"github.com/Humayun167/green-nest/internal/service"
	"github.com/Humayun167/green-nest/pkg/errs"
	"github.com/Humayun167/green-nest/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type OrderController struct {
	service service.OrderService
}

func CreateOrderController(g *echo.Group, service service.OrderService, auth *middleware.Authenticator) {
	c := OrderController{
		service: service,
	}

	g.POST("/cod", c.PlaceCODOrder, auth.UserAuth)
	g.POST("/online", c.PlaceOnlineOrder, auth.UserAuth)
	g.POST("/payments/notifications", c.PaymentNotification)
	g.GET("/user", c.GetUserOrders, auth.UserAuth)
	g.GET("/user-sales", c.GetUserSales, auth.UserAuth)
	g.GET("/seller", c.GetAllOrders, auth.SellerAuth)
	g.GET("/seller-enhanced", c.GetEnhancedOrders, auth.SellerAuth)
}

func (c *OrderController) PlaceCODOrder(e echo.Context) error {
	payload := dto.PlaceOrderRequest{}
	if err := bindAndValidate(e, &payload, "PlaceCODOrder"); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	resp, err := c.service.PlaceCODOrder(e.Request().Context(), middleware.UserID(e), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Order placed", resp)
}

func (c *OrderController) PlaceOnlineOrder(e echo.Context) error {
	payload := dto.PlaceOrderRequest{}
	if err := bindAndValidate(e, &payload, "PlaceOnlineOrder"); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	resp, err := c.service.PlaceOnlineOrder(e.Request().Context(), middleware.UserID(e), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Awaiting payment", resp)
}

func (c *OrderController) PaymentNotification(e echo.Context) error {
	payload := dto.PaymentNotification{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "PaymentNotification").Msg("")
		return response.WriteErrorResponse(e, errs.ErrValidation, nil)
	}

	err := c.service.HandlePaymentNotification(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *OrderController) GetUserOrders(e echo.Context) error {
	resp, err := c.service.GetUserOrders(e.Request().Context(), middleware.UserID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *OrderController) GetUserSales(e echo.Context) error {
	resp, err := c.service.GetUserSales(e.Request().Context(), middleware.UserID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *OrderController) GetAllOrders(e echo.Context) error {
	resp, err := c.service.GetAllOrders(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *OrderController) GetEnhancedOrders(e echo.Context) error {
	resp, err := c.service.GetEnhancedOrders(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
