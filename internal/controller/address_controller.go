package controller

import (
	"github.com/Humayun167/green-nest/internal/dto"
	"github.com/Humayun167/green-nest/internal/middleware"
	"github.com/Humayun167/green-nest/internal/service"
	"github.com/Humayun167/green-nest/pkg/response"
	"github.com/labstack/echo/v4"
)

type AddressController struct {
	service service.AddressService
}

func CreateAddressController(g *echo.Group, service service.AddressService, auth *middleware.Authenticator) {
	c := AddressController{
		service: service,
	}

	g.Use(auth.UserAuth)
	g.POST("/add", c.AddAddress)
	g.GET("/get", c.GetAddresses)
	g.PUT("/update/:id", c.UpdateAddress)
	g.DELETE("/delete/:id", c.DeleteAddress)
}

func (c *AddressController) AddAddress(e echo.Context) error {
	payload := dto.AddressRequest{}
	if err := bindAndValidate(e, &payload, "AddAddress"); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	resp, err := c.service.AddAddress(e.Request().Context(), middleware.UserID(e), payload.Address)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Address added", resp)
}

func (c *AddressController) GetAddresses(e echo.Context) error {
	resp, err := c.service.GetAddresses(e.Request().Context(), middleware.UserID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *AddressController) UpdateAddress(e echo.Context) error {
	payload := dto.AddressRequest{}
	if err := bindAndValidate(e, &payload, "UpdateAddress"); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	resp, err := c.service.UpdateAddress(e.Request().Context(), middleware.UserID(e), e.Param("id"), payload.Address)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Address updated", resp)
}

func (c *AddressController) DeleteAddress(e echo.Context) error {
	err := c.service.DeleteAddress(e.Request().Context(), middleware.UserID(e), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Address deleted", nil)
}
