package controller

import (
	"github.com/Humayun167/green-nest/internal/dto"
	"github.com/Humayun167/green-nest/internal/middleware"
	"github.com/Humayun167/green-nest/internal/service"
	"github.com/Humayun167/green-nest/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(g *echo.Group, service service.ProductService, auth *middleware.Authenticator) {
	c := ProductController{
		service: service,
	}

	g.POST("/add", c.AddProduct, auth.SellerAuth)
	g.GET("/list", c.GetProducts)
	g.POST("/id", c.GetProductByID)
	g.POST("/stock", c.UpdateStock, auth.SellerAuth)
	g.GET("/search", c.SearchProducts)
}

// AddProduct expects a multipart form with the product as JSON in
// productData and one or more files under images.
func (c *ProductController) AddProduct(e echo.Context) error {
	payload := dto.ProductPayload{}
	if err := bindFormJSON(e, "productData", &payload, "AddProduct"); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	images, err := formImages(e, "images")
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	resp, err := c.service.AddProduct(e.Request().Context(), payload, images)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Product added", resp)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	resp, err := c.service.GetProducts(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) GetProductByID(e echo.Context) error {
	payload := dto.ProductIDRequest{}
	if err := bindAndValidate(e, &payload, "GetProductByID"); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	resp, err := c.service.GetProductByID(e.Request().Context(), payload.ID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) UpdateStock(e echo.Context) error {
	payload := dto.ProductStockRequest{}
	if err := bindAndValidate(e, &payload, "UpdateStock"); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	err := c.service.UpdateStock(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Stock updated", nil)
}

func (c *ProductController) SearchProducts(e echo.Context) error {
	query := dto.ProductSearchQuery{}
	if err := e.Bind(&query); err != nil {
		log.Ctx(e.Request().Context()).Warn().Err(err).Str("component", "SearchProducts").Msg("")
	}

	resp, err := c.service.SearchProducts(e.Request().Context(), query)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
