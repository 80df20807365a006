package controller

import (
	"github.com/Humayun167/green-nest/internal/dto"
	"github.com/Humayun167/green-nest/internal/middleware"
	"github.com/Humayun167/green-nest/internal/service"
	pkgdto "github.com/Humayun167/green-nest/pkg/dto"
	"github.com/Humayun167/green-nest/pkg/errs"
	"github.com/Humayun167/green-nest/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type SellerController struct {
	sellerService service.SellerService
	userService   service.UserService
	auth          *middleware.Authenticator
}

func CreateSellerController(g *echo.Group, sellerService service.SellerService, userService service.UserService, auth *middleware.Authenticator, limiter echo.MiddlewareFunc) {
	c := SellerController{
		sellerService: sellerService,
		userService:   userService,
		auth:          auth,
	}

	g.POST("/login", c.Login, limiter)
	g.GET("/is-auth", c.IsAuth, auth.SellerAuth)
	g.GET("/logout", c.Logout, auth.SellerAuth)
	g.GET("/users", c.GetUsers, auth.SellerAuth)
}

func (c *SellerController) Login(e echo.Context) error {
	payload := dto.LoginRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Warn().Err(err).Str("component", "SellerLogin").Msg("")
		return response.WriteErrorResponse(e, errs.ErrInvalidCredentialsEmail, nil)
	}

	resp, err := c.sellerService.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	c.auth.IssueToken(e, middleware.SellerTokenCookie, resp.Token)

	return response.WriteSuccessResponse(e, "Logged in", resp)
}

func (c *SellerController) IsAuth(e echo.Context) error {
	return response.WriteSuccessResponse(e, "", map[string]string{"email": middleware.SellerEmail(e)})
}

func (c *SellerController) Logout(e echo.Context) error {
	c.auth.RevokeToken(e, middleware.SellerTokenCookie)

	return response.WriteSuccessResponse(e, "Logged out", nil)
}

func (c *SellerController) GetUsers(e echo.Context) error {
	filter := pkgdto.Filter{}
	if err := e.Bind(&filter); err != nil {
		log.Ctx(e.Request().Context()).Warn().Err(err).Str("component", "GetUsers").Msg("")
	}

	resp, err := c.userService.GetUsers(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
