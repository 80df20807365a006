package controller

import (
	"github.com/Humayun167/green-nest/internal/dto"
	"github.com/Humayun167/green-nest/internal/middleware"
	"github.com/Humayun167/green-nest/internal/service"
	"github.com/Humayun167/green-nest/pkg/errs"
	"github.com/Humayun167/green-nest/pkg/response"
	"github.com/Humayun167/green-nest/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	service service.UserService
	auth    *middleware.Authenticator
}

func CreateUserController(g *echo.Group, service service.UserService, auth *middleware.Authenticator, limiter echo.MiddlewareFunc) {
	c := UserController{
		service: service,
		auth:    auth,
	}

	g.POST("/register", c.Register, limiter)
	g.POST("/login", c.Login, limiter)
	g.GET("/is-auth", c.IsAuth, auth.UserAuth)
	g.GET("/logout", c.Logout, auth.UserAuth)
	g.PUT("/update-profile", c.UpdateProfile, auth.UserAuth)
	g.PUT("/update-password", c.UpdatePassword, auth.UserAuth)
	g.GET("/order-count", c.GetOrderCount, auth.UserAuth)
	g.POST("/upload-image", c.UploadImage, auth.UserAuth)
}

func (c *UserController) Register(e echo.Context) error {
	payload := dto.RegisterRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Warn().Err(err).Str("component", "Register").Msg("")
		return response.WriteErrorResponse(e, errs.ErrMissingFields, nil)
	}

	resp, err := c.service.Register(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	c.auth.IssueToken(e, middleware.UserTokenCookie, resp.Token)

	return response.WriteCreatedResponse(e, "User registered", resp)
}

func (c *UserController) Login(e echo.Context) error {
	payload := dto.LoginRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Warn().Err(err).Str("component", "Login").Msg("")
		return response.WriteErrorResponse(e, errs.ErrInvalidCredentialsEmail, nil)
	}

	resp, err := c.service.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	c.auth.IssueToken(e, middleware.UserTokenCookie, resp.Token)

	return response.WriteSuccessResponse(e, "Logged in", resp)
}

func (c *UserController) IsAuth(e echo.Context) error {
	resp, err := c.service.GetProfile(e.Request().Context(), middleware.UserID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *UserController) Logout(e echo.Context) error {
	c.auth.RevokeToken(e, middleware.UserTokenCookie)

	return response.WriteSuccessResponse(e, "Logged out", nil)
}

func (c *UserController) UpdateProfile(e echo.Context) error {
	payload := dto.UpdateProfileRequest{}
	if err := bindAndValidate(e, &payload, "UpdateProfile"); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	resp, err := c.service.UpdateProfile(e.Request().Context(), middleware.UserID(e), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Profile updated", resp)
}

func (c *UserController) UpdatePassword(e echo.Context) error {
	payload := dto.UpdatePasswordRequest{}
	if err := bindAndValidate(e, &payload, "UpdatePassword"); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	err := c.service.UpdatePassword(e.Request().Context(), middleware.UserID(e), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Password updated", nil)
}

func (c *UserController) GetOrderCount(e echo.Context) error {
	resp, err := c.service.GetOrderCount(e.Request().Context(), middleware.UserID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *UserController) UploadImage(e echo.Context) error {
	fh, err := e.FormFile("image")
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrImageRequired, nil)
	}

	image, err := utils.ReadImage(fh)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	resp, err := c.service.UploadProfileImage(e.Request().Context(), middleware.UserID(e), image)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Profile image updated", resp)
}
