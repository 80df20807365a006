package controller

import (
	"github.com/Humayun167/green-nest/internal/dto"
	"github.com/Humayun167/green-nest/internal/middleware"
	"github.com/Humayun167/green-nest/internal/service"
	pkgdto "github.com/Humayun167/green-nest/pkg/dto"
	"github.com/Humayun167/green-nest/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type PostController struct {
	service service.PostService
}

func CreatePostController(g *echo.Group, service service.PostService, auth *middleware.Authenticator) {
	c := PostController{
		service: service,
	}

	g.GET("/all", c.GetPosts, auth.UserAuth)
	g.POST("/create", c.CreatePost, auth.UserAuth)
	g.GET("/user", c.GetMyPosts, auth.UserAuth)
	g.GET("/user/:userId", c.GetUserPosts, auth.UserAuth)

	g.GET("/seller/all", c.GetPosts, auth.SellerAuth)
	g.DELETE("/seller/:postId", c.DeletePostAsSeller, auth.SellerAuth)

	g.GET("/:postId", c.GetPost, auth.UserAuth)
	g.PUT("/:postId", c.UpdatePost, auth.UserAuth)
	g.DELETE("/:postId", c.DeletePost, auth.UserAuth)
	g.POST("/:postId/like", c.ToggleLike, auth.UserAuth)
	g.POST("/:postId/comment", c.AddComment, auth.UserAuth)
	g.DELETE("/:postId/comment/:commentId", c.DeleteComment, auth.UserAuth)
}

func (c *PostController) GetPosts(e echo.Context) error {
	filter := pkgdto.Filter{}
	if err := e.Bind(&filter); err != nil {
		log.Ctx(e.Request().Context()).Warn().Err(err).Str("component", "GetPosts").Msg("")
	}

	resp, err := c.service.GetPosts(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *PostController) CreatePost(e echo.Context) error {
	payload := dto.PostContentRequest{}
	if err := bindAndValidate(e, &payload, "CreatePost"); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	image, err := formImage(e, "image")
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	resp, err := c.service.CreatePost(e.Request().Context(), middleware.UserID(e), payload, image)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Post created", resp)
}

func (c *PostController) GetMyPosts(e echo.Context) error {
	resp, err := c.service.GetPostsByUser(e.Request().Context(), middleware.UserID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *PostController) GetUserPosts(e echo.Context) error {
	resp, err := c.service.GetPostsByUser(e.Request().Context(), e.Param("userId"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *PostController) GetPost(e echo.Context) error {
	resp, err := c.service.GetPostByID(e.Request().Context(), e.Param("postId"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *PostController) UpdatePost(e echo.Context) error {
	payload := dto.PostContentRequest{}
	if err := bindAndValidate(e, &payload, "UpdatePost"); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	resp, err := c.service.UpdatePost(e.Request().Context(), middleware.UserID(e), e.Param("postId"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Post updated", resp)
}

func (c *PostController) DeletePost(e echo.Context) error {
	err := c.service.DeletePost(e.Request().Context(), middleware.UserID(e), e.Param("postId"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Post deleted", nil)
}

func (c *PostController) DeletePostAsSeller(e echo.Context) error {
	err := c.service.DeletePostAsSeller(e.Request().Context(), e.Param("postId"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Post deleted", nil)
}

func (c *PostController) ToggleLike(e echo.Context) error {
	resp, err := c.service.ToggleLike(e.Request().Context(), middleware.UserID(e), e.Param("postId"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *PostController) AddComment(e echo.Context) error {
	payload := dto.CommentRequest{}
	if err := bindAndValidate(e, &payload, "AddComment"); err != nil {
		return response.WriteValidationErrorResponse(e, err)
	}

	resp, err := c.service.AddComment(e.Request().Context(), middleware.UserID(e), e.Param("postId"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Comment added", resp)
}

func (c *PostController) DeleteComment(e echo.Context) error {
	err := c.service.DeleteComment(e.Request().Context(), middleware.UserID(e), e.Param("postId"), e.Param("commentId"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Comment deleted", nil)
}
