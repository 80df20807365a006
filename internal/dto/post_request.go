package dto

type PostContentRequest struct {
	Content string `json:"content" form:"content" validate:"required,max=500"`
}

type CommentRequest struct {
	Content string `json:"content" validate:"required,max=200"`
}
