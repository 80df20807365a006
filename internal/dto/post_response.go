package dto

import "time"

type LikeResponse struct {
	User      *UserSummary `json:"userId"`
	CreatedAt time.Time    `json:"createdAt"`
}

type CommentResponse struct {
	ID        string       `json:"_id"`
	User      *UserSummary `json:"userId"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"createdAt"`
}

type PostResponse struct {
	ID            string            `json:"_id"`
	User          *UserSummary      `json:"userId"`
	Content       string            `json:"content"`
	Image         string            `json:"image,omitempty"`
	Likes         []LikeResponse    `json:"likes"`
	Comments      []CommentResponse `json:"comments"`
	LikesCount    int               `json:"likesCount"`
	CommentsCount int               `json:"commentsCount"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

type PostPagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalPosts  int64 `json:"totalPosts"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

type PostPageResponse struct {
	Posts      []PostResponse `json:"posts"`
	Pagination PostPagination `json:"pagination"`
}

type LikeToggleResponse struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likesCount"`
}
