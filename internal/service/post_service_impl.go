package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Humayun167/green-nest/internal/domain"
	"github.com/Humayun167/green-nest/internal/dto"
	"github.com/Humayun167/green-nest/internal/repository"
	pkgdto "github.com/Humayun167/green-nest/pkg/dto"
	"github.com/Humayun167/green-nest/pkg/errs"
	"github.com/Humayun167/green-nest/pkg/utils"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	postImageFolder = "posts"

	maxPostLength    = 500
	maxCommentLength = 200
)

type PostServiceImpl struct {
	postRepo  repository.PostRepository
	userRepo  repository.UserRepository
	imageRepo repository.ImageRepository
}

func CreatePostService(postRepo repository.PostRepository, userRepo repository.UserRepository, imageRepo repository.ImageRepository) PostService {
	return &PostServiceImpl{
		postRepo:  postRepo,
		userRepo:  userRepo,
		imageRepo: imageRepo,
	}
}

func (s *PostServiceImpl) GetPosts(ctx context.Context, filter pkgdto.Filter) (resp dto.PostPageResponse, err error) {
	filter = filter.Normalize()

	posts, totalCount, err := s.postRepo.GetPosts(ctx, filter)
	if err != nil {
		return resp, err
	}

	resp.Posts, err = s.toPostResponses(ctx, posts)
	if err != nil {
		return resp, err
	}

	meta := pkgdto.NewPaginationMetadata(filter, totalCount)
	resp.Pagination = dto.PostPagination{
		CurrentPage: meta.CurrentPage,
		TotalPages:  meta.TotalPages,
		TotalPosts:  meta.TotalCount,
		HasNextPage: meta.HasNextPage,
		HasPrevPage: meta.HasPrevPage,
	}

	return resp, nil
}

func (s *PostServiceImpl) CreatePost(ctx context.Context, userID string, req dto.PostContentRequest, image *utils.UploadedFile) (resp dto.PostResponse, err error) {
	id, err := parseUserID(userID)
	if err != nil {
		return resp, err
	}

	content, err := normalizeText(req.Content, maxPostLength)
	if err != nil {
		return resp, err
	}

	now := time.Now()
	post := domain.Post{
		UserID:    id,
		Content:   content,
		Likes:     []domain.Like{},
		Comments:  []domain.Comment{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if image != nil {
		post.Image, err = s.imageRepo.Upload(ctx, postImageFolder, *image)
		if err != nil {
			return resp, err
		}
	}

	post.ID, err = s.postRepo.AddPost(ctx, post)
	if err != nil {
		if post.Image != "" {
			if delErr := s.imageRepo.Delete(ctx, post.Image); delErr != nil {
				log.Ctx(ctx).Warn().Err(delErr).Str("component", "CreatePost").Msg("")
			}
		}
		return resp, err
	}

	return s.toPostResponse(ctx, post)
}

func (s *PostServiceImpl) GetPostsByUser(ctx context.Context, userID string) (resp []dto.PostResponse, err error) {
	id, err := parseObjectID(userID, errs.ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.GetPostsByUserID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.toPostResponses(ctx, posts)
}

func (s *PostServiceImpl) GetPostByID(ctx context.Context, postID string) (resp dto.PostResponse, err error) {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return resp, err
	}

	return s.toPostResponse(ctx, post)
}

// ToggleLike flips the caller's like on the post. Calling it twice leaves the
// post as it was.
func (s *PostServiceImpl) ToggleLike(ctx context.Context, userID string, postID string) (resp dto.LikeToggleResponse, err error) {
	id, err := parseUserID(userID)
	if err != nil {
		return resp, err
	}

	post, err := s.getPost(ctx, postID)
	if err != nil {
		return resp, err
	}

	if post.LikedBy(id) {
		if err = s.postRepo.RemoveLike(ctx, post.ID, id); err != nil {
			return resp, err
		}
	} else {
		err = s.postRepo.AddLike(ctx, post.ID, domain.Like{
			UserID:    id,
			CreatedAt: time.Now(),
		})
		if err != nil {
			return resp, err
		}
	}

	post, err = s.postRepo.GetPostByID(ctx, post.ID)
	if err != nil {
		return resp, err
	}

	resp.Liked = post.LikedBy(id)
	resp.LikesCount = len(post.Likes)

	return resp, nil
}

func (s *PostServiceImpl) AddComment(ctx context.Context, userID string, postID string, req dto.CommentRequest) (resp dto.PostResponse, err error) {
	id, err := parseUserID(userID)
	if err != nil {
		return resp, err
	}

	content, err := normalizeText(req.Content, maxCommentLength)
	if err != nil {
		return resp, err
	}

	post, err := s.getPost(ctx, postID)
	if err != nil {
		return resp, err
	}

	err = s.postRepo.AddComment(ctx, post.ID, domain.Comment{
		ID:        primitive.NewObjectID(),
		UserID:    id,
		Content:   content,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return resp, err
	}

	post, err = s.postRepo.GetPostByID(ctx, post.ID)
	if err != nil {
		return resp, err
	}

	return s.toPostResponse(ctx, post)
}

// DeleteComment lets either the comment author or the post owner remove it.
func (s *PostServiceImpl) DeleteComment(ctx context.Context, userID string, postID string, commentID string) (err error) {
	id, err := parseUserID(userID)
	if err != nil {
		return err
	}

	post, err := s.getPost(ctx, postID)
	if err != nil {
		return err
	}

	cID, err := parseObjectID(commentID, errs.ErrCommentNotFound)
	if err != nil {
		return err
	}

	comment, ok := post.FindComment(cID)
	if !ok {
		return errs.ErrCommentNotFound
	}
	if comment.UserID != id && post.UserID != id {
		return errs.ErrNotCommentOwner
	}

	return s.postRepo.RemoveComment(ctx, post.ID, cID)
}

func (s *PostServiceImpl) UpdatePost(ctx context.Context, userID string, postID string, req dto.PostContentRequest) (resp dto.PostResponse, err error) {
	post, err := s.getOwnedPost(ctx, userID, postID)
	if err != nil {
		return resp, err
	}

	content, err := normalizeText(req.Content, maxPostLength)
	if err != nil {
		return resp, err
	}

	now := time.Now()
	if err = s.postRepo.UpdatePostContent(ctx, post.ID, content, now); err != nil {
		return resp, err
	}

	post.Content = content
	post.UpdatedAt = now

	return s.toPostResponse(ctx, post)
}

func (s *PostServiceImpl) DeletePost(ctx context.Context, userID string, postID string) (err error) {
	post, err := s.getOwnedPost(ctx, userID, postID)
	if err != nil {
		return err
	}

	return s.deletePost(ctx, post)
}

// DeletePostAsSeller is the moderation path and skips the ownership check.
func (s *PostServiceImpl) DeletePostAsSeller(ctx context.Context, postID string) (err error) {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return err
	}

	return s.deletePost(ctx, post)
}

func (s *PostServiceImpl) deletePost(ctx context.Context, post domain.Post) error {
	if err := s.postRepo.DeletePost(ctx, post.ID); err != nil {
		return err
	}

	if post.Image != "" {
		if err := s.imageRepo.Delete(ctx, post.Image); err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("component", "deletePost").Str("post_id", post.ID.Hex()).Msg("post image left behind")
		}
	}

	return nil
}

func (s *PostServiceImpl) getPost(ctx context.Context, postID string) (domain.Post, error) {
	id, err := parseObjectID(postID, errs.ErrPostNotFound)
	if err != nil {
		return domain.Post{}, err
	}

	return s.postRepo.GetPostByID(ctx, id)
}

func (s *PostServiceImpl) getOwnedPost(ctx context.Context, userID string, postID string) (domain.Post, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return domain.Post{}, err
	}

	post, err := s.getPost(ctx, postID)
	if err != nil {
		return domain.Post{}, err
	}

	if post.UserID != id {
		return domain.Post{}, errs.ErrNotPostOwner
	}

	return post, nil
}

func (s *PostServiceImpl) toPostResponse(ctx context.Context, post domain.Post) (dto.PostResponse, error) {
	resp, err := s.toPostResponses(ctx, []domain.Post{post})
	if err != nil {
		return dto.PostResponse{}, err
	}
	return resp[0], nil
}

// toPostResponses resolves the authors of posts, likes and comments with a
// single user lookup.
func (s *PostServiceImpl) toPostResponses(ctx context.Context, posts []domain.Post) ([]dto.PostResponse, error) {
	var userIDs []primitive.ObjectID
	for _, post := range posts {
		userIDs = append(userIDs, post.UserID)
		for _, like := range post.Likes {
			userIDs = append(userIDs, like.UserID)
		}
		for _, comment := range post.Comments {
			userIDs = append(userIDs, comment.UserID)
		}
	}

	users, err := collectUsers(ctx, s.userRepo, userIDs)
	if err != nil {
		return nil, err
	}

	summary := func(id primitive.ObjectID) *dto.UserSummary {
		if user, ok := users[id]; ok {
			return toUserSummary(user, false)
		}
		return &dto.UserSummary{ID: id.Hex()}
	}

	resp := make([]dto.PostResponse, 0, len(posts))
	for _, post := range posts {
		postResp := dto.PostResponse{
			ID:            post.ID.Hex(),
			User:          summary(post.UserID),
			Content:       post.Content,
			Image:         post.Image,
			Likes:         make([]dto.LikeResponse, 0, len(post.Likes)),
			Comments:      make([]dto.CommentResponse, 0, len(post.Comments)),
			LikesCount:    len(post.Likes),
			CommentsCount: len(post.Comments),
			CreatedAt:     post.CreatedAt,
			UpdatedAt:     post.UpdatedAt,
		}

		for _, like := range post.Likes {
			postResp.Likes = append(postResp.Likes, dto.LikeResponse{
				User:      summary(like.UserID),
				CreatedAt: like.CreatedAt,
			})
		}

		for _, comment := range post.Comments {
			postResp.Comments = append(postResp.Comments, dto.CommentResponse{
				ID:        comment.ID.Hex(),
				User:      summary(comment.UserID),
				Content:   comment.Content,
				CreatedAt: comment.CreatedAt,
			})
		}

		resp = append(resp, postResp)
	}

	return resp, nil
}

func normalizeText(text string, maxLength int) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errs.ErrMissingFields
	}
	if utf8.RuneCountInString(text) > maxLength {
		return "", errs.ErrValidation
	}
	return text, nil
}
