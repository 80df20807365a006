package service_test

import (
	"context"
	"math"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/Humayun167/green-nest/internal/domain"
	"github.com/Humayun167/green-nest/internal/dto"
	"github.com/Humayun167/green-nest/internal/mocks"
	"github.com/Humayun167/green-nest/internal/service"
	pkgdto "github.com/Humayun167/green-nest/pkg/dto"
	"github.com/Humayun167/green-nest/pkg/errs"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memoryPostRepository keeps posts in memory with the same update semantics
// as the document store.
type memoryPostRepository struct {
	mu    sync.Mutex
	posts map[primitive.ObjectID]domain.Post
}

func newMemoryPostRepository() *memoryPostRepository {
	return &memoryPostRepository{posts: map[primitive.ObjectID]domain.Post{}}
}

func (r *memoryPostRepository) AddPost(ctx context.Context, data domain.Post) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data.ID = primitive.NewObjectID()
	r.posts[data.ID] = data
	return data.ID, nil
}

func (r *memoryPostRepository) sorted() []domain.Post {
	posts := make([]domain.Post, 0, len(r.posts))
	for _, post := range r.posts {
		posts = append(posts, post)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	return posts
}

func (r *memoryPostRepository) GetPosts(ctx context.Context, filter pkgdto.Filter) ([]domain.Post, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	posts := r.sorted()
	start := int(filter.Skip())
	if start > len(posts) {
		start = len(posts)
	}
	end := start + filter.Limit
	if end > len(posts) {
		end = len(posts)
	}
	return posts[start:end], int64(len(posts)), nil
}

func (r *memoryPostRepository) GetPostsByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var posts []domain.Post
	for _, post := range r.sorted() {
		if post.UserID == userID {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (r *memoryPostRepository) GetPostByID(ctx context.Context, id primitive.ObjectID) (domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[id]
	if !ok {
		return domain.Post{}, errs.ErrPostNotFound
	}
	return post, nil
}

func (r *memoryPostRepository) update(id primitive.ObjectID, fn func(post *domain.Post)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[id]
	if !ok {
		return errs.ErrPostNotFound
	}
	fn(&post)
	r.posts[id] = post
	return nil
}

func (r *memoryPostRepository) UpdatePostContent(ctx context.Context, id primitive.ObjectID, content string, at time.Time) error {
	return r.update(id, func(post *domain.Post) {
		post.Content = content
		post.UpdatedAt = at
	})
}

func (r *memoryPostRepository) DeletePost(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[id]; !ok {
		return errs.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *memoryPostRepository) AddLike(ctx context.Context, postID primitive.ObjectID, like domain.Like) error {
	return r.update(postID, func(post *domain.Post) {
		if !post.LikedBy(like.UserID) {
			post.Likes = append(post.Likes, like)
		}
	})
}

func (r *memoryPostRepository) RemoveLike(ctx context.Context, postID primitive.ObjectID, userID primitive.ObjectID) error {
	return r.update(postID, func(post *domain.Post) {
		likes := post.Likes[:0]
		for _, like := range post.Likes {
			if like.UserID != userID {
				likes = append(likes, like)
			}
		}
		post.Likes = likes
	})
}

func (r *memoryPostRepository) AddComment(ctx context.Context, postID primitive.ObjectID, comment domain.Comment) error {
	return r.update(postID, func(post *domain.Post) {
		post.Comments = append(post.Comments, comment)
	})
}

func (r *memoryPostRepository) RemoveComment(ctx context.Context, postID primitive.ObjectID, commentID primitive.ObjectID) error {
	return r.update(postID, func(post *domain.Post) {
		comments := post.Comments[:0]
		for _, comment := range post.Comments {
			if comment.ID != commentID {
				comments = append(comments, comment)
			}
		}
		post.Comments = comments
	})
}

type PostServiceTestSuite struct {
	suite.Suite
	postRepo  *memoryPostRepository
	userRepo  *mocks.UserRepository
	imageRepo *mocks.ImageRepository
	svc       service.PostService
}

func (s *PostServiceTestSuite) SetupTest() {
	s.postRepo = newMemoryPostRepository()
	s.userRepo = new(mocks.UserRepository)
	s.userRepo.On("GetUsersByIDs", mock.Anything, mock.Anything).Return([]domain.User{}, nil)
	s.imageRepo = new(mocks.ImageRepository)
	s.svc = service.CreatePostService(s.postRepo, s.userRepo, s.imageRepo)
}

func (s *PostServiceTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *PostServiceTestSuite) createPost(userID primitive.ObjectID, content string) dto.PostResponse {
	resp, err := s.svc.CreatePost(context.Background(), userID.Hex(), dto.PostContentRequest{Content: content}, nil)
	s.Require().NoError(err)
	return resp
}

func (s *PostServiceTestSuite) Test_GetPostsPagination() {
	author := primitive.NewObjectID()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 15; i++ {
		_, err := s.postRepo.AddPost(context.Background(), domain.Post{
			UserID:    author,
			Content:   "post",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		s.Require().NoError(err)
	}

	type TestCase struct {
		Name          string
		Filter        pkgdto.Filter
		ExpectedPosts int
		ExpectedNext  bool
		ExpectedPrev  bool
		ExpectedPages int
	}

	testCases := []TestCase{
		{Name: "First page", Filter: pkgdto.Filter{Page: 1, Limit: 10}, ExpectedPosts: 10, ExpectedNext: true, ExpectedPrev: false, ExpectedPages: 2},
		{Name: "Second page", Filter: pkgdto.Filter{Page: 2, Limit: 10}, ExpectedPosts: 5, ExpectedNext: false, ExpectedPrev: true, ExpectedPages: 2},
		{Name: "Defaults", Filter: pkgdto.Filter{}, ExpectedPosts: 10, ExpectedNext: true, ExpectedPrev: false, ExpectedPages: 2},
		{Name: "Page far past the end", Filter: pkgdto.Filter{Page: math.MaxInt, Limit: 10}, ExpectedPosts: 0, ExpectedNext: false, ExpectedPrev: true, ExpectedPages: 2},
	}

	for _, tc := range testCases {
		resp, err := s.svc.GetPosts(context.Background(), tc.Filter)
		s.Require().NoError(err, tc.Name)
		s.Len(resp.Posts, tc.ExpectedPosts, tc.Name)
		s.Equal(tc.ExpectedNext, resp.Pagination.HasNextPage, tc.Name)
		s.Equal(tc.ExpectedPrev, resp.Pagination.HasPrevPage, tc.Name)
		s.Equal(tc.ExpectedPages, resp.Pagination.TotalPages, tc.Name)
		s.Equal(int64(15), resp.Pagination.TotalPosts, tc.Name)
	}
}

func (s *PostServiceTestSuite) Test_ToggleLikeIsIdempotent() {
	author := primitive.NewObjectID()
	liker := primitive.NewObjectID()
	post := s.createPost(author, "Repotted my monstera today")

	first, err := s.svc.ToggleLike(context.Background(), liker.Hex(), post.ID)
	s.Require().NoError(err)
	s.True(first.Liked)
	s.Equal(1, first.LikesCount)

	second, err := s.svc.ToggleLike(context.Background(), liker.Hex(), post.ID)
	s.Require().NoError(err)
	s.False(second.Liked)
	s.Equal(0, second.LikesCount)

	resp, err := s.svc.GetPostByID(context.Background(), post.ID)
	s.Require().NoError(err)
	s.Empty(resp.Likes)
}

func (s *PostServiceTestSuite) Test_DeleteComment() {
	owner := primitive.NewObjectID()
	commenter := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	type TestCase struct {
		Name        string
		Actor       primitive.ObjectID
		ExpectedErr error
	}

	testCases := []TestCase{
		{Name: "Comment author", Actor: commenter},
		{Name: "Post owner", Actor: owner},
		{Name: "Someone else", Actor: stranger, ExpectedErr: errs.ErrNotCommentOwner},
	}

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			post := s.createPost(owner, "Look at this fern")
			withComment, err := s.svc.AddComment(context.Background(), commenter.Hex(), post.ID, dto.CommentRequest{Content: "Lovely!"})
			s.Require().NoError(err)
			s.Require().Len(withComment.Comments, 1)

			err = s.svc.DeleteComment(context.Background(), tc.Actor.Hex(), post.ID, withComment.Comments[0].ID)
			if tc.ExpectedErr != nil {
				s.ErrorIs(err, tc.ExpectedErr)
				s.Equal(403, errs.GetErrorStatusCode(err))
				return
			}
			s.Require().NoError(err)

			resp, err := s.svc.GetPostByID(context.Background(), post.ID)
			s.Require().NoError(err)
			s.Empty(resp.Comments)
		})
	}
}

func (s *PostServiceTestSuite) Test_OwnerOnlyChanges() {
	owner := primitive.NewObjectID()
	other := primitive.NewObjectID()
	post := s.createPost(owner, "Original")

	_, err := s.svc.UpdatePost(context.Background(), other.Hex(), post.ID, dto.PostContentRequest{Content: "Hijacked"})
	s.ErrorIs(err, errs.ErrNotPostOwner)

	err = s.svc.DeletePost(context.Background(), other.Hex(), post.ID)
	s.ErrorIs(err, errs.ErrNotPostOwner)

	updated, err := s.svc.UpdatePost(context.Background(), owner.Hex(), post.ID, dto.PostContentRequest{Content: " Edited "})
	s.Require().NoError(err)
	s.Equal("Edited", updated.Content)

	s.Require().NoError(s.svc.DeletePost(context.Background(), owner.Hex(), post.ID))
	_, err = s.svc.GetPostByID(context.Background(), post.ID)
	s.ErrorIs(err, errs.ErrPostNotFound)
}

func (s *PostServiceTestSuite) Test_CreatePostValidation() {
	author := primitive.NewObjectID()

	_, err := s.svc.CreatePost(context.Background(), author.Hex(), dto.PostContentRequest{Content: "   "}, nil)
	s.ErrorIs(err, errs.ErrMissingFields)

	long := make([]rune, 501)
	for i := range long {
		long[i] = 'a'
	}
	_, err = s.svc.CreatePost(context.Background(), author.Hex(), dto.PostContentRequest{Content: string(long)}, nil)
	s.ErrorIs(err, errs.ErrValidation)
}

func TestPostServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostServiceTestSuite))
}
