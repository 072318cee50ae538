package service

import (
	"context"
	"strings"

	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

const (
	// MaxPostTextLen bounds the text of a single post.
	MaxPostTextLen = 5000
	// MaxPageSize caps every list endpoint.
	MaxPageSize = 50
)

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

type CreatePostInput struct {
	UserID uint
	Text   string
	Image  string
}

type ListPostsInput struct {
	Limit         int
	Offset        int
	CurrentUserID uint
}

type DeletePostInput struct {
	UserID uint
	PostID uint
}

// LikeResult is the outcome of a like toggle.
type LikeResult struct {
	PostID uint  `json:"post_id"`
	Likes  int64 `json:"likes"`
	Liked  bool  `json:"liked"`
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

// CreatePost stores a new post stamped with a snapshot of the author's
// current username. Text and image are each optional.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (post *models.Post, err error) {
	span, ctx := observability.NewSpan(ctx, "post.create")
	span.AddAttributes(attribute.Int64("user.id", int64(in.UserID)))
	defer func() {
		span.SetError(err)
		span.End()
	}()

	if len(in.Text) > MaxPostTextLen {
		return nil, models.NewValidationError("Text too long (max 5000 characters)")
	}

	author, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	post = &models.Post{
		Text:  in.Text,
		Image: strings.TrimSpace(in.Image),
		Author: models.Author{
			UserID:   author.ID,
			Username: author.Username,
		},
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	// Re-read so the computed fields are populated.
	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

func (s *PostService) GetPost(ctx context.Context, postID, currentUserID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, postID, currentUserID)
}

// ListPosts returns the global feed newest first.
func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	limit, offset := clampPage(in.Limit, in.Offset)
	return s.postRepo.List(ctx, limit, offset, in.CurrentUserID)
}

// ListUserPosts returns one user's posts newest first. The user must exist.
func (s *PostService) ListUserPosts(ctx context.Context, authorID uint, in ListPostsInput) ([]*models.Post, error) {
	if _, err := s.userRepo.GetByID(ctx, authorID); err != nil {
		return nil, err
	}
	limit, offset := clampPage(in.Limit, in.Offset)
	return s.postRepo.GetByAuthorID(ctx, authorID, limit, offset, in.CurrentUserID)
}

// ToggleLike flips the caller's like on a post and reports the new state.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID uint) (res *LikeResult, err error) {
	span, ctx := observability.NewSpan(ctx, "post.toggle_like")
	span.AddAttributes(
		attribute.Int64("user.id", int64(userID)),
		attribute.Int64("post.id", int64(postID)),
	)
	defer func() {
		span.SetError(err)
		span.End()
	}()

	if _, err := s.postRepo.GetByID(ctx, postID, userID); err != nil {
		return nil, err
	}

	isLiked, err := s.postRepo.IsLiked(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	if isLiked {
		if err := s.postRepo.Unlike(ctx, userID, postID); err != nil {
			return nil, err
		}
	} else {
		if err := s.postRepo.Like(ctx, userID, postID); err != nil {
			return nil, err
		}
	}

	likes, err := s.postRepo.CountLikes(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &LikeResult{PostID: postID, Likes: likes, Liked: !isLiked}, nil
}

// DeletePost removes a post the caller owns.
func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID, in.UserID)
	if err != nil {
		return err
	}
	if post.Author.UserID != in.UserID {
		return models.NewForbiddenError("You can only delete your own posts")
	}
	return s.postRepo.Delete(ctx, in.PostID)
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 || limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
