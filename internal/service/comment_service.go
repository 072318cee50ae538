package service

import (
	"context"
	"strings"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// MaxCommentLen bounds the text of a single comment.
const MaxCommentLen = 2000

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

type CreateCommentInput struct {
	UserID uint
	PostID uint
	Text   string
}

type DeleteCommentInput struct {
	UserID    uint
	CommentID uint
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// CreateComment attaches a comment to an existing post. The text is trimmed
// before validation and storage, so whitespace-only input is rejected.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(text) > MaxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 2000 characters)")
	}

	if _, err := s.postRepo.GetByID(ctx, in.PostID, in.UserID); err != nil {
		return nil, err
	}
	author, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Text:   text,
		PostID: in.PostID,
		Author: models.Author{
			UserID:   author.ID,
			Username: author.Username,
		},
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns a post's comments oldest first, capped at the page
// size. Comments outlive their post, so no post-existence check here: a
// deleted or unknown post simply yields an empty list.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID, MaxPageSize)
}

// DeleteComment removes a comment the caller owns.
func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) error {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return err
	}
	if comment.Author.UserID != in.UserID {
		return models.NewForbiddenError("You can only delete your own comments")
	}
	return s.commentRepo.Delete(ctx, in.CommentID)
}
