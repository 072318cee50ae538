package server

import (
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /comment/:postId
func (s *Server) CreateComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "postId", "post ID")
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, svcErr := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		UserID: userID,
		PostID: postID,
		Text:   req.Text,
	})
	if svcErr != nil {
		return fail(c, svcErr)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Comment created successfully",
		"comment": comment,
	})
}

// GetComments handles GET /comment/:postId — a post's comments oldest first,
// capped at the page size. No auth required.
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId", "post ID")
	if err != nil {
		return nil
	}

	comments, svcErr := s.commentService.ListComments(c.Context(), postID)
	if svcErr != nil {
		return fail(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"message":  "Comments fetched successfully",
		"comments": comments,
	})
}

// DeleteComment handles DELETE /comment/:commentId
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	commentID, err := s.parseID(c, "commentId", "comment ID")
	if err != nil {
		return nil
	}

	if svcErr := s.commentService.DeleteComment(c.Context(), service.DeleteCommentInput{
		UserID:    userID,
		CommentID: commentID,
	}); svcErr != nil {
		return fail(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"message": "Comment deleted successfully",
	})
}
