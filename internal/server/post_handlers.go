package server

import (
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /post/create
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Text  string `json:"text"`
		Image string `json:"image"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		UserID: userID,
		Text:   req.Text,
		Image:  req.Image,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Post created successfully",
		"post":    post,
	})
}

// GetPosts handles GET /post/all — the global feed, newest first.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	p := parsePagination(c, maxPaginationLimit)

	posts, err := s.postService.ListPosts(c.Context(), service.ListPostsInput{
		Limit:         p.Limit,
		Offset:        p.Offset,
		CurrentUserID: currentUserID(c),
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Posts fetched successfully",
		"posts":   posts,
	})
}

// GetPost handles GET /post/:postId
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId", "post ID")
	if err != nil {
		return nil
	}

	post, svcErr := s.postService.GetPost(c.Context(), postID, currentUserID(c))
	if svcErr != nil {
		return fail(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"message": "Post fetched successfully",
		"post":    post,
	})
}

// ToggleLike handles POST /post/:postId/like. Liking an already-liked post
// removes the like.
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "postId", "post ID")
	if err != nil {
		return nil
	}

	result, svcErr := s.postService.ToggleLike(c.Context(), userID, postID)
	if svcErr != nil {
		return fail(c, svcErr)
	}

	msg := "Post liked"
	if !result.Liked {
		msg = "Like removed"
	}
	return c.JSON(fiber.Map{
		"message": msg,
		"post_id": result.PostID,
		"likes":   result.Likes,
		"liked":   result.Liked,
	})
}

// DeletePost handles DELETE /user/post/:postId
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "postId", "post ID")
	if err != nil {
		return nil
	}

	if svcErr := s.postService.DeletePost(c.Context(), service.DeletePostInput{
		UserID: userID,
		PostID: postID,
	}); svcErr != nil {
		return fail(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"message": "Post deleted successfully",
	})
}
