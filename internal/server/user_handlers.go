package server

import (
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /user/profile
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := s.userService.GetUserByID(c.Context(), userID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Profile fetched successfully",
		"user":    user,
	})
}

// UpdateMyProfile handles PUT /user/profile
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Username     string `json:"username"`
		ProfileImage string `json:"profile_image"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:       userID,
		Username:     req.Username,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
		"user":    user,
	})
}

// GetMyPosts handles GET /user/posts
func (s *Server) GetMyPosts(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	p := parsePagination(c, maxPaginationLimit)

	posts, err := s.postService.ListUserPosts(c.Context(), userID, service.ListPostsInput{
		Limit:         p.Limit,
		Offset:        p.Offset,
		CurrentUserID: userID,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Posts fetched successfully",
		"posts":   posts,
	})
}

// GetUserProfile handles GET /user/user/:userId — another user's public
// profile together with their recent posts. Auth is optional; a valid token
// only affects the liked flag on the posts.
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "userId", "user ID")
	if err != nil {
		return nil
	}
	viewerID := currentUserID(c)

	user, svcErr := s.userService.GetUserByID(c.Context(), targetID)
	if svcErr != nil {
		return fail(c, svcErr)
	}

	p := parsePagination(c, maxPaginationLimit)
	posts, svcErr := s.postService.ListUserPosts(c.Context(), targetID, service.ListPostsInput{
		Limit:         p.Limit,
		Offset:        p.Offset,
		CurrentUserID: viewerID,
	})
	if svcErr != nil {
		return fail(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"message": "User fetched successfully",
		"user":    user,
		"posts":   posts,
	})
}
