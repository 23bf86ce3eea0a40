// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /api/profiles/:username
func (s *Server) GetProfile(c *fiber.Ctx) error {
	username := c.Params("username")
	visitorID, _ := s.optionalUserID(c)

	user, err := s.userService.GetByUsername(c.Context(), username)
	if err != nil {
		return respondServiceError(c, err)
	}
	stats, err := s.profileService.Stats(c.Context(), username, visitorID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"profile": user.Summary(),
		"stats":   stats,
	})
}

// GetProfilePosts handles GET /api/profiles/:username/posts
func (s *Server) GetProfilePosts(c *fiber.Ctx) error {
	username := c.Params("username")
	visitorID, _ := s.optionalUserID(c)

	user, err := s.userService.GetByUsername(c.Context(), username)
	if err != nil {
		return respondServiceError(c, err)
	}

	views, err := s.postService.GetPostsByAuthor(c.Context(), user.ID, visitorID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(views)
}

// GetFollowers handles GET /api/profiles/:username/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	summaries, err := s.followService.Followers(c.Context(), c.Params("username"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(summaries)
}

// GetFollowing handles GET /api/profiles/:username/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	summaries, err := s.followService.Following(c.Context(), c.Params("username"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(summaries)
}

// FollowUser handles POST /api/profiles/:username/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	username := c.Params("username")

	if err := s.followService.Follow(c.Context(), userID, username); err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Now following " + username,
	})
}

// UnfollowUser handles DELETE /api/profiles/:username/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	username := c.Params("username")

	if err := s.followService.Unfollow(c.Context(), userID, username); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Unfollowed " + username,
	})
}
