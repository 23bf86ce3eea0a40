// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"quill/internal/models"
	"quill/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	view, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		AuthorID: userID,
		Title:    req.Title,
		Body:     req.Body,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(view)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	visitorID, _ := s.optionalUserID(c)

	view, err := s.postService.GetPost(c.Context(), id, visitorID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(view)
}

// SearchPosts handles GET /api/posts/search?q=...
func (s *Server) SearchPosts(c *fiber.Ctx) error {
	visitorID, _ := s.optionalUserID(c)

	views, err := s.postService.SearchPosts(c.Context(), c.Query("q"), visitorID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(views)
}

// Feed handles GET /api/feed
func (s *Server) Feed(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	views, err := s.postService.Feed(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(views)
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	result, err := s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		AuthorID: userID,
		PostID:   postID,
		Title:    req.Title,
		Body:     req.Body,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(result)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), postID, userID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post deleted"})
}
