package server

import (
	"runtracker/internal/models"
	"runtracker/internal/service"

	"github.com/gofiber/fiber/v2"
)

// requireSelf checks that the authenticated user is operating on their own
// account. A mismatch is an authorization failure, not a missing resource.
func (s *Server) requireSelf(c *fiber.Ctx, id uint) error {
	if currentUserID(c) != id {
		_ = models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("You can only access your own account"))
		return errResponseWritten
	}
	return nil
}

// GetUser handles GET /api/users/:id
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.requireSelf(c, id); err != nil {
		return nil
	}

	user, err := s.userService.GetUserByID(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(user)
}

// UpdateUser handles PUT /api/users/:id
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.requireSelf(c, id); err != nil {
		return nil
	}

	var req struct {
		ID          *uint  `json:"id"`
		Name        string `json:"name"`
		DisplayName string `json:"displayName"`
		Avatar      *int   `json:"avatar"`
	}
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	// A body carrying a different ID than the path is a malformed request,
	// not an attempt we silently correct.
	if req.ID != nil && *req.ID != id {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError("id", "Body ID does not match URL"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:      id,
		Name:        req.Name,
		DisplayName: req.DisplayName,
		Avatar:      req.Avatar,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(user)
}

// DeleteUser handles DELETE /api/users/:id
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.requireSelf(c, id); err != nil {
		return nil
	}

	if err := s.userService.DeleteAccount(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
