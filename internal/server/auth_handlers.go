package server

import (
	"runtracker/internal/models"
	"runtracker/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /api/users
func (s *Server) Register(c *fiber.Ctx) error {
	var req service.RegisterInput
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	user, err := s.userService.Register(c.Context(), req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login handles POST /api/auth/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	user, err := s.userService.Authenticate(c.Context(), req.Username, req.Password)
	if err != nil {
		return respondServiceError(c, err)
	}

	token, err := s.tokens.Issue(user.AuthView())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"authToken": token,
		"user":      user,
	})
}

// Refresh handles POST /api/auth/refresh. It re-issues a token from the
// verified claims without touching the database, so a valid session can be
// extended even if the database is briefly unavailable.
func (s *Server) Refresh(c *fiber.Ctx) error {
	authUser, ok := c.Locals("authUser").(models.AuthUser)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authorization required"))
	}

	token, err := s.tokens.Issue(authUser)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"authToken": token,
	})
}
