package server

import (
	"runtracker/internal/models"
	"runtracker/internal/repository"
	"runtracker/internal/service"

	"github.com/gofiber/fiber/v2"
)

// runPayload is the wire format shared by create and update.
type runPayload struct {
	Title           string  `json:"title"`
	DistanceValue   float64 `json:"distanceValue"`
	DistanceUnit    string  `json:"distanceUnit"`
	DurationHours   int     `json:"durationHours"`
	DurationMinutes int     `json:"durationMinutes"`
	DurationSeconds int     `json:"durationSeconds"`
	RunType         string  `json:"runType"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	Description     string  `json:"description"`
	Privacy         string  `json:"privacy"`
}

func (p runPayload) toInput(userID uint) service.CreateRunInput {
	return service.CreateRunInput{
		UserID:          userID,
		Title:           p.Title,
		DistanceValue:   p.DistanceValue,
		DistanceUnit:    p.DistanceUnit,
		DurationHours:   p.DurationHours,
		DurationMinutes: p.DurationMinutes,
		DurationSeconds: p.DurationSeconds,
		RunType:         p.RunType,
		Date:            p.Date,
		Time:            p.Time,
		Description:     p.Description,
		Privacy:         p.Privacy,
	}
}

// GetPosts handles GET /api/posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	p := parsePagination(c, repository.DefaultListLimit)

	posts, err := s.postService.ListRuns(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	if posts == nil {
		posts = []*models.Post{}
	}

	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetRun(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}

// GetUserPosts handles GET /api/users/:id/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	p := parsePagination(c, repository.DefaultListLimit)

	posts, err := s.postService.GetUserRuns(c.Context(), id, p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	if posts == nil {
		posts = []*models.Post{}
	}

	return c.JSON(posts)
}

// CreatePost handles POST /api/posts. The owner is always the authenticated
// user; any owner field in the payload is ignored.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req runPayload
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	post, err := s.postService.CreateRun(c.Context(), req.toInput(currentUserID(c)))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req runPayload
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}

	post, err := s.postService.UpdateRun(c.Context(), service.UpdateRunInput{
		UserID:         currentUserID(c),
		PostID:         id,
		CreateRunInput: req.toInput(currentUserID(c)),
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeleteRun(c.Context(), currentUserID(c), id); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// UpvotePost handles POST /api/posts/:id/upvote
func (s *Server) UpvotePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.UpvoteRun(c.Context(), currentUserID(c), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}
