package service

import (
	"context"
	"time"

	"runtracker/internal/models"
	"runtracker/internal/repository"
	"runtracker/internal/validation"
)

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	now      func() time.Time
}

type CreateRunInput struct {
	UserID          uint
	Title           string
	DistanceValue   float64
	DistanceUnit    string
	DurationHours   int
	DurationMinutes int
	DurationSeconds int
	RunType         string
	Date            string
	Time            string
	Description     string
	Privacy         string
}

type UpdateRunInput struct {
	UserID uint
	PostID uint
	CreateRunInput
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo, now: time.Now}
}

func (s *PostService) GetRun(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *PostService) ListRuns(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.postRepo.List(ctx, limit, offset)
}

// GetUserRuns lists one user's runs, newest first. The owner must exist so a
// stale profile link yields 404 rather than an empty feed.
func (s *PostService) GetUserRuns(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.postRepo.GetByUserID(ctx, userID, limit, offset)
}

// CreateRun creates a run owned by the authenticated user. The owner check
// fails closed: if the owner lookup errors the run is not created.
func (s *PostService) CreateRun(ctx context.Context, in CreateRunInput) (*models.Post, error) {
	post := &models.Post{
		Title:           in.Title,
		DistanceValue:   in.DistanceValue,
		DistanceUnit:    in.DistanceUnit,
		DurationHours:   in.DurationHours,
		DurationMinutes: in.DurationMinutes,
		DurationSeconds: in.DurationSeconds,
		RunType:         in.RunType,
		Date:            in.Date,
		Time:            in.Time,
		Description:     in.Description,
		Privacy:         in.Privacy,
		UserID:          in.UserID,
	}
	if post.Privacy == "" {
		post.Privacy = models.PrivacyPublic
	}

	if err := validation.ValidateRun(post, s.now()); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// UpdateRun replaces the run's fields. Only the owner may update; the post's
// ownership never changes.
func (s *PostService) UpdateRun(ctx context.Context, in UpdateRunInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only update your own runs")
	}

	post.Title = in.Title
	post.DistanceValue = in.DistanceValue
	post.DistanceUnit = in.DistanceUnit
	post.DurationHours = in.DurationHours
	post.DurationMinutes = in.DurationMinutes
	post.DurationSeconds = in.DurationSeconds
	post.RunType = in.RunType
	post.Date = in.Date
	post.Time = in.Time
	post.Description = in.Description
	if in.Privacy != "" {
		post.Privacy = in.Privacy
	}

	if err := validation.ValidateRun(post, s.now()); err != nil {
		return nil, err
	}
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, in.PostID)
}

// DeleteRun removes a run. Only the owner may delete.
func (s *PostService) DeleteRun(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewUnauthorizedError("You can only delete your own runs")
	}
	return s.postRepo.Delete(ctx, postID)
}

// UpvoteRun records an upvote. Repeats are no-ops; there is no un-upvote.
func (s *PostService) UpvoteRun(ctx context.Context, userID, postID uint) (*models.Post, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	if err := s.postRepo.Upvote(ctx, userID, postID); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, postID)
}
