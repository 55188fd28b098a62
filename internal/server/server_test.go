package server

import (
	"context"
	"testing"
	"time"

	"runtracker/internal/auth"
	"runtracker/internal/config"
	"runtracker/internal/models"
	"runtracker/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteWithPosts(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPostRepository is a mock of the PostRepository interface
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepository) Upvote(ctx context.Context, userID, postID uint) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

const testJWTSecret = "test-secret"

// newTestServer wires a Server around mock repositories and registers the
// full route table on a fresh Fiber app.
func newTestServer(t *testing.T) (*fiber.App, *Server, *MockUserRepository, *MockPostRepository) {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	userRepo := new(MockUserRepository)
	postRepo := new(MockPostRepository)

	cfg := &config.Config{
		JWTSecret:  testJWTSecret,
		JWTExpiry:  time.Hour,
		BcryptCost: bcrypt.MinCost,
		Env:        "test",
	}

	s := &Server{
		config:   cfg,
		tokens:   auth.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry),
		userRepo: userRepo,
		postRepo: postRepo,
	}
	s.userService = service.NewUserService(userRepo, cfg.BcryptCost)
	s.postService = service.NewPostService(postRepo, userRepo)

	app := fiber.New()
	s.SetupRoutes(app)
	return app, s, userRepo, postRepo
}

// bearerFor issues a token for the given user, as login would.
func bearerFor(t *testing.T, s *Server, user models.AuthUser) string {
	t.Helper()
	token, err := s.tokens.Issue(user)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return "Bearer " + token
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}
