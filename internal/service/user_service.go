// Package service contains the business logic between handlers and repositories.
package service

import (
	"context"

	"runtracker/internal/auth"
	"runtracker/internal/models"
	"runtracker/internal/repository"
	"runtracker/internal/validation"
)

type UserService struct {
	userRepo   repository.UserRepository
	bcryptCost int
}

type RegisterInput struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	Avatar      int    `json:"avatar"`
}

type UpdateProfileInput struct {
	UserID      uint
	Name        string
	DisplayName string
	Avatar      *int
}

func NewUserService(userRepo repository.UserRepository, bcryptCost int) *UserService {
	return &UserService{userRepo: userRepo, bcryptCost: bcryptCost}
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// Register validates the payload, hashes the password and creates the user.
// Username uniqueness is left to the database constraint so concurrent
// registrations cannot both succeed.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validation.ValidateName(in.Name); err != nil {
		return nil, err
	}
	if err := validation.ValidateDisplayName(in.DisplayName); err != nil {
		return nil, err
	}
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, err
	}
	if err := validation.ValidateAvatar(in.Avatar); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:        in.Name,
		DisplayName: in.DisplayName,
		Username:    in.Username,
		Password:    hash,
		Avatar:      in.Avatar,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies credentials for login. Unknown username and wrong
// password produce the same error so the response does not reveal which
// usernames exist.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.CheckPassword(password, user.Password) {
		return nil, models.NewUnauthorizedError("Incorrect username or password")
	}
	return user, nil
}

// UpdateProfile applies the editable fields. Username and password are
// immutable through this path.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		if err := validation.ValidateName(in.Name); err != nil {
			return nil, err
		}
		user.Name = in.Name
	}
	if in.DisplayName != "" {
		if err := validation.ValidateDisplayName(in.DisplayName); err != nil {
			return nil, err
		}
		user.DisplayName = in.DisplayName
	}
	if in.Avatar != nil {
		if err := validation.ValidateAvatar(*in.Avatar); err != nil {
			return nil, err
		}
		user.Avatar = *in.Avatar
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount removes the user and everything they own.
func (s *UserService) DeleteAccount(ctx context.Context, id uint) error {
	return s.userRepo.DeleteWithPosts(ctx, id)
}
