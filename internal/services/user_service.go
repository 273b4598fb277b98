package services

import (
	"fmt"

	"github.com/google/uuid"

	"dailydiet/internal/models"
	"dailydiet/internal/repositories"
)

// UserService handles business logic related to users.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// CreateUser persists a new user and returns it with its generated id. The
// caller is responsible for establishing the session cookie from the id.
func (s *UserService) CreateUser(name string, avatar *string) (*models.User, error) {
	user := &models.User{
		ID:     uuid.New().String(),
		Name:   name,
		Avatar: avatar,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// ListUsers retrieves all users. No pagination: the tool is personal and the
// user table stays small.
func (s *UserService) ListUsers() ([]models.User, error) {
	return s.repo.GetAll()
}
