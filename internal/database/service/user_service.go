package service

import (
	"log/slog"

	"github.com/mindwell/backend-go/internal/database/models"
	"github.com/mindwell/backend-go/internal/database/repository"
)

// UserService defines the interface for admin user management
type UserService interface {
	ListStudents() ([]models.User, error)
	// SuspendUser marks the account as suspended. Suspended users keep their
	// data but can no longer log in.
	SuspendUser(id uint) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewUserService creates a new user management service instance
func NewUserService(userRepo repository.UserRepository, logger *slog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *userService) ListStudents() ([]models.User, error) {
	return s.userRepo.FindStudents()
}

func (s *userService) SuspendUser(id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	user.IsSuspended = true
	if err := s.userRepo.Update(user); err != nil {
		s.logger.Error("❌ [UserService] Failed to suspend user", "error", err, "user_id", id)
		return nil, err
	}

	s.logger.Info("🚫 [UserService] User suspended", "user_id", user.ID, "name", user.Name)
	return user, nil
}
