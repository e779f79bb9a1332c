package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mindwell/backend-go/internal/database"
	"github.com/mindwell/backend-go/internal/database/models"
	"github.com/mindwell/backend-go/internal/database/repository"
)

// CounselorService defines the interface for counselor directory business logic
type CounselorService interface {
	ListCounselors(ctx context.Context) ([]models.Counselor, error)
	CreateCounselor(ctx context.Context, counselor *models.Counselor) error
	UpdateCounselor(ctx context.Context, id uint, name, specialty, bio string) (*models.Counselor, error)
	DeleteCounselor(ctx context.Context, id uint) error
}

type counselorService struct {
	counselorRepo repository.CounselorRepository
	cache         *database.RedisClient
	logger        *slog.Logger
}

// NewCounselorService creates a new counselor service instance. cache may be
// nil, in which case every list hits the database.
func NewCounselorService(counselorRepo repository.CounselorRepository, cache *database.RedisClient, logger *slog.Logger) CounselorService {
	return &counselorService{
		counselorRepo: counselorRepo,
		cache:         cache,
		logger:        logger,
	}
}

func (s *counselorService) ListCounselors(ctx context.Context) ([]models.Counselor, error) {
	if s.cache != nil {
		var cached []models.Counselor
		if s.cache.GetJSON(ctx, database.CacheKeyCounselors, &cached) {
			s.logger.Debug("⚡ [CounselorService] Serving counselors from cache")
			return cached, nil
		}
	}

	counselors, err := s.counselorRepo.FindAll()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetJSON(ctx, database.CacheKeyCounselors, counselors)
	}
	return counselors, nil
}

func (s *counselorService) CreateCounselor(ctx context.Context, counselor *models.Counselor) error {
	// Client payloads can never mint a protected profile
	counselor.IsDefault = false

	if err := s.counselorRepo.Create(counselor); err != nil {
		s.logger.Error("❌ [CounselorService] Failed to create counselor", "error", err)
		return err
	}

	s.invalidate(ctx)
	s.logger.Info("✅ [CounselorService] Counselor created", "counselor_id", counselor.ID)
	return nil
}

func (s *counselorService) UpdateCounselor(ctx context.Context, id uint, name, specialty, bio string) (*models.Counselor, error) {
	counselor, err := s.counselorRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if counselor.IsDefault {
		return nil, ErrDefaultCounselor
	}

	counselor.Name = name
	counselor.Specialty = specialty
	counselor.Bio = bio

	if err := s.counselorRepo.Update(counselor); err != nil {
		s.logger.Error("❌ [CounselorService] Failed to update counselor", "error", err)
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info("✅ [CounselorService] Counselor updated", "counselor_id", counselor.ID)
	return counselor, nil
}

func (s *counselorService) DeleteCounselor(ctx context.Context, id uint) error {
	counselor, err := s.counselorRepo.FindByID(id)
	if err != nil {
		return err
	}

	if counselor.IsDefault {
		return ErrDefaultCounselor
	}

	if err := s.counselorRepo.Delete(id); err != nil {
		s.logger.Error("❌ [CounselorService] Failed to delete counselor", "error", err)
		return err
	}

	s.invalidate(ctx)
	s.logger.Info("✅ [CounselorService] Counselor deleted", "counselor_id", id)
	return nil
}

func (s *counselorService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, database.CacheKeyCounselors)
	}
}

// Service errors
var (
	ErrDefaultCounselor = errors.New("default counselors cannot be modified")
)
