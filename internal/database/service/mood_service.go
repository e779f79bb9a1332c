package service

import (
	"errors"
	"log/slog"
	"time"

	"github.com/mindwell/backend-go/internal/database/models"
	"github.com/mindwell/backend-go/internal/database/repository"
)

// MoodService defines the interface for mood log business logic
type MoodService interface {
	ListEntries(userID uint) ([]models.MoodEntry, error)
	// LogMood records the user's mood for the current day. It reports
	// whether a new entry was created; a repeat log on the same day
	// overwrites the existing one instead.
	LogMood(userID uint, mood int, notes string, tags []string) (*models.MoodEntry, bool, error)
}

type moodService struct {
	moodRepo repository.MoodRepository
	logger   *slog.Logger
	now      func() time.Time
}

// NewMoodService creates a new mood service instance
func NewMoodService(moodRepo repository.MoodRepository, logger *slog.Logger) MoodService {
	return &moodService{
		moodRepo: moodRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// NewMoodServiceWithClock creates a mood service with an injected clock (for testing)
func NewMoodServiceWithClock(moodRepo repository.MoodRepository, logger *slog.Logger, now func() time.Time) MoodService {
	return &moodService{
		moodRepo: moodRepo,
		logger:   logger,
		now:      now,
	}
}

func (s *moodService) ListEntries(userID uint) ([]models.MoodEntry, error) {
	return s.moodRepo.FindByUser(userID)
}

func (s *moodService) LogMood(userID uint, mood int, notes string, tags []string) (*models.MoodEntry, bool, error) {
	if mood < 1 || mood > 5 {
		return nil, false, ErrInvalidMood
	}

	entry := &models.MoodEntry{
		UserID:    userID,
		Mood:      mood,
		Notes:     notes,
		Tags:      tags,
		EntryDate: startOfDay(s.now()),
	}

	created, err := s.moodRepo.Upsert(entry)
	if err != nil {
		s.logger.Error("❌ [MoodService] Failed to store mood entry", "error", err, "user_id", userID)
		return nil, false, err
	}

	if created {
		s.logger.Info("✅ [MoodService] Mood entry created", "user_id", userID, "entry_id", entry.ID)
	} else {
		s.logger.Info("🔄 [MoodService] Mood entry overwritten", "user_id", userID, "entry_id", entry.ID)
	}
	return entry, created, nil
}

// startOfDay truncates t to midnight in the server's local timezone. Day
// boundaries are server-local, not caller-local.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Service errors
var (
	ErrInvalidMood = errors.New("mood must be between 1 and 5")
)
