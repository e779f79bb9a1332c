package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mindwell/backend-go/internal/database/models"
)

// MoodRepository defines the interface for mood entry data operations
type MoodRepository interface {
	FindByUser(userID uint) ([]models.MoodEntry, error)
	// Upsert stores the entry for (entry.UserID, entry.EntryDate), creating
	// the day's row or overwriting mood/notes/tags on the existing one.
	// It reports whether a new row was created.
	Upsert(entry *models.MoodEntry) (bool, error)
}

type moodRepository struct {
	db *gorm.DB
}

// NewMoodRepository creates a new mood repository instance
func NewMoodRepository(db *gorm.DB) MoodRepository {
	return &moodRepository{db: db}
}

func (r *moodRepository) FindByUser(userID uint) ([]models.MoodEntry, error) {
	var entries []models.MoodEntry
	err := r.db.Where("user_id = ?", userID).Order("entry_date DESC").Find(&entries).Error
	return entries, err
}

func (r *moodRepository) Upsert(entry *models.MoodEntry) (bool, error) {
	var existing models.MoodEntry
	err := r.db.Where("user_id = ? AND entry_date = ?", entry.UserID, entry.EntryDate).First(&existing).Error
	if err == nil {
		return false, r.overwrite(&existing, entry)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	if err := r.db.Create(entry).Error; err != nil {
		// A concurrent first log for the same day won the unique index race.
		// Fall back to overwriting the winning row.
		ferr := r.db.Where("user_id = ? AND entry_date = ?", entry.UserID, entry.EntryDate).First(&existing).Error
		if ferr != nil {
			return false, err
		}
		return false, r.overwrite(&existing, entry)
	}
	return true, nil
}

// overwrite replaces the mutable fields of existing with those of entry and
// copies the stored row back into entry, so callers always see the row that
// won the day.
func (r *moodRepository) overwrite(existing, entry *models.MoodEntry) error {
	existing.Mood = entry.Mood
	existing.Notes = entry.Notes
	existing.Tags = entry.Tags
	if err := r.db.Save(existing).Error; err != nil {
		return err
	}
	*entry = *existing
	return nil
}
