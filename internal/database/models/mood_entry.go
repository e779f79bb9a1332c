package models

import (
	"time"

	"github.com/lib/pq"
)

// MoodEntry represents one mood log. The unique index on
// (user_id, entry_date) enforces at most one entry per user per calendar
// day; a second log on the same day overwrites the first.
type MoodEntry struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    uint           `gorm:"uniqueIndex:idx_mood_user_day;not null" json:"user_id"`
	Mood      int            `gorm:"not null" json:"mood"`
	Notes     string         `json:"notes"`
	Tags      pq.StringArray `gorm:"type:text[]" json:"tags"`
	EntryDate time.Time      `gorm:"uniqueIndex:idx_mood_user_day;not null" json:"entry_date"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// TableName overrides the table name
func (MoodEntry) TableName() string {
	return "mood_entries"
}
