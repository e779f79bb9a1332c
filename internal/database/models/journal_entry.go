package models

import "time"

// JournalEntry represents a private journal entry. Entries are only ever
// visible to the user that wrote them.
type JournalEntry struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the table name
func (JournalEntry) TableName() string {
	return "journal_entries"
}
