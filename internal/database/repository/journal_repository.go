package repository

import (
	"gorm.io/gorm"

	"github.com/mindwell/backend-go/internal/database/models"
)

// JournalRepository defines the interface for journal entry data operations
type JournalRepository interface {
	Create(entry *models.JournalEntry) error
	FindByUser(userID uint) ([]models.JournalEntry, error)
}

type journalRepository struct {
	db *gorm.DB
}

// NewJournalRepository creates a new journal repository instance
func NewJournalRepository(db *gorm.DB) JournalRepository {
	return &journalRepository{db: db}
}

func (r *journalRepository) Create(entry *models.JournalEntry) error {
	return r.db.Create(entry).Error
}

func (r *journalRepository) FindByUser(userID uint) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&entries).Error
	return entries, err
}
