package repository

import (
	"gorm.io/gorm"

	"github.com/mindwell/backend-go/internal/database/models"
)

// ContactRepository defines the interface for contact form data operations
type ContactRepository interface {
	Create(contact *models.Contact) error
	FindAll() ([]models.Contact, error)
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository instance
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

func (r *contactRepository) FindAll() ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.Order("created_at DESC").Find(&contacts).Error
	return contacts, err
}
