package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mindwell/backend-go/internal/database/models"
)

// FeedbackRepository defines the interface for feedback data operations
type FeedbackRepository interface {
	Create(feedback *models.Feedback) error
	FindAll() ([]models.Feedback, error)
	FindByID(id uint) (*models.Feedback, error)
	Update(feedback *models.Feedback) error
}

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new feedback repository instance
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(feedback *models.Feedback) error {
	return r.db.Create(feedback).Error
}

func (r *feedbackRepository) FindAll() ([]models.Feedback, error) {
	var feedback []models.Feedback
	err := r.db.Order("created_at DESC").Find(&feedback).Error
	return feedback, err
}

func (r *feedbackRepository) FindByID(id uint) (*models.Feedback, error) {
	var feedback models.Feedback
	err := r.db.First(&feedback, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) Update(feedback *models.Feedback) error {
	return r.db.Save(feedback).Error
}

// Repository errors
var (
	ErrFeedbackNotFound = errors.New("feedback not found")
)
