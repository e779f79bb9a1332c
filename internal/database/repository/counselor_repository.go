package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mindwell/backend-go/internal/database/models"
)

// CounselorRepository defines the interface for counselor data operations
type CounselorRepository interface {
	FindAll() ([]models.Counselor, error)
	FindByID(id uint) (*models.Counselor, error)
	Create(counselor *models.Counselor) error
	Update(counselor *models.Counselor) error
	Delete(id uint) error
}

type counselorRepository struct {
	db *gorm.DB
}

// NewCounselorRepository creates a new counselor repository instance
func NewCounselorRepository(db *gorm.DB) CounselorRepository {
	return &counselorRepository{db: db}
}

func (r *counselorRepository) FindAll() ([]models.Counselor, error) {
	var counselors []models.Counselor
	err := r.db.Order("name ASC").Find(&counselors).Error
	return counselors, err
}

func (r *counselorRepository) FindByID(id uint) (*models.Counselor, error) {
	var counselor models.Counselor
	err := r.db.First(&counselor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCounselorNotFound
		}
		return nil, err
	}
	return &counselor, nil
}

func (r *counselorRepository) Create(counselor *models.Counselor) error {
	return r.db.Create(counselor).Error
}

func (r *counselorRepository) Update(counselor *models.Counselor) error {
	return r.db.Save(counselor).Error
}

func (r *counselorRepository) Delete(id uint) error {
	return r.db.Delete(&models.Counselor{}, id).Error
}

// Repository errors
var (
	ErrCounselorNotFound = errors.New("counselor not found")
)
