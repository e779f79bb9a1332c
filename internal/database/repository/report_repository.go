package repository

import (
	"gorm.io/gorm"

	"github.com/mindwell/backend-go/internal/database/models"
)

// ReportRepository defines the interface for problem report data operations
type ReportRepository interface {
	Create(report *models.Report) error
	FindAll() ([]models.Report, error)
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(report *models.Report) error {
	return r.db.Create(report).Error
}

func (r *reportRepository) FindAll() ([]models.Report, error) {
	var reports []models.Report
	err := r.db.Order("created_at DESC").Find(&reports).Error
	return reports, err
}
