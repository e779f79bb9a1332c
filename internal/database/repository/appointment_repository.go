package repository

import (
	"gorm.io/gorm"

	"github.com/mindwell/backend-go/internal/database/models"
)

// AppointmentRepository defines the interface for appointment data operations
type AppointmentRepository interface {
	Create(appointment *models.Appointment) error
	FindByUser(userID uint) ([]models.Appointment, error)
}

type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new appointment repository instance
func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(appointment *models.Appointment) error {
	return r.db.Create(appointment).Error
}

func (r *appointmentRepository) FindByUser(userID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Where("user_id = ?", userID).Order("date DESC").Find(&appointments).Error
	return appointments, err
}
