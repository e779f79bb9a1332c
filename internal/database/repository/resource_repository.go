package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mindwell/backend-go/internal/database/models"
)

// ResourceRepository defines the interface for resource data operations
type ResourceRepository interface {
	FindAll() ([]models.Resource, error)
	FindByID(id uint) (*models.Resource, error)
	Create(resource *models.Resource) error
	Update(resource *models.Resource) error
	Delete(id uint) error
}

type resourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository creates a new resource repository instance
func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

func (r *resourceRepository) FindAll() ([]models.Resource, error) {
	var resources []models.Resource
	err := r.db.Order("created_at DESC").Find(&resources).Error
	return resources, err
}

func (r *resourceRepository) FindByID(id uint) (*models.Resource, error) {
	var resource models.Resource
	err := r.db.First(&resource, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}
	return &resource, nil
}

func (r *resourceRepository) Create(resource *models.Resource) error {
	return r.db.Create(resource).Error
}

func (r *resourceRepository) Update(resource *models.Resource) error {
	return r.db.Save(resource).Error
}

func (r *resourceRepository) Delete(id uint) error {
	return r.db.Delete(&models.Resource{}, id).Error
}

// Repository errors
var (
	ErrResourceNotFound = errors.New("resource not found")
)
