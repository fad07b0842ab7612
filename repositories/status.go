package repositories

import (
	"github.com/javatech/cim-portal/models"
	"gorm.io/gorm"
)

// StatusRepository handles database operations for workflow statuses
type StatusRepository struct {
	db *gorm.DB
}

// NewStatusRepository creates a new status repository instance
func NewStatusRepository(db *gorm.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

// FindAll retrieves all statuses
func (r *StatusRepository) FindAll() ([]models.Status, error) {
	var statuses []models.Status
	result := r.db.Find(&statuses)
	return statuses, result.Error
}

// FindByID retrieves a status by its ID
func (r *StatusRepository) FindByID(id uint) (models.Status, error) {
	var status models.Status
	result := r.db.First(&status, id)
	return status, result.Error
}

// Create inserts a new status into the database
func (r *StatusRepository) Create(status models.Status) (models.Status, error) {
	result := r.db.Create(&status)
	return status, result.Error
}

// Update modifies an existing status
func (r *StatusRepository) Update(status models.Status) error {
	result := r.db.Save(&status)
	return result.Error
}

// Delete removes a status from the database
func (r *StatusRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Status{}, id)
	return result.Error
}
