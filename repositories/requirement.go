package repositories

import (
	"github.com/javatech/cim-portal/models"
	"gorm.io/gorm"
)

// RequirementRepository handles database operations for requirements
type RequirementRepository struct {
	db *gorm.DB
}

// NewRequirementRepository creates a new requirement repository instance
func NewRequirementRepository(db *gorm.DB) *RequirementRepository {
	return &RequirementRepository{db: db}
}

// FindAll retrieves all requirements
func (r *RequirementRepository) FindAll() ([]models.Requirement, error) {
	var requirements []models.Requirement
	result := r.db.Find(&requirements)
	return requirements, result.Error
}

// FindByID retrieves a requirement by its ID
func (r *RequirementRepository) FindByID(id uint) (models.Requirement, error) {
	var requirement models.Requirement
	result := r.db.First(&requirement, id)
	return requirement, result.Error
}

// Create inserts a new requirement into the database
func (r *RequirementRepository) Create(requirement models.Requirement) (models.Requirement, error) {
	result := r.db.Create(&requirement)
	return requirement, result.Error
}

// Update modifies an existing requirement
func (r *RequirementRepository) Update(requirement models.Requirement) error {
	result := r.db.Save(&requirement)
	return result.Error
}

// Delete removes a requirement from the database
func (r *RequirementRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Requirement{}, id)
	return result.Error
}
