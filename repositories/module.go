package repositories

import (
	"github.com/javatech/cim-portal/models"
	"gorm.io/gorm"
)

// ModuleRepository handles database operations for modules
type ModuleRepository struct {
	db *gorm.DB
}

// NewModuleRepository creates a new module repository instance
func NewModuleRepository(db *gorm.DB) *ModuleRepository {
	return &ModuleRepository{db: db}
}

// FindAll retrieves all modules
func (r *ModuleRepository) FindAll() ([]models.Module, error) {
	var modules []models.Module
	result := r.db.Find(&modules)
	return modules, result.Error
}

// FindByID retrieves a module by its ID
func (r *ModuleRepository) FindByID(id uint) (models.Module, error) {
	var module models.Module
	result := r.db.First(&module, id)
	return module, result.Error
}

// Create inserts a new module into the database
func (r *ModuleRepository) Create(module models.Module) (models.Module, error) {
	result := r.db.Create(&module)
	return module, result.Error
}

// Update modifies an existing module
func (r *ModuleRepository) Update(module models.Module) error {
	result := r.db.Save(&module)
	return result.Error
}

// Delete removes a module from the database
func (r *ModuleRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Module{}, id)
	return result.Error
}
