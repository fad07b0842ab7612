package services

import (
	"github.com/javatech/cim-portal/models"
	"github.com/javatech/cim-portal/repositories"
	"gorm.io/gorm"
)

// ModuleService handles business logic for portal modules
type ModuleService struct {
	moduleRepo *repositories.ModuleRepository
}

// NewModuleService creates a new module service instance
func NewModuleService(db *gorm.DB) *ModuleService {
	return &ModuleService{moduleRepo: repositories.NewModuleRepository(db)}
}

// ListModules retrieves all modules
func (s *ModuleService) ListModules() ([]models.Module, error) {
	return s.moduleRepo.FindAll()
}

// GetModule retrieves a module by ID
func (s *ModuleService) GetModule(id uint) (models.Module, error) {
	return s.moduleRepo.FindByID(id)
}

// CreateModule stores a new module
func (s *ModuleService) CreateModule(module models.Module) (models.Module, error) {
	return s.moduleRepo.Create(module)
}

// UpdateModule modifies an existing module
func (s *ModuleService) UpdateModule(id uint, updated models.Module) (models.Module, error) {
	module, err := s.moduleRepo.FindByID(id)
	if err != nil {
		return module, err
	}
	module.Name = updated.Name
	module.Description = updated.Description
	err = s.moduleRepo.Update(module)
	return module, err
}

// DeleteModule removes a module
func (s *ModuleService) DeleteModule(id uint) error {
	return s.moduleRepo.Delete(id)
}
