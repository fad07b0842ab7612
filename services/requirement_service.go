package services

import (
	"github.com/javatech/cim-portal/models"
	"github.com/javatech/cim-portal/repositories"
	"gorm.io/gorm"
)

// RequirementService handles business logic for requirements
type RequirementService struct {
	requirementRepo *repositories.RequirementRepository
}

// NewRequirementService creates a new requirement service instance
func NewRequirementService(db *gorm.DB) *RequirementService {
	return &RequirementService{requirementRepo: repositories.NewRequirementRepository(db)}
}

// ListRequirements retrieves all requirements
func (s *RequirementService) ListRequirements() ([]models.Requirement, error) {
	return s.requirementRepo.FindAll()
}

// GetRequirement retrieves a requirement by ID
func (s *RequirementService) GetRequirement(id uint) (models.Requirement, error) {
	return s.requirementRepo.FindByID(id)
}

// CreateRequirement stores a new requirement
func (s *RequirementService) CreateRequirement(requirement models.Requirement) (models.Requirement, error) {
	return s.requirementRepo.Create(requirement)
}

// UpdateRequirement modifies an existing requirement
func (s *RequirementService) UpdateRequirement(id uint, updated models.Requirement) (models.Requirement, error) {
	requirement, err := s.requirementRepo.FindByID(id)
	if err != nil {
		return requirement, err
	}
	requirement.Name = updated.Name
	requirement.Description = updated.Description
	err = s.requirementRepo.Update(requirement)
	return requirement, err
}

// DeleteRequirement removes a requirement
func (s *RequirementService) DeleteRequirement(id uint) error {
	return s.requirementRepo.Delete(id)
}
