package services

import (
	"github.com/javatech/cim-portal/models"
	"github.com/javatech/cim-portal/repositories"
	"gorm.io/gorm"
)

// StatusService handles business logic for workflow statuses
type StatusService struct {
	statusRepo *repositories.StatusRepository
}

// NewStatusService creates a new status service instance
func NewStatusService(db *gorm.DB) *StatusService {
	return &StatusService{statusRepo: repositories.NewStatusRepository(db)}
}

// ListStatuses retrieves all statuses
func (s *StatusService) ListStatuses() ([]models.Status, error) {
	return s.statusRepo.FindAll()
}

// GetStatus retrieves a status by ID
func (s *StatusService) GetStatus(id uint) (models.Status, error) {
	return s.statusRepo.FindByID(id)
}

// CreateStatus stores a new status
func (s *StatusService) CreateStatus(status models.Status) (models.Status, error) {
	return s.statusRepo.Create(status)
}

// UpdateStatus modifies an existing status
func (s *StatusService) UpdateStatus(id uint, updated models.Status) (models.Status, error) {
	status, err := s.statusRepo.FindByID(id)
	if err != nil {
		return status, err
	}
	status.Name = updated.Name
	status.Description = updated.Description
	err = s.statusRepo.Update(status)
	return status, err
}

// DeleteStatus removes a status
func (s *StatusService) DeleteStatus(id uint) error {
	return s.statusRepo.Delete(id)
}
