package services

import (
	"github.com/javatech/cim-portal/models"
	"github.com/javatech/cim-portal/repositories"
	"gorm.io/gorm"
)

// BimModelService handles business logic for BIM models
type BimModelService struct {
	bimModelRepo *repositories.BimModelRepository
}

// NewBimModelService creates a new BIM model service instance
func NewBimModelService(db *gorm.DB) *BimModelService {
	return &BimModelService{bimModelRepo: repositories.NewBimModelRepository(db)}
}

// ListBimModels retrieves all BIM models
func (s *BimModelService) ListBimModels() ([]models.BimModel, error) {
	return s.bimModelRepo.FindAll()
}

// GetBimModel retrieves a BIM model by ID
func (s *BimModelService) GetBimModel(id uint) (models.BimModel, error) {
	return s.bimModelRepo.FindByID(id)
}

// CreateBimModel stores a new BIM model
func (s *BimModelService) CreateBimModel(bimModel models.BimModel) (models.BimModel, error) {
	return s.bimModelRepo.Create(bimModel)
}

// UpdateBimModel modifies an existing BIM model
func (s *BimModelService) UpdateBimModel(id uint, updated models.BimModel) (models.BimModel, error) {
	bimModel, err := s.bimModelRepo.FindByID(id)
	if err != nil {
		return bimModel, err
	}
	bimModel.Name = updated.Name
	bimModel.FilePath = updated.FilePath
	err = s.bimModelRepo.Update(bimModel)
	return bimModel, err
}

// DeleteBimModel removes a BIM model
func (s *BimModelService) DeleteBimModel(id uint) error {
	return s.bimModelRepo.Delete(id)
}
