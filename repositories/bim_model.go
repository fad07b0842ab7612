package repositories

import (
	"github.com/javatech/cim-portal/models"
	"gorm.io/gorm"
)

// BimModelRepository handles database operations for BIM models
type BimModelRepository struct {
	db *gorm.DB
}

// NewBimModelRepository creates a new BIM model repository instance
func NewBimModelRepository(db *gorm.DB) *BimModelRepository {
	return &BimModelRepository{db: db}
}

// FindAll retrieves all BIM models
func (r *BimModelRepository) FindAll() ([]models.BimModel, error) {
	var bimModels []models.BimModel
	result := r.db.Find(&bimModels)
	return bimModels, result.Error
}

// FindByID retrieves a BIM model by its ID
func (r *BimModelRepository) FindByID(id uint) (models.BimModel, error) {
	var bimModel models.BimModel
	result := r.db.First(&bimModel, id)
	return bimModel, result.Error
}

// Create inserts a new BIM model into the database
func (r *BimModelRepository) Create(bimModel models.BimModel) (models.BimModel, error) {
	result := r.db.Create(&bimModel)
	return bimModel, result.Error
}

// Update modifies an existing BIM model
func (r *BimModelRepository) Update(bimModel models.BimModel) error {
	result := r.db.Save(&bimModel)
	return result.Error
}

// Delete removes a BIM model from the database
func (r *BimModelRepository) Delete(id uint) error {
	result := r.db.Delete(&models.BimModel{}, id)
	return result.Error
}
