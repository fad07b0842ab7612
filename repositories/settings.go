package repositories

import (
	"errors"

	"github.com/javatech/cim-portal/models"
	"gorm.io/gorm"
)

// SettingsRepository handles the single global settings row
type SettingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository instance
func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the settings row, creating the default one if none exists
func (r *SettingsRepository) Get() (models.AppSettings, error) {
	var settings models.AppSettings
	err := r.db.Order("id asc").First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.AppSettings{RegistrationEnabled: true, AutoApprovalEnabled: true}
		err = r.db.Create(&settings).Error
	}
	return settings, err
}

// Update persists new flag values onto the existing row
func (r *SettingsRepository) Update(registrationEnabled, autoApprovalEnabled bool) (models.AppSettings, error) {
	settings, err := r.Get()
	if err != nil {
		return settings, err
	}
	settings.RegistrationEnabled = registrationEnabled
	settings.AutoApprovalEnabled = autoApprovalEnabled
	err = r.db.Save(&settings).Error
	return settings, err
}
