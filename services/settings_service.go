package services

import (
	"github.com/javatech/cim-portal/models"
	"github.com/javatech/cim-portal/repositories"
	"gorm.io/gorm"
)

// SettingsService manages the single global settings record
type SettingsService struct {
	settingsRepo *repositories.SettingsRepository
}

// NewSettingsService creates a new settings service instance
func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{settingsRepo: repositories.NewSettingsRepository(db)}
}

// GetSettings returns the global settings, creating defaults on first access
func (s *SettingsService) GetSettings() (models.AppSettings, error) {
	return s.settingsRepo.Get()
}

// UpdateSettings persists new flag values
func (s *SettingsService) UpdateSettings(registrationEnabled, autoApprovalEnabled bool) (models.AppSettings, error) {
	return s.settingsRepo.Update(registrationEnabled, autoApprovalEnabled)
}

// IsRegistrationEnabled reports whether new registrations are accepted
func (s *SettingsService) IsRegistrationEnabled() (bool, error) {
	settings, err := s.settingsRepo.Get()
	return settings.RegistrationEnabled, err
}

// IsAutoApprovalEnabled reports whether new accounts are approved automatically
func (s *SettingsService) IsAutoApprovalEnabled() (bool, error) {
	settings, err := s.settingsRepo.Get()
	return settings.AutoApprovalEnabled, err
}
