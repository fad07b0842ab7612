package services

import (
	"time"

	"github.com/javatech/cim-portal/models"
	"github.com/javatech/cim-portal/repositories"
	"gorm.io/gorm"
)

// PresenceService tracks which users are online in the chat
type PresenceService struct {
	presenceRepo *repositories.PresenceRepository
	now          func() time.Time
}

// NewPresenceService creates a new presence service instance
func NewPresenceService(db *gorm.DB) *PresenceService {
	return &PresenceService{
		presenceRepo: repositories.NewPresenceRepository(db),
		now:          time.Now,
	}
}

// SetOnline marks a user online or offline and stamps the activity time
func (s *PresenceService) SetOnline(userID uint, online bool) error {
	return s.presenceRepo.Upsert(userID, online, s.now())
}

// GetAll returns every known presence record
func (s *PresenceService) GetAll() ([]models.UserPresence, error) {
	return s.presenceRepo.FindAll()
}
