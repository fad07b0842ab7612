package services

import (
	"github.com/google/uuid"
	"github.com/javatech/cim-portal/models"
	"github.com/javatech/cim-portal/repositories"
	"gorm.io/gorm"
)

// BbbSessionService handles business logic for BBB video sessions
type BbbSessionService struct {
	sessionRepo *repositories.BbbSessionRepository
}

// NewBbbSessionService creates a new BBB session service instance
func NewBbbSessionService(db *gorm.DB) *BbbSessionService {
	return &BbbSessionService{sessionRepo: repositories.NewBbbSessionRepository(db)}
}

// ListSessions retrieves all sessions
func (s *BbbSessionService) ListSessions() ([]models.BbbSession, error) {
	return s.sessionRepo.FindAll()
}

// GetSession retrieves a session by ID
func (s *BbbSessionService) GetSession(id uint) (models.BbbSession, error) {
	return s.sessionRepo.FindByID(id)
}

// CreateSession stores a new session, generating a meeting ID when absent
func (s *BbbSessionService) CreateSession(session models.BbbSession) (models.BbbSession, error) {
	if session.MeetingID == "" {
		session.MeetingID = uuid.NewString()
	}
	return s.sessionRepo.Create(session)
}

// DeleteSession removes a session
func (s *BbbSessionService) DeleteSession(id uint) error {
	return s.sessionRepo.Delete(id)
}
