package repositories

import (
	"github.com/javatech/cim-portal/models"
	"gorm.io/gorm"
)

// BbbSessionRepository handles database operations for BBB video sessions
type BbbSessionRepository struct {
	db *gorm.DB
}

// NewBbbSessionRepository creates a new BBB session repository instance
func NewBbbSessionRepository(db *gorm.DB) *BbbSessionRepository {
	return &BbbSessionRepository{db: db}
}

// FindAll retrieves all sessions
func (r *BbbSessionRepository) FindAll() ([]models.BbbSession, error) {
	var sessions []models.BbbSession
	result := r.db.Find(&sessions)
	return sessions, result.Error
}

// FindByID retrieves a session by its ID
func (r *BbbSessionRepository) FindByID(id uint) (models.BbbSession, error) {
	var session models.BbbSession
	result := r.db.First(&session, id)
	return session, result.Error
}

// FindByMeetingID retrieves a session by its unique meeting identifier
func (r *BbbSessionRepository) FindByMeetingID(meetingID string) (models.BbbSession, error) {
	var session models.BbbSession
	result := r.db.Where("meeting_id = ?", meetingID).First(&session)
	return session, result.Error
}

// Create inserts a new session into the database
func (r *BbbSessionRepository) Create(session models.BbbSession) (models.BbbSession, error) {
	result := r.db.Create(&session)
	return session, result.Error
}

// Delete removes a session from the database
func (r *BbbSessionRepository) Delete(id uint) error {
	result := r.db.Delete(&models.BbbSession{}, id)
	return result.Error
}
