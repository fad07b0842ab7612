package repositories

import (
	"time"

	"github.com/javatech/cim-portal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PresenceRepository handles online/offline user status records
type PresenceRepository struct {
	db *gorm.DB
}

// NewPresenceRepository creates a new presence repository instance
func NewPresenceRepository(db *gorm.DB) *PresenceRepository {
	return &PresenceRepository{db: db}
}

// FindAll retrieves every known presence record
func (r *PresenceRepository) FindAll() ([]models.UserPresence, error) {
	var statuses []models.UserPresence
	result := r.db.Find(&statuses)
	return statuses, result.Error
}

// Upsert sets a user's online flag and last-active instant
func (r *PresenceRepository) Upsert(userID uint, online bool, at time.Time) error {
	presence := models.UserPresence{UserID: userID, Online: online, LastActive: at}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"online", "last_active"}),
	}).Create(&presence).Error
}
