package repositories

import (
	"github.com/javatech/cim-portal/models"
	"gorm.io/gorm"
)

// ChatMessageRepository handles database operations for chat messages
type ChatMessageRepository struct {
	db *gorm.DB
}

// NewChatMessageRepository creates a new chat message repository instance
func NewChatMessageRepository(db *gorm.DB) *ChatMessageRepository {
	return &ChatMessageRepository{db: db}
}

// FindByID retrieves a message by its ID, deleted or not
func (r *ChatMessageRepository) FindByID(id uint) (models.ChatMessage, error) {
	var msg models.ChatMessage
	result := r.db.First(&msg, id)
	return msg, result.Error
}

// Create inserts a new message into the database
func (r *ChatMessageRepository) Create(msg models.ChatMessage) (models.ChatMessage, error) {
	result := r.db.Create(&msg)
	return msg, result.Error
}

// Update modifies an existing message
func (r *ChatMessageRepository) Update(msg models.ChatMessage) error {
	result := r.db.Save(&msg)
	return result.Error
}

// FindPage retrieves non-deleted messages newest first with pagination
func (r *ChatMessageRepository) FindPage(page, size int) ([]models.ChatMessage, int64, error) {
	var msgs []models.ChatMessage
	var total int64

	q := r.db.Model(&models.ChatMessage{}).Where("deleted = ?", false)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := page * size
	err := q.Order("timestamp desc").Limit(size).Offset(offset).Find(&msgs).Error
	return msgs, total, err
}

// CountNonDeleted counts messages still visible in the chat
func (r *ChatMessageRepository) CountNonDeleted() (int64, error) {
	var count int64
	result := r.db.Model(&models.ChatMessage{}).Where("deleted = ?", false).Count(&count)
	return count, result.Error
}

// TrimBeyondLimit hard-deletes the oldest non-deleted messages so that at
// most limit of them remain. Ordering is by timestamp ascending. Returns
// the number of messages removed.
func (r *ChatMessageRepository) TrimBeyondLimit(limit int) (int, error) {
	count, err := r.CountNonDeleted()
	if err != nil {
		return 0, err
	}
	excess := int(count) - limit
	if excess <= 0 {
		return 0, nil
	}

	var ids []uint
	err = r.db.Model(&models.ChatMessage{}).
		Where("deleted = ?", false).
		Order("timestamp asc").
		Limit(excess).
		Pluck("id", &ids).Error
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}
	if err := r.db.Unscoped().Delete(&models.ChatMessage{}, ids).Error; err != nil {
		return 0, err
	}
	return len(ids), nil
}
