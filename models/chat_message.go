package models

import (
	"time"
)

// ChatMessage represents a message posted to the public chat.
// Deletion is a soft flag; old rows are hard-deleted only by the
// retention sweep once the history cap is exceeded.
type ChatMessage struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Content        string    `json:"content" gorm:"type:text;not null"`
	SenderUsername string    `json:"senderUsername" gorm:"size:64;not null;index"`
	Timestamp      time.Time `json:"timestamp" gorm:"not null;index"`
	ReplyToID      *uint     `json:"replyToId" gorm:"default:null"`
	RecipientID    *uint     `json:"recipientId" gorm:"default:null"` // reserved for direct messages
	RoomID         *uint     `json:"roomId" gorm:"default:null"`      // reserved for rooms
	Deleted        bool      `json:"deleted" gorm:"not null;default:false"`
}

// TableName sets the table name for ChatMessage model
func (ChatMessage) TableName() string {
	return "chat_messages"
}
