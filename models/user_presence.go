package models

import (
	"time"
)

// UserPresence tracks whether a user is currently online in the chat
type UserPresence struct {
	UserID     uint      `json:"userId" gorm:"primaryKey"`
	Online     bool      `json:"online" gorm:"not null"`
	LastActive time.Time `json:"lastActive" gorm:"not null"`
}

// TableName sets the table name for UserPresence model
func (UserPresence) TableName() string {
	return "user_statuses"
}
