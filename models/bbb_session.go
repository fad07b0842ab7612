package models

// BbbSession represents a BigBlueButton video session record
type BbbSession struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	MeetingID string `json:"meetingId" gorm:"uniqueIndex;size:64;not null"`
	Name      string `json:"name" gorm:"size:128"`
	JoinURL   string `json:"joinUrl"`
}

// TableName sets the table name for BbbSession model
func (BbbSession) TableName() string {
	return "bbb_sessions"
}
