package models

// AppSettings holds the single system-wide moderation policy record.
// Exactly one row exists; it is created lazily with both flags enabled.
type AppSettings struct {
	ID                  uint `json:"id" gorm:"primaryKey"`
	RegistrationEnabled bool `json:"registrationEnabled" gorm:"not null;default:true"`
	AutoApprovalEnabled bool `json:"autoApprovalEnabled" gorm:"not null;default:true"`
}

// TableName sets the table name for AppSettings model
func (AppSettings) TableName() string {
	return "app_settings"
}
