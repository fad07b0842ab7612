package models

// Requirement represents a project requirement record
type Requirement struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:128;not null"`
	Description string `json:"description" gorm:"type:text"`
}

// TableName sets the table name for Requirement model
func (Requirement) TableName() string {
	return "requirements"
}
