package models

// Module represents a functional module of the information model
type Module struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:128;not null"`
	Description string `json:"description" gorm:"type:text"`
}

// TableName sets the table name for Module model
func (Module) TableName() string {
	return "modules"
}
