package models

// Status represents a workflow status assignable to model elements
type Status struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:128;not null"`
	Description string `json:"description" gorm:"type:text"`
}

// TableName sets the table name for Status model
func (Status) TableName() string {
	return "statuses"
}
