package models

// Role represents a named permission group attached to users.
// Roles are created on first reference and never deleted by the core.
type Role struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;size:64;not null"`
}

// TableName sets the table name for Role model
func (Role) TableName() string {
	return "roles"
}
