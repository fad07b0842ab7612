package models

import (
	"time"
)

// UserStatus represents the moderation state of an account
type UserStatus string

const (
	StatusPending  UserStatus = "PENDING"
	StatusApproved UserStatus = "APPROVED"
	StatusBlocked  UserStatus = "BLOCKED"
)

// RoleAdmin is assigned automatically to the first registered account
const RoleAdmin = "ADMIN"

// User represents a portal account with moderation status and roles
type User struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Username  string     `json:"username" gorm:"uniqueIndex;size:64;not null"`
	Password  string     `json:"-" gorm:"not null"` // bcrypt hash, never exposed in JSON
	Status    UserStatus `json:"status" gorm:"type:varchar(20);not null;default:'APPROVED'"`
	Roles     []Role     `json:"roles" gorm:"many2many:user_roles;"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// TableName sets the table name for User model
func (User) TableName() string {
	return "users"
}

// RoleNames returns the names of all roles attached to the user
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}

// HasRole reports whether the user carries the named role
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}
