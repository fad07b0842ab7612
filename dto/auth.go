package dto

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/javatech/cim-portal/models"
)

// TokenClaims represents our custom JWT claims
type TokenClaims struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterUser is the credential part of a registration request
type RegisterUser struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// RegisterRequest represents registration data.
// The shape mirrors what the portal frontend sends: the credentials
// nested under "user" plus the requested role names.
type RegisterRequest struct {
	User      RegisterUser `json:"user" binding:"required"`
	RoleNames []string     `json:"roleNames"`
}

// CreateUserRequest represents the admin manual-create payload
type CreateUserRequest struct {
	Username  string   `json:"username" binding:"required"`
	Password  string   `json:"password" binding:"required,min=6"`
	RoleNames []string `json:"roleNames"`
}

// AssignRolesRequest replaces the role set of a user
type AssignRolesRequest struct {
	RoleNames []string `json:"roleNames" binding:"required"`
}

// AuthResponse represents the response after registration or login
type AuthResponse struct {
	Token   string      `json:"token"`
	User    models.User `json:"user"`
	Message string      `json:"message,omitempty"`
}
