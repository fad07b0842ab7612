package services

import (
	"github.com/javatech/cim-portal/models"
	"github.com/javatech/cim-portal/repositories"
	"gorm.io/gorm"
)

// RoleService exposes the role catalogue
type RoleService struct {
	roleRepo *repositories.RoleRepository
}

// NewRoleService creates a new role service instance
func NewRoleService(db *gorm.DB) *RoleService {
	return &RoleService{roleRepo: repositories.NewRoleRepository(db)}
}

// ListRoles retrieves all known roles
func (s *RoleService) ListRoles() ([]models.Role, error) {
	return s.roleRepo.FindAll()
}

// GetRoleByName retrieves a role by its unique name
func (s *RoleService) GetRoleByName(name string) (models.Role, error) {
	role, err := s.roleRepo.FindByName(name)
	if repositories.IsNotFound(err) {
		return role, ErrRoleNotFound
	}
	return role, err
}
