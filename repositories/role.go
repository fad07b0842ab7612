package repositories

import (
	"github.com/javatech/cim-portal/models"
	"gorm.io/gorm"
)

// RoleRepository handles database operations for roles
type RoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new role repository instance
func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

// FindAll retrieves all roles
func (r *RoleRepository) FindAll() ([]models.Role, error) {
	var roles []models.Role
	result := r.db.Find(&roles)
	return roles, result.Error
}

// FindByName retrieves a role by its unique name
func (r *RoleRepository) FindByName(name string) (models.Role, error) {
	var role models.Role
	result := r.db.Where("name = ?", name).First(&role)
	return role, result.Error
}

// FindOrCreateByName resolves a role, creating it on first reference
func (r *RoleRepository) FindOrCreateByName(name string) (models.Role, error) {
	var role models.Role
	result := r.db.Where(models.Role{Name: name}).FirstOrCreate(&role)
	return role, result.Error
}

// ResolveAll resolves every name in the list, creating unknown roles
func (r *RoleRepository) ResolveAll(names []string) ([]models.Role, error) {
	roles := make([]models.Role, 0, len(names))
	for _, name := range names {
		role, err := r.FindOrCreateByName(name)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}
