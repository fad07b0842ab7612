package repositories

import (
	"errors"

	"github.com/javatech/cim-portal/models"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindAll retrieves all users with their roles
func (r *UserRepository) FindAll() ([]models.User, error) {
	var users []models.User
	result := r.db.Preload("Roles").Find(&users)
	return users, result.Error
}

// FindByID retrieves a user by its ID
func (r *UserRepository) FindByID(id uint) (models.User, error) {
	var user models.User
	result := r.db.Preload("Roles").First(&user, id)
	return user, result.Error
}

// FindByUsername retrieves a user by exact username match
func (r *UserRepository) FindByUsername(username string) (models.User, error) {
	var user models.User
	result := r.db.Preload("Roles").Where("username = ?", username).First(&user)
	return user, result.Error
}

// ExistsByUsername checks if a username is already taken
func (r *UserRepository) ExistsByUsername(username string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// CountAll counts all registered users
func (r *UserRepository) CountAll() (int64, error) {
	var count int64
	result := r.db.Model(&models.User{}).Count(&count)
	return count, result.Error
}

// Create inserts a new user into the database
func (r *UserRepository) Create(user models.User) (models.User, error) {
	result := r.db.Create(&user)
	return user, result.Error
}

// Update modifies an existing user
func (r *UserRepository) Update(user models.User) error {
	result := r.db.Save(&user)
	return result.Error
}

// ReplaceRoles replaces the user's role associations
func (r *UserRepository) ReplaceRoles(user *models.User, roles []models.Role) error {
	return r.db.Model(user).Association("Roles").Replace(roles)
}

// Delete removes a user permanently, clearing role associations first
func (r *UserRepository) Delete(user models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Association("Roles").Clear(); err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}

// IsNotFound reports whether err means the record does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// DB returns the database instance
func (r *UserRepository) DB() *gorm.DB {
	return r.db
}
