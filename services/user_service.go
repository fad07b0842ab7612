package services

import (
	"github.com/javatech/cim-portal/dto"
	"github.com/javatech/cim-portal/models"
	"github.com/javatech/cim-portal/repositories"
	"github.com/javatech/cim-portal/utils"
	"gorm.io/gorm"
)

// UserService manages account lifecycle and moderation transitions
type UserService struct {
	db       *gorm.DB
	userRepo *repositories.UserRepository
	settings *SettingsService
}

// NewUserService creates a new user service instance
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		db:       db,
		userRepo: repositories.NewUserRepository(db),
		settings: NewSettingsService(db),
	}
}

// Register creates a new account, applying the global moderation policy.
// The very first account ever created becomes an approved ADMIN regardless
// of the requested roles; later accounts get the requested roles and are
// approved only when auto-approval is enabled. The count check runs inside
// the same transaction as the insert so two concurrent first registrations
// cannot both bootstrap an admin.
func (s *UserService) Register(req dto.RegisterRequest) (models.User, error) {
	var user models.User

	err := s.db.Transaction(func(tx *gorm.DB) error {
		userRepo := repositories.NewUserRepository(tx)
		roleRepo := repositories.NewRoleRepository(tx)
		settingsRepo := repositories.NewSettingsRepository(tx)

		settings, err := settingsRepo.Get()
		if err != nil {
			return err
		}
		if !settings.RegistrationEnabled {
			return ErrRegistrationClosed
		}

		exists, err := userRepo.ExistsByUsername(req.User.Username)
		if err != nil {
			return err
		}
		if exists {
			return ErrUsernameTaken
		}

		hashed, err := utils.HashPassword(req.User.Password)
		if err != nil {
			return err
		}

		count, err := userRepo.CountAll()
		if err != nil {
			return err
		}

		user = models.User{Username: req.User.Username, Password: hashed}
		if count == 0 {
			// Bootstrap path: first account becomes the administrator
			adminRole, err := roleRepo.FindOrCreateByName(models.RoleAdmin)
			if err != nil {
				return err
			}
			user.Status = models.StatusApproved
			user.Roles = []models.Role{adminRole}
		} else {
			if settings.AutoApprovalEnabled {
				user.Status = models.StatusApproved
			} else {
				user.Status = models.StatusPending
			}
			roles, err := roleRepo.ResolveAll(req.RoleNames)
			if err != nil {
				return err
			}
			user.Roles = roles
		}

		user, err = userRepo.Create(user)
		return err
	})

	return user, err
}

// CreateUser is the admin manual-create path. No registration gating or
// auto-approval policy applies; the account is approved unconditionally.
func (s *UserService) CreateUser(req dto.CreateUserRequest) (models.User, error) {
	var user models.User

	err := s.db.Transaction(func(tx *gorm.DB) error {
		userRepo := repositories.NewUserRepository(tx)
		roleRepo := repositories.NewRoleRepository(tx)

		exists, err := userRepo.ExistsByUsername(req.Username)
		if err != nil {
			return err
		}
		if exists {
			return ErrUsernameTaken
		}

		hashed, err := utils.HashPassword(req.Password)
		if err != nil {
			return err
		}

		roles, err := roleRepo.ResolveAll(req.RoleNames)
		if err != nil {
			return err
		}

		user = models.User{
			Username: req.Username,
			Password: hashed,
			Status:   models.StatusApproved,
			Roles:    roles,
		}
		user, err = userRepo.Create(user)
		return err
	})

	return user, err
}

// Authenticate verifies credentials and then the moderation status.
// Credentials are checked first so a caller who does not know the password
// learns nothing about the account's status.
func (s *UserService) Authenticate(username, password string) (models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if repositories.IsNotFound(err) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}
	if !utils.CheckPassword(password, user.Password) {
		return models.User{}, ErrInvalidCredentials
	}
	if user.Status == models.StatusPending {
		return models.User{}, ErrAccountPending
	}
	if user.Status == models.StatusBlocked {
		return models.User{}, ErrAccountBlocked
	}
	return user, nil
}

// GetAllUsers retrieves every account with roles preloaded
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.userRepo.FindAll()
}

// GetUserByID retrieves one account by its ID
func (s *UserService) GetUserByID(id uint) (models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if repositories.IsNotFound(err) {
		return user, ErrUserNotFound
	}
	return user, err
}

// GetUserByUsername retrieves one account by exact username
func (s *UserService) GetUserByUsername(username string) (models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if repositories.IsNotFound(err) {
		return user, ErrUserNotFound
	}
	return user, err
}

// ApproveUser sets the account status to APPROVED. Idempotent.
func (s *UserService) ApproveUser(id uint) (models.User, error) {
	return s.setStatus(id, models.StatusApproved)
}

// BlockUser sets the account status to BLOCKED. Idempotent.
func (s *UserService) BlockUser(id uint) (models.User, error) {
	return s.setStatus(id, models.StatusBlocked)
}

// UnblockUser returns a blocked account to APPROVED
func (s *UserService) UnblockUser(id uint) (models.User, error) {
	return s.setStatus(id, models.StatusApproved)
}

func (s *UserService) setStatus(id uint, status models.UserStatus) (models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return user, ErrUserNotFound
		}
		return user, err
	}
	user.Status = status
	if err := s.userRepo.Update(user); err != nil {
		return user, err
	}
	return user, nil
}

// DeleteUser removes an account permanently
func (s *UserService) DeleteUser(id uint) error {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}
	return s.userRepo.Delete(user)
}

// AssignRoles replaces the account's role set, creating unknown roles
func (s *UserService) AssignRoles(id uint, roleNames []string) (models.User, error) {
	var user models.User

	err := s.db.Transaction(func(tx *gorm.DB) error {
		userRepo := repositories.NewUserRepository(tx)
		roleRepo := repositories.NewRoleRepository(tx)

		var err error
		user, err = userRepo.FindByID(id)
		if err != nil {
			if repositories.IsNotFound(err) {
				return ErrUserNotFound
			}
			return err
		}

		roles, err := roleRepo.ResolveAll(roleNames)
		if err != nil {
			return err
		}
		if err := userRepo.ReplaceRoles(&user, roles); err != nil {
			return err
		}
		user.Roles = roles
		return nil
	})

	return user, err
}
