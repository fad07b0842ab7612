package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/javatech/cim-portal/dto"
	"github.com/javatech/cim-portal/models"
	"github.com/javatech/cim-portal/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T, name string) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Role{}, &models.User{}, &models.AppSettings{},
		&models.ChatMessage{}, &models.UserPresence{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func registerReq(username, password string, roleNames ...string) dto.RegisterRequest {
	return dto.RegisterRequest{
		User:      dto.RegisterUser{Username: username, Password: password},
		RoleNames: roleNames,
	}
}

func TestRegisterFirstUserBecomesAdmin(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewUserService(db)

	user, err := svc.Register(registerReq("alice", "secret123", "USER", "VIEWER"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Status != models.StatusApproved {
		t.Fatalf("expected APPROVED, got %s", user.Status)
	}
	if len(user.Roles) != 1 || user.Roles[0].Name != models.RoleAdmin {
		t.Fatalf("expected exactly [ADMIN], got %v", user.RoleNames())
	}
}

func TestRegisterSecondUserGetsRequestedRoles(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewUserService(db)

	if _, err := svc.Register(registerReq("alice", "secret123")); err != nil {
		t.Fatalf("register alice: %v", err)
	}
	user, err := svc.Register(registerReq("bob", "secret123", "USER"))
	if err != nil {
		t.Fatalf("register bob: %v", err)
	}
	if user.Status != models.StatusApproved {
		t.Fatalf("auto-approval enabled by default, got status %s", user.Status)
	}
	if len(user.Roles) != 1 || user.Roles[0].Name != "USER" {
		t.Fatalf("expected [USER], got %v", user.RoleNames())
	}
}

func TestRegisterPendingWhenAutoApprovalDisabled(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewUserService(db)
	settings := NewSettingsService(db)

	if _, err := svc.Register(registerReq("alice", "secret123")); err != nil {
		t.Fatalf("register alice: %v", err)
	}
	if _, err := settings.UpdateSettings(true, false); err != nil {
		t.Fatalf("update settings: %v", err)
	}

	user, err := svc.Register(registerReq("bob", "secret123", "USER"))
	if err != nil {
		t.Fatalf("register bob: %v", err)
	}
	if user.Status != models.StatusPending {
		t.Fatalf("expected PENDING, got %s", user.Status)
	}
}

func TestRegisterClosedPersistsNothing(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewUserService(db)
	settings := NewSettingsService(db)

	if _, err := svc.Register(registerReq("alice", "secret123")); err != nil {
		t.Fatalf("register alice: %v", err)
	}
	if _, err := settings.UpdateSettings(false, true); err != nil {
		t.Fatalf("update settings: %v", err)
	}

	_, err := svc.Register(registerReq("bob", "secret123"))
	if !errors.Is(err, ErrRegistrationClosed) {
		t.Fatalf("expected ErrRegistrationClosed, got %v", err)
	}
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected no new account, count %d", count)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewUserService(db)

	if _, err := svc.Register(registerReq("alice", "secret123")); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := svc.Register(registerReq("alice", "other456"))
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewUserService(db)

	user, err := svc.Register(registerReq("alice", "secret123"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Password == "secret123" {
		t.Fatal("password stored as plaintext")
	}
	if !utils.CheckPassword("secret123", user.Password) {
		t.Fatal("stored hash does not verify against the original password")
	}
}

func TestManualCreateAlwaysApproved(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewUserService(db)
	settings := NewSettingsService(db)

	if _, err := svc.Register(registerReq("alice", "secret123")); err != nil {
		t.Fatalf("register alice: %v", err)
	}
	// Even with registration closed and auto-approval off
	if _, err := settings.UpdateSettings(false, false); err != nil {
		t.Fatalf("update settings: %v", err)
	}

	user, err := svc.CreateUser(dto.CreateUserRequest{Username: "carol", Password: "secret123", RoleNames: []string{"USER"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.Status != models.StatusApproved {
		t.Fatalf("expected APPROVED, got %s", user.Status)
	}
}

func TestAuthenticateStatusChecks(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewUserService(db)
	settings := NewSettingsService(db)

	if _, err := svc.Register(registerReq("alice", "secret123")); err != nil {
		t.Fatalf("register alice: %v", err)
	}
	if _, err := settings.UpdateSettings(true, false); err != nil {
		t.Fatalf("update settings: %v", err)
	}
	bob, err := svc.Register(registerReq("bob", "secret123"))
	if err != nil {
		t.Fatalf("register bob: %v", err)
	}

	if _, err := svc.Authenticate("nobody", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}
	// Wrong password must not disclose the pending status
	if _, err := svc.Authenticate("bob", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate("bob", "secret123"); !errors.Is(err, ErrAccountPending) {
		t.Fatalf("pending: expected ErrAccountPending, got %v", err)
	}

	if _, err := svc.BlockUser(bob.ID); err != nil {
		t.Fatalf("block: %v", err)
	}
	if _, err := svc.Authenticate("bob", "secret123"); !errors.Is(err, ErrAccountBlocked) {
		t.Fatalf("blocked: expected ErrAccountBlocked, got %v", err)
	}

	if _, err := svc.UnblockUser(bob.ID); err != nil {
		t.Fatalf("unblock: %v", err)
	}
	got, err := svc.Authenticate("bob", "secret123")
	if err != nil {
		t.Fatalf("approved login: %v", err)
	}
	if got.Username != "bob" {
		t.Fatalf("expected bob, got %s", got.Username)
	}
}

func TestApproveIsIdempotent(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewUserService(db)

	user, err := svc.Register(registerReq("alice", "secret123"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	for i := 0; i < 2; i++ {
		got, err := svc.ApproveUser(user.ID)
		if err != nil {
			t.Fatalf("approve #%d: %v", i+1, err)
		}
		if got.Status != models.StatusApproved {
			t.Fatalf("approve #%d: expected APPROVED, got %s", i+1, got.Status)
		}
	}
}

func TestModerationUnknownUser(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewUserService(db)

	if _, err := svc.ApproveUser(999); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("approve: expected ErrUserNotFound, got %v", err)
	}
	if _, err := svc.BlockUser(999); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("block: expected ErrUserNotFound, got %v", err)
	}
	if err := svc.DeleteUser(999); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("delete: expected ErrUserNotFound, got %v", err)
	}
}

func TestDeleteUserRemovesAccount(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewUserService(db)

	user, err := svc.Register(registerReq("alice", "secret123"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.DeleteUser(user.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetUserByID(user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound after delete, got %v", err)
	}
}

func TestAssignRolesCreatesUnknownRoles(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewUserService(db)

	user, err := svc.Register(registerReq("alice", "secret123"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	updated, err := svc.AssignRoles(user.ID, []string{"SUPERUSER", "USER"})
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if len(updated.Roles) != 2 {
		t.Fatalf("expected 2 roles, got %v", updated.RoleNames())
	}

	var roleCount int64
	if err := db.Model(&models.Role{}).Count(&roleCount).Error; err != nil {
		t.Fatalf("count roles: %v", err)
	}
	// ADMIN from bootstrap plus the two assigned
	if roleCount != 3 {
		t.Fatalf("expected 3 roles in catalogue, got %d", roleCount)
	}
}
