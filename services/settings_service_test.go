package services

import (
	"testing"

	"github.com/javatech/cim-portal/models"
)

func TestSettingsLazyDefaults(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewSettingsService(db)

	settings, err := svc.GetSettings()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !settings.RegistrationEnabled || !settings.AutoApprovalEnabled {
		t.Fatalf("expected both flags default true, got %+v", settings)
	}

	var count int64
	if err := db.Model(&models.AppSettings{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one settings row, got %d", count)
	}
}

func TestSettingsUpdateKeepsSingleRow(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewSettingsService(db)

	updated, err := svc.UpdateSettings(false, false)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.RegistrationEnabled || updated.AutoApprovalEnabled {
		t.Fatalf("expected both flags false, got %+v", updated)
	}

	again, err := svc.GetSettings()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if again.RegistrationEnabled || again.AutoApprovalEnabled {
		t.Fatalf("update not persisted: %+v", again)
	}

	var count int64
	if err := db.Model(&models.AppSettings{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one settings row, got %d", count)
	}
}

func TestSettingsFlagAccessors(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewSettingsService(db)

	if _, err := svc.UpdateSettings(false, true); err != nil {
		t.Fatalf("update: %v", err)
	}

	reg, err := svc.IsRegistrationEnabled()
	if err != nil {
		t.Fatalf("registration flag: %v", err)
	}
	if reg {
		t.Fatal("expected registration disabled")
	}
	auto, err := svc.IsAutoApprovalEnabled()
	if err != nil {
		t.Fatalf("auto-approval flag: %v", err)
	}
	if !auto {
		t.Fatal("expected auto-approval enabled")
	}
}
