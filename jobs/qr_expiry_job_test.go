package jobs_test

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/anocab/anocab-admin/database"
	"github.com/anocab/anocab-admin/jobs"
	"github.com/anocab/anocab-admin/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupJobDB(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", filepath.Join(t.TempDir(), "test.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.QrCode{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })
}

func TestExpireQrCodes(t *testing.T) {
	setupJobDB(t)

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)
	scannedAt := time.Now().Add(-30 * time.Minute)
	scannedBy := uint(1)

	codes := []models.QrCode{
		{Code: "QR-1", Product: "Cable", ExpiresAt: &past},
		{Code: "QR-2", Product: "Cable", ExpiresAt: &future},
		{Code: "QR-3", Product: "Cable"},
		{Code: "QR-4", Product: "Cable", ExpiresAt: &past, IsScanned: true, ScannedBy: &scannedBy, ScannedAt: &scannedAt},
	}
	if err := database.DB.Create(&codes).Error; err != nil {
		t.Fatalf("failed to seed QR codes: %v", err)
	}

	jobs.ExpireQrCodes()

	var expired []models.QrCode
	database.DB.Where("is_expired = ?", true).Find(&expired)
	if len(expired) != 1 {
		t.Fatalf("expected exactly 1 expired code, got %d", len(expired))
	}
	if expired[0].Code != "QR-1" {
		t.Errorf("expected QR-1 to expire, got %q", expired[0].Code)
	}

	// Second run is a no-op.
	jobs.ExpireQrCodes()
	var count int64
	database.DB.Model(&models.QrCode{}).Where("is_expired = ?", true).Count(&count)
	if count != 1 {
		t.Errorf("expected expiry to be idempotent, got %d expired", count)
	}
}
