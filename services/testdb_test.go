package services

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/anocab/anocab-admin/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a per-test database so tests cannot interfere with each
// other. A file in the test's temp dir is used instead of :memory: so that
// concurrent transactions contend through real locks with a busy timeout.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", filepath.Join(t.TempDir(), "test.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Admin{},
		&models.User{},
		&models.RedeemTransaction{},
		&models.RedeemPayout{},
		&models.UserKyc{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func ptrString(s string) *string { return &s }

func ptrUint(u uint) *uint { return &u }

func seedUser(t *testing.T, db *gorm.DB, id uint) models.User {
	t.Helper()
	user := models.User{
		ID:        id,
		FirstName: "Ravi",
		LastName:  "Sharma",
		MNumber:   fmt.Sprintf("99000000%02d", id),
		UserType:  "electrician",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedRedeemTransaction(t *testing.T, db *gorm.DB, id, userID uint, amount float64, remarks *string) models.RedeemTransaction {
	t.Helper()
	rt := models.RedeemTransaction{
		ID:      id,
		UserID:  userID,
		Amount:  amount,
		OrderID: fmt.Sprintf("RD-%04d", id),
		Status:  models.RedeemPending,
		Remarks: remarks,
	}
	if err := db.Create(&rt).Error; err != nil {
		t.Fatalf("failed to seed redeem transaction: %v", err)
	}
	return rt
}
