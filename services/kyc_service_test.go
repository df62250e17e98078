package services

import (
	"errors"
	"testing"

	"github.com/anocab/anocab-admin/models"
	"gorm.io/gorm"
)

func seedKyc(t *testing.T, db *gorm.DB, id, userID uint) models.UserKyc {
	t.Helper()
	kyc := models.UserKyc{
		ID:                id,
		UserID:            userID,
		AccountNumber:     ptrString("123456789012"),
		IfscCode:          ptrString("HDFC0001234"),
		AccountHolderName: ptrString("Ravi Sharma"),
		BankName:          ptrString("HDFC Bank"),
		ApprovalStatus:    models.ApprovalPending,
	}
	if err := db.Create(&kyc).Error; err != nil {
		t.Fatalf("failed to seed kyc record: %v", err)
	}
	return kyc
}

func TestSetKycApprovalTimestampCoupling(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, 5)
	seedKyc(t, db, 1, 5)

	kyc, err := SetKycApproval(db, 1, SetKycApprovalInput{
		Status:     models.ApprovalApproved,
		ApprovedBy: ptrUint(2),
		AdminNotes: ptrString("documents verified"),
	})
	if err != nil {
		t.Fatalf("SetKycApproval(approved) failed: %v", err)
	}
	if kyc.ApprovalStatus != models.ApprovalApproved {
		t.Errorf("approval_status = %q, want approved", kyc.ApprovalStatus)
	}
	if kyc.ApprovedAt == nil {
		t.Error("approved_at is nil after approval, want set")
	}
	if kyc.ApprovedBy == nil || *kyc.ApprovedBy != 2 {
		t.Errorf("approved_by = %v, want 2", kyc.ApprovedBy)
	}

	// Reverting to pending must clear the timestamp.
	kyc, err = SetKycApproval(db, 1, SetKycApprovalInput{Status: models.ApprovalPending})
	if err != nil {
		t.Fatalf("SetKycApproval(pending) failed: %v", err)
	}
	if kyc.ApprovedAt != nil {
		t.Errorf("approved_at = %v after revert to pending, want nil", kyc.ApprovedAt)
	}
}

func TestSetKycApprovalRejectedSetsTimestamp(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, 6)
	seedKyc(t, db, 2, 6)

	kyc, err := SetKycApproval(db, 2, SetKycApprovalInput{
		Status:     models.ApprovalRejected,
		AdminNotes: ptrString("account number mismatch"),
	})
	if err != nil {
		t.Fatalf("SetKycApproval(rejected) failed: %v", err)
	}
	if kyc.ApprovalStatus != models.ApprovalRejected {
		t.Errorf("approval_status = %q, want rejected", kyc.ApprovalStatus)
	}
	if kyc.ApprovedAt == nil {
		t.Error("approved_at is nil after rejection, want set")
	}
	if kyc.AdminNotes == nil || *kyc.AdminNotes != "account number mismatch" {
		t.Errorf("admin_notes = %v, want the rejection note", kyc.AdminNotes)
	}
}

func TestSetKycApprovalNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := SetKycApproval(db, 99, SetKycApprovalInput{Status: models.ApprovalApproved})
	if !errors.Is(err, ErrKycNotFound) {
		t.Fatalf("err = %v, want ErrKycNotFound", err)
	}
}
