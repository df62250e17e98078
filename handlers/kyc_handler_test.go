package handlers_test

import (
	"net/http"
	"testing"

	"github.com/anocab/anocab-admin/database"
	"github.com/anocab/anocab-admin/models"
	"github.com/gofiber/fiber/v2"
)

func TestUpsertKycCreatesAndReplaces(t *testing.T) {
	app := setupTestApp(t)
	seedTestAdmin(t)
	token := loginToken(t, app)
	seedTestUser(t, 1)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/user-kyc", token, fiber.Map{
		"user_id":        1,
		"account_number": "123456789",
		"ifsc_code":      "HDFC0001234",
		"bank_name":      "HDFC Bank",
		"upi_id":         "ravi@upi",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body struct {
		Kyc models.UserKyc `json:"kyc"`
	}
	decodeBody(t, resp, &body)
	if body.Kyc.ApprovalStatus != models.ApprovalPending {
		t.Errorf("new KYC should be pending, got %q", body.Kyc.ApprovalStatus)
	}

	// Resubmission replaces the whole record; omitted fields become null.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/user-kyc", token, fiber.Map{
		"user_id":        1,
		"account_number": "987654321",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	decodeBody(t, resp, &body)
	if body.Kyc.AccountNumber == nil || *body.Kyc.AccountNumber != "987654321" {
		t.Errorf("expected account_number replaced, got %v", body.Kyc.AccountNumber)
	}
	if body.Kyc.UpiID != nil {
		t.Errorf("expected upi_id cleared on resubmission, got %v", *body.Kyc.UpiID)
	}

	var count int64
	database.DB.Model(&models.UserKyc{}).Where("user_id = ?", 1).Count(&count)
	if count != 1 {
		t.Errorf("expected one KYC row per user, found %d", count)
	}
}

func TestUpdateKycApproval(t *testing.T) {
	app := setupTestApp(t)
	seedTestAdmin(t)
	token := loginToken(t, app)
	seedTestUser(t, 1)

	kyc := models.UserKyc{UserID: 1, AccountNumber: ptrString("123456789"), ApprovalStatus: models.ApprovalPending}
	if err := database.DB.Create(&kyc).Error; err != nil {
		t.Fatalf("failed to seed KYC: %v", err)
	}

	resp := doJSON(t, app, http.MethodPut, "/api/v1/user-kyc/1/approval", token, fiber.Map{
		"approval_status": "approved",
		"approved_by":     1,
		"admin_notes":     "documents verified",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body struct {
		Kyc models.UserKyc `json:"kyc"`
	}
	decodeBody(t, resp, &body)
	if body.Kyc.ApprovalStatus != models.ApprovalApproved {
		t.Errorf("expected approved, got %q", body.Kyc.ApprovalStatus)
	}
	if body.Kyc.ApprovedAt == nil {
		t.Error("approved KYC must carry approved_at")
	}

	// Reverting to pending clears the timestamp.
	resp = doJSON(t, app, http.MethodPut, "/api/v1/user-kyc/1/approval", token, fiber.Map{
		"approval_status": "pending",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	decodeBody(t, resp, &body)
	if body.Kyc.ApprovedAt != nil {
		t.Error("pending KYC must not carry approved_at")
	}
}

func TestUpdateKycApprovalInvalidStatus(t *testing.T) {
	app := setupTestApp(t)
	seedTestAdmin(t)
	token := loginToken(t, app)

	resp := doJSON(t, app, http.MethodPut, "/api/v1/user-kyc/1/approval", token, fiber.Map{
		"approval_status": "maybe",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestUpdateKycApprovalNotFound(t *testing.T) {
	app := setupTestApp(t)
	seedTestAdmin(t)
	token := loginToken(t, app)

	resp := doJSON(t, app, http.MethodPut, "/api/v1/user-kyc/99/approval", token, fiber.Map{
		"approval_status": "approved",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestListKycEmpty(t *testing.T) {
	app := setupTestApp(t)
	seedTestAdmin(t)
	token := loginToken(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/user-kyc", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var kycs []models.UserKyc
	decodeBody(t, resp, &kycs)
	if kycs == nil {
		t.Fatal("expected an empty array, got null")
	}
	if len(kycs) != 0 {
		t.Fatalf("expected 0 rows, got %d", len(kycs))
	}
}
