package handlers_test

import (
	"net/http"
	"testing"

	"github.com/anocab/anocab-admin/database"
	"github.com/anocab/anocab-admin/models"
	"github.com/gofiber/fiber/v2"
)

func TestMarkRedeemPayoutDone(t *testing.T) {
	app := setupTestApp(t)
	seedTestAdmin(t)
	token := loginToken(t, app)
	seedTestUser(t, 5)
	seedTestRedeem(t, 10, 5, 250.00)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/redeem-payouts/mark-done", token, fiber.Map{
		"redeem_transaction_id": 10,
		"processed_by":          2,
		"payout_method":         "upi",
		"payout_reference":      "UTR999",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Message string              `json:"message"`
		Payout  models.RedeemPayout `json:"payout"`
	}
	decodeBody(t, resp, &body)
	if body.Message != "Redeem payout marked done" {
		t.Errorf("unexpected message %q", body.Message)
	}
	if body.Payout.Status != models.PayoutDone {
		t.Errorf("expected payout status done, got %q", body.Payout.Status)
	}
	if body.Payout.RedeemTransactionID != 10 {
		t.Errorf("expected redeem_transaction_id 10, got %d", body.Payout.RedeemTransactionID)
	}
	if body.Payout.Amount != 250.00 {
		t.Errorf("expected amount 250.00, got %v", body.Payout.Amount)
	}

	var rt models.RedeemTransaction
	database.DB.First(&rt, "id = ?", 10)
	if rt.Status != models.RedeemCompleted {
		t.Errorf("expected redeem status completed, got %q", rt.Status)
	}
	if rt.Remarks == nil || *rt.Remarks != "Payout done" {
		t.Errorf("expected remarks %q, got %v", "Payout done", rt.Remarks)
	}
}

func TestMarkRedeemPayoutDoneUnknownRedeem(t *testing.T) {
	app := setupTestApp(t)
	seedTestAdmin(t)
	token := loginToken(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/redeem-payouts/mark-done", token, fiber.Map{
		"redeem_transaction_id": 999,
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	var count int64
	database.DB.Model(&models.RedeemPayout{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no payout rows, found %d", count)
	}
}

func TestMarkRedeemPayoutDoneTwiceConflicts(t *testing.T) {
	app := setupTestApp(t)
	seedTestAdmin(t)
	token := loginToken(t, app)
	seedTestUser(t, 5)
	seedTestRedeem(t, 10, 5, 100.00)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/redeem-payouts/mark-done", token, fiber.Map{
		"redeem_transaction_id": 10,
		"admin_notes":           "first settlement",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("first call: expected 200, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodPost, "/api/v1/redeem-payouts/mark-done", token, fiber.Map{
		"redeem_transaction_id": 10,
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("second call: expected 409, got %d", resp.StatusCode)
	}

	var count int64
	database.DB.Model(&models.RedeemPayout{}).Where("redeem_transaction_id = ?", 10).Count(&count)
	if count != 1 {
		t.Errorf("expected exactly one payout row, found %d", count)
	}

	var rt models.RedeemTransaction
	database.DB.First(&rt, "id = ?", 10)
	if rt.Remarks == nil || *rt.Remarks != "Payout note: first settlement" {
		t.Errorf("conflict must not touch remarks, got %v", rt.Remarks)
	}
}

func TestMarkRedeemPayoutDoneValidation(t *testing.T) {
	app := setupTestApp(t)
	seedTestAdmin(t)
	token := loginToken(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/redeem-payouts/mark-done", token, fiber.Map{
		"payout_method": "upi",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 without redeem_transaction_id, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodPost, "/api/v1/redeem-payouts/mark-done", token, fiber.Map{
		"redeem_transaction_id": 10,
		"payout_method":         "cheque",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad payout_method, got %d", resp.StatusCode)
	}
}

func TestListRedeemPayouts(t *testing.T) {
	app := setupTestApp(t)
	seedTestAdmin(t)
	token := loginToken(t, app)
	seedTestUser(t, 1)
	seedTestUser(t, 2)
	seedTestRedeem(t, 1, 1, 50.00)
	seedTestRedeem(t, 2, 2, 75.00)

	for _, rtID := range []uint{1, 2} {
		resp := doJSON(t, app, http.MethodPost, "/api/v1/redeem-payouts/mark-done", token, fiber.Map{
			"redeem_transaction_id": rtID,
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("mark-done for %d: expected 200, got %d", rtID, resp.StatusCode)
		}
	}

	resp := doJSON(t, app, http.MethodGet, "/api/v1/redeem-payouts", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var payouts []models.RedeemPayout
	decodeBody(t, resp, &payouts)
	if len(payouts) != 2 {
		t.Fatalf("expected 2 payouts, got %d", len(payouts))
	}
	if payouts[0].RedeemTransactionID != 2 {
		t.Errorf("expected most recent payout first, got redeem id %d", payouts[0].RedeemTransactionID)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/v1/redeem-payouts?user_id=1", token, nil)
	decodeBody(t, resp, &payouts)
	if len(payouts) != 1 || payouts[0].UserID != 1 {
		t.Errorf("user_id filter returned wrong rows: %+v", payouts)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/v1/redeem-payouts?status=pending", token, nil)
	decodeBody(t, resp, &payouts)
	if len(payouts) != 0 {
		t.Errorf("expected empty array for pending filter, got %d rows", len(payouts))
	}

	resp = doJSON(t, app, http.MethodGet, "/api/v1/redeem-payouts?status=paid", token, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid status filter, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/v1/redeem-payouts?user_id=abc", token, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for non-numeric user_id, got %d", resp.StatusCode)
	}
}

func TestCreateRedeemPayoutManual(t *testing.T) {
	app := setupTestApp(t)
	seedTestAdmin(t)
	token := loginToken(t, app)
	seedTestUser(t, 1)
	seedTestRedeem(t, 1, 1, 120.00)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/redeem-payouts", token, fiber.Map{
		"redeem_transaction_id": 1,
		"user_id":               1,
		"amount":                120.00,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body struct {
		Payout models.RedeemPayout `json:"payout"`
	}
	decodeBody(t, resp, &body)
	if body.Payout.Status != models.PayoutPending {
		t.Errorf("expected default status pending, got %q", body.Payout.Status)
	}
	if body.Payout.ProcessedAt != nil {
		t.Error("pending payout must not have processed_at")
	}

	// Manual create never touches the redeem transaction.
	var rt models.RedeemTransaction
	database.DB.First(&rt, "id = ?", 1)
	if rt.Status != models.RedeemPending {
		t.Errorf("redeem status should stay pending, got %q", rt.Status)
	}

	resp = doJSON(t, app, http.MethodPost, "/api/v1/redeem-payouts", token, fiber.Map{
		"redeem_transaction_id": 1,
		"user_id":               1,
		"amount":                120.00,
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate, got %d", resp.StatusCode)
	}
}
