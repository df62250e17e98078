package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/anocab/anocab-admin/database"
	"github.com/anocab/anocab-admin/models"
	"github.com/anocab/anocab-admin/routes"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	testAdminUsername = "admin"
	testAdminPassword = "secret123"
)

// setupTestApp swaps database.DB for a throwaway SQLite database and wires
// the full route table onto a fresh Fiber app.
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", filepath.Join(t.TempDir(), "test.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Admin{},
		&models.User{},
		&models.Blog{},
		&models.CatalogItem{},
		&models.QrCode{},
		&models.QrScan{},
		&models.RedeemTransaction{},
		&models.RedeemPayout{},
		&models.UserKyc{},
		&models.PaymentTransaction{},
		&models.CalculatorData{},
		&models.PointValueSetting{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })

	app := fiber.New()
	routes.AuthRoutes(app)
	routes.AdminRoutes(app)
	routes.UserRoutes(app)
	routes.RedeemRoutes(app)
	routes.QrRoutes(app)
	routes.ContentRoutes(app)
	routes.SettingsRoutes(app)
	return app
}

func seedTestAdmin(t *testing.T) models.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	admin := models.Admin{
		Username:  testAdminUsername,
		Email:     "admin@example.com",
		Password:  string(hash),
		FirstName: "Test",
		LastName:  "Admin",
		Role:      "admin",
		Status:    1,
	}
	if err := database.DB.Create(&admin).Error; err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}
	return admin
}

func loginToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"username": testAdminUsername,
		"password": testAdminPassword,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed with status %d", resp.StatusCode)
	}
	var body struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &body)
	if body.Token == "" {
		t.Fatal("login response has no token")
	}
	return body.Token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) *http.Response {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}

func ptrString(s string) *string { return &s }

func seedTestUser(t *testing.T, id uint) models.User {
	t.Helper()
	user := models.User{
		FirstName: "Ravi",
		LastName:  "Kumar",
		MNumber:   fmt.Sprintf("99000000%02d", id),
		UserType:  "electrician",
		Status:    0,
		Points:    1000,
	}
	user.ID = id
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedTestRedeem(t *testing.T, id, userID uint, amount float64) models.RedeemTransaction {
	t.Helper()
	rt := models.RedeemTransaction{
		UserID:  userID,
		Amount:  amount,
		OrderID: fmt.Sprintf("RD-TEST%04d", id),
		Status:  models.RedeemPending,
	}
	rt.ID = id
	if err := database.DB.Create(&rt).Error; err != nil {
		t.Fatalf("failed to seed redeem transaction: %v", err)
	}
	return rt
}
