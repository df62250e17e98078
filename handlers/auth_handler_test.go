package handlers_test

import (
	"net/http"
	"testing"

	"github.com/anocab/anocab-admin/database"
	"github.com/anocab/anocab-admin/models"
	"github.com/gofiber/fiber/v2"
)

func TestLoginAdmin(t *testing.T) {
	app := setupTestApp(t)
	seedTestAdmin(t)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"username": testAdminUsername,
		"password": testAdminPassword,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Token   string       `json:"token"`
		Admin   models.Admin `json:"admin"`
		Message string       `json:"message"`
	}
	decodeBody(t, resp, &body)
	if body.Token == "" {
		t.Error("expected a token in the response")
	}
	if body.Admin.Username != testAdminUsername {
		t.Errorf("expected admin username %q, got %q", testAdminUsername, body.Admin.Username)
	}

	var stored models.Admin
	database.DB.First(&stored, "username = ?", testAdminUsername)
	if stored.LastLogin == nil {
		t.Error("expected last_login to be set after login")
	}
}

func TestLoginAdminWrongPassword(t *testing.T) {
	app := setupTestApp(t)
	seedTestAdmin(t)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"username": testAdminUsername,
		"password": "wrong-password",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestLoginAdminUnknownUser(t *testing.T) {
	app := setupTestApp(t)
	seedTestAdmin(t)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"username": "nobody",
		"password": testAdminPassword,
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestLoginAdminMissingFields(t *testing.T) {
	app := setupTestApp(t)
	seedTestAdmin(t)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"username": testAdminUsername,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	app := setupTestApp(t)
	seedTestAdmin(t)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/users", "", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing JWT, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/v1/users", "not-a-token", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad JWT, got %d", resp.StatusCode)
	}
}
