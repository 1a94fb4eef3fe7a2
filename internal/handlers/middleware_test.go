package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"cinema-backend/internal/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func newAuthTestApp(t *testing.T) (*fiber.App, auth.TokenManager) {
	t.Helper()

	tokenManager, err := auth.NewTokenManager("test-secret", time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	middleware := NewAuthMiddleware(tokenManager, log)

	app := fiber.New()
	app.Get("/user", middleware.RequireUser(), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(localUserID).(string))
	})
	app.Get("/admin", middleware.RequireUser(), middleware.RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app, tokenManager
}

func TestRequireUserRejectsMissingHeader(t *testing.T) {
	app, _ := newAuthTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/user", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestRequireUserRejectsMalformedHeader(t *testing.T) {
	app, _ := newAuthTestApp(t)

	req := httptest.NewRequest("GET", "/user", nil)
	req.Header.Set("Authorization", "Token abc")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestRequireUserRejectsInvalidToken(t *testing.T) {
	app, _ := newAuthTestApp(t)

	req := httptest.NewRequest("GET", "/user", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestRequireUserAcceptsValidToken(t *testing.T) {
	app, tokenManager := newAuthTestApp(t)

	pair, err := tokenManager.GeneratePair("64f1c0ffee0000000000abcd", false)
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}

	req := httptest.NewRequest("GET", "/user", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestRequireAdminForbidsRegularUser(t *testing.T) {
	app, tokenManager := newAuthTestApp(t)

	pair, err := tokenManager.GeneratePair("64f1c0ffee0000000000abcd", false)
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("status = %d, want 403", resp.StatusCode)
	}
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	app, tokenManager := newAuthTestApp(t)

	pair, err := tokenManager.GeneratePair("64f1c0ffee0000000000abcd", true)
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
