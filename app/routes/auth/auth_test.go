package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/CalvinOheneba/Feeding/app/models"
	"github.com/gofiber/fiber/v2"
)

func testUser() *models.User {
	stationID := "22222222-2222-2222-2222-222222222222"
	return &models.User{
		ID:        "11111111-1111-1111-1111-111111111111",
		Name:      "Teacher Alice",
		Email:     "alice@school.com",
		Role:      models.RoleTeacher,
		StationID: &stationID,
		IsActive:  true,
	}
}

func TestJWTRoundTrip(t *testing.T) {
	user := testUser()

	token, err := GenerateJWT(user)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT failed: %v", err)
	}

	if claims.UserID != user.ID || claims.Email != user.Email || claims.Role != user.Role {
		t.Errorf("claims do not match user: %+v", claims)
	}
	if claims.StationID == nil || *claims.StationID != *user.StationID {
		t.Errorf("station claim lost: %+v", claims.StationID)
	}
}

func TestValidateJWT_Garbage(t *testing.T) {
	if _, err := ValidateJWT("not-a-token"); err == nil {
		t.Error("expected an error for a malformed token")
	}
}

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", AuthMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user": CurrentUser(c)})
	})
	app.Get("/admin-only", AuthMiddleware, RoleMiddleware(models.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(200)
	})
	return app
}

func TestAuthMiddleware_NoToken(t *testing.T) {
	app := protectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthMiddleware_BadToken(t *testing.T) {
	app := protectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	app := protectedApp()

	token, err := GenerateJWT(testUser())
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestRoleMiddleware_Forbidden(t *testing.T) {
	app := protectedApp()

	// Teacher token on an admin route
	token, err := GenerateJWT(testUser())
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 403 {
		t.Errorf("expected 403, got %d", resp.StatusCode)
	}
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"alice@school.com", true},
		{"a@b.co", true},
		{"no-at-sign", false},
		{"@school.com", false},
		{"alice@nodot", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := validEmail(tt.email); got != tt.want {
			t.Errorf("validEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestAttemptTracker(t *testing.T) {
	tracker := newAttemptTracker()
	email := "alice@school.com"

	if tracker.blocked(email) {
		t.Fatal("fresh tracker should not block")
	}

	for i := 0; i < maxFailedAttempts; i++ {
		tracker.record(email)
	}
	if !tracker.blocked(email) {
		t.Errorf("expected block after %d failures", maxFailedAttempts)
	}

	// Other accounts are unaffected
	if tracker.blocked("bob@school.com") {
		t.Error("unrelated account should not be blocked")
	}

	tracker.reset(email)
	if tracker.blocked(email) {
		t.Error("reset should clear the block")
	}
}

func TestAttemptTracker_WindowExpiry(t *testing.T) {
	tracker := newAttemptTracker()
	email := "alice@school.com"

	old := time.Now().Add(-attemptWindow - time.Minute)
	for i := 0; i < maxFailedAttempts; i++ {
		tracker.failed[email] = append(tracker.failed[email], old)
	}

	if tracker.blocked(email) {
		t.Error("attempts outside the window must not count")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("teacher123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if !CheckPasswordHash("teacher123", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("wrong password accepted")
	}
}
