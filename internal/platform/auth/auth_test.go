package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func TestIssueAndParse(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	userID := uuid.New()

	token, err := issuer.Issue(userID, "pat@example.com", "user")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := issuer.Parse(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := claims.UserID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed != userID {
		t.Errorf("expected subject %s, got %s", userID, parsed)
	}
	if claims.Email != "pat@example.com" {
		t.Errorf("expected email claim, got %q", claims.Email)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("secret-a", time.Hour)
	token, err := issuer.Issue(uuid.New(), "x@example.com", "user")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	other := NewTokenIssuer("secret-b", time.Hour)
	if _, err := other.Parse(token); err == nil {
		t.Fatal("expected error for token signed with different secret")
	}
}

func TestParse_Expired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)
	token, err := issuer.Issue(uuid.New(), "x@example.com", "user")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := issuer.Parse(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "correct horse battery" {
		t.Fatal("hash must not equal plaintext")
	}
	if !CheckPassword(hash, "correct horse battery") {
		t.Error("expected password to verify")
	}
	if CheckPassword(hash, "wrong password") {
		t.Error("expected wrong password to fail")
	}
}

func TestHashPassword_TooShort(t *testing.T) {
	if _, err := HashPassword("short"); err == nil {
		t.Fatal("expected error for short password")
	}
}

func TestMiddleware(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	userID := uuid.New()
	token, _ := issuer.Issue(userID, "pat@example.com", "user")

	e := echo.New()
	handler := Middleware(issuer)(func(c echo.Context) error {
		got, err := UserID(c)
		if err != nil {
			return err
		}
		if got != userID {
			t.Errorf("expected user id %s, got %s", userID, got)
		}
		if id, ok := UserIDFromContext(c.Request().Context()); !ok || id != userID {
			t.Error("expected user id in request context")
		}
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	if err := handler(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMiddleware_Rejections(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	e := echo.New()
	handler := Middleware(issuer)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not-a-jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			err := handler(e.NewContext(req, rec))
			httpErr, ok := err.(*echo.HTTPError)
			if !ok || httpErr.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %v", err)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	e := echo.New()
	handler := RequireRole("admin")(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_role", "user")
	err := handler(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusForbidden {
		t.Errorf("expected 403 for wrong role, got %v", err)
	}

	c2 := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c2.Set("user_role", "admin")
	if err := handler(c2); err != nil {
		t.Errorf("expected admin role to pass, got %v", err)
	}
}
