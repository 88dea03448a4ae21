package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bookstore/identity-service/internal/core/service"
)

func TestIdentity_ValidToken(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Hour)
	token, err := tokens.Issue("alice@x.com", []string{"USER"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Identity(tokens)
	handler := mw(func(c echo.Context) error {
		called = true
		identity := IdentityFrom(c)
		if identity == nil {
			t.Fatalf("identity not attached")
		}
		if identity.Email != "alice@x.com" {
			t.Fatalf("unexpected email: %s", identity.Email)
		}
		if !identity.HasRole("USER") {
			t.Fatalf("USER role missing: %v", identity.Roles)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestIdentity_MissingHeader_Anonymous(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Identity(service.NewTokenService("secret", time.Hour))
	handler := mw(func(c echo.Context) error {
		if IdentityFrom(c) != nil {
			t.Fatalf("expected anonymous request")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("anonymous request must pass through, got %d", rec.Code)
	}
}

func TestIdentity_MalformedHeader_Anonymous(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Identity(service.NewTokenService("secret", time.Hour))
	handler := mw(func(c echo.Context) error {
		if IdentityFrom(c) != nil {
			t.Fatalf("expected anonymous request")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestIdentity_InvalidToken_Anonymous(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Hour)

	// Signed with a different key.
	other := service.NewTokenService("other", time.Hour)
	token, err := other.Issue("mallory@x.com", []string{"ADMIN"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Identity(tokens)
	handler := mw(func(c echo.Context) error {
		if IdentityFrom(c) != nil {
			t.Fatalf("forged token must not attach an identity")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestIdentity_ExpiredToken_Anonymous(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Hour)
	expired := service.NewTokenService("secret", -time.Minute)
	token, err := expired.Issue("late@x.com", []string{"USER"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Identity(tokens)
	handler := mw(func(c echo.Context) error {
		if IdentityFrom(c) != nil {
			t.Fatalf("expired token must not attach an identity")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
