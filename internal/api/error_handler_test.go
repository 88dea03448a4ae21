package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bookstore/identity-service/internal/core/domain"
)

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"duplicate email", domain.ErrEmailTaken, http.StatusBadRequest},
		{"missing fields", domain.ErrMissingFields, http.StatusBadRequest},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"user not found", domain.ErrUserNotFound, http.StatusBadRequest},
		{"role not found", domain.ErrRoleNotFound, http.StatusBadRequest},
		{"wrapped role not found", fmt.Errorf("%w: AUDITOR", domain.ErrRoleNotFound), http.StatusBadRequest},
		{"role exists", domain.ErrRoleExists, http.StatusBadRequest},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"echo error", echo.NewHTTPError(http.StatusTooManyRequests, "slow down"), http.StatusTooManyRequests},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			NewHTTPErrorHandler(zerolog.Nop())(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
		})
	}
}

func TestHTTPErrorHandler_HidesInternalDetail(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("pq: secret connection string"), c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != `{"error":"internal server error"}`+"\n" {
		t.Fatalf("internal detail leaked: %s", body)
	}
}
