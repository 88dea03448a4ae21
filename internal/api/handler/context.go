package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookstore/identity-service/internal/api/middleware"
	"github.com/bookstore/identity-service/internal/core/domain"
)

// ctxIdentity extracts the identity attached by the Identity middleware and
// fast-fails anonymous requests before any service call. Role gating happens
// in the middleware chain; this only proves the caller is authenticated.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	identity := middleware.IdentityFrom(c)
	if identity == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid token")
	}
	return identity, nil
}
