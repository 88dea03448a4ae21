package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRoles gates a route on the caller's role claims: anonymous requests
// get 401, authenticated callers lacking every allowed role get 403.
func RequireRoles(allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := IdentityFrom(c)
			if identity == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			for _, role := range allowedRoles {
				if identity.HasRole(role) {
					return next(c)
				}
			}

			return echo.NewHTTPError(http.StatusForbidden, "forbidden")
		}
	}
}
