package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bookstore/identity-service/internal/core/domain"
	"github.com/bookstore/identity-service/internal/core/ports"
)

const identityKey = "identity"

// Identity reconstructs the caller's identity from a bearer token and stores
// it in the request context. It never rejects: a missing, malformed or
// invalid token leaves the request anonymous and defers the authorization
// decision to the role gate.
func Identity(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			token := parts[1]
			if !tokens.Validate(token) {
				return next(c)
			}

			c.Set(identityKey, &domain.Identity{
				Email: tokens.Subject(token),
				Roles: tokens.Roles(token),
			})

			return next(c)
		}
	}
}

// IdentityFrom returns the identity attached by the Identity middleware, or
// nil when the request is anonymous.
func IdentityFrom(c echo.Context) *domain.Identity {
	id, _ := c.Get(identityKey).(*domain.Identity)
	return id
}
