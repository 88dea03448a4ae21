package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookstore/identity-service/internal/api/metrics"
	"github.com/bookstore/identity-service/internal/core/ports"
)

// LoginLimiter throttles login attempts per credential. Implementations are
// fail-open: an unavailable backend allows the attempt and returns a nil
// error, so it must not lock users out.
type LoginLimiter interface {
	Allow(ctx context.Context, email string) (bool, error)
}

type AuthHandler struct {
	authService ports.AuthService
	tokens      ports.TokenService
	limiter     LoginLimiter
}

func NewAuthHandler(authService ports.AuthService, tokens ports.TokenService, limiter LoginLimiter) *AuthHandler {
	return &AuthHandler{authService: authService, tokens: tokens, limiter: limiter}
}

// Register creates a new user account and returns its first token.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/users/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}
	metrics.RegistrationsTotal.Inc()

	token, err := h.tokens.Issue(user.Email, user.Roles)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// Login authenticates a user and returns a fresh token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/users/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	allowed, err := h.limiter.Allow(c.Request().Context(), req.Email)
	if err != nil {
		return err
	}
	if !allowed {
		metrics.LoginsThrottledTotal.Inc()
		return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts")
	}

	user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	token, err := h.tokens.Issue(user.Email, user.Roles)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// Me returns the identity claims carried by the presented token.
//
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/users/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	roles := identity.Roles
	if roles == nil {
		roles = []string{}
	}
	return c.JSON(http.StatusOK, profileResponse{Email: identity.Email, Roles: roles})
}
