package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bookstore/identity-service/internal/api/handler"
	"github.com/bookstore/identity-service/internal/api/middleware"
	"github.com/bookstore/identity-service/internal/core/domain"
	"github.com/bookstore/identity-service/internal/core/ports"
	"github.com/bookstore/identity-service/internal/core/service"
	mongostore "github.com/bookstore/identity-service/internal/infrastructure/db/mongo"
	redisstore "github.com/bookstore/identity-service/internal/infrastructure/db/redis"
	"github.com/bookstore/identity-service/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, tokens ports.TokenService, events service.EventSink, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("identity"))
	e.Use(middleware.Identity(tokens))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	roleRepo := mongostore.NewRoleRepository(db)
	authService := service.NewAuthService(userRepo, roleRepo, events, log)
	roleService := service.NewRoleService(userRepo, roleRepo)
	adminService := service.NewAdminService(userRepo)
	loginLimiter := redisstore.NewLoginLimiter(rdb, log)

	authHandler := handler.NewAuthHandler(authService, tokens, loginLimiter)
	roleHandler := handler.NewRoleHandler(roleService)
	adminHandler := handler.NewAdminHandler(adminService)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/api/users/register", authHandler.Register)
	e.POST("/api/users/login", authHandler.Login)
	e.GET("/api/users/me", authHandler.Me)

	// --- Role administration (ADMIN gated) ---
	e.POST("/api/users/:userId/roles", roleHandler.AssignRoles, adminOnly)
	e.POST("/api/roles", roleHandler.CreateRole, adminOnly)

	// --- Admin dashboard (ADMIN gated) ---
	e.GET("/api/admin/stats", adminHandler.Stats, adminOnly)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
