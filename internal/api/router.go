package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/usermgmt/user-service/internal/api/handler"
	"github.com/usermgmt/user-service/internal/api/middleware"
	"github.com/usermgmt/user-service/internal/core/domain"
	"github.com/usermgmt/user-service/internal/core/service"
	"github.com/usermgmt/user-service/internal/infrastructure/config"
	mongodb "github.com/usermgmt/user-service/internal/infrastructure/db/mongo"
	redisdb "github.com/usermgmt/user-service/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := newEcho(log)
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("users"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	userService := service.NewUserService(userRepo, log)
	authService := service.NewAuthService(userService, log)
	sessions := redisdb.NewSessionStore(rdb, cfg.Session.TTL)

	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(authService, sessions, cfg.Session.CookieName)

	registerRoutes(e, userHandler, authHandler, middleware.Auth(sessions, cfg.Session.CookieName))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

// newEcho builds the bare Echo instance with the validator, the domain error
// translator and the always-on middleware.
func newEcho(log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())

	return e
}

// registerRoutes mounts the auth flow and the user CRUD surface. The three
// mutating user endpoints are gated to ADMIN before the handler runs.
func registerRoutes(e *echo.Echo, users *handler.UserHandler, auth *handler.AuthHandler, authMiddleware echo.MiddlewareFunc) {
	adminOnly := middleware.RBAC(string(domain.RoleAdmin))

	e.POST("/login", auth.Login)
	e.POST("/logout", auth.Logout)

	g := e.Group("/users", authMiddleware)
	g.POST("", users.Create, adminOnly)
	g.GET("/:id", users.Get)
	g.GET("", users.List)
	g.PUT("/:id", users.Update, adminOnly)
	g.DELETE("/:id", users.Delete, adminOnly)
}
