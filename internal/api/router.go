package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/identityservice/identity-service/docs"
	"github.com/identityservice/identity-service/internal/api/handler"
	"github.com/identityservice/identity-service/internal/api/middleware"
	"github.com/identityservice/identity-service/internal/core/service"
	"github.com/identityservice/identity-service/internal/infrastructure/config"
	mongodb "github.com/identityservice/identity-service/internal/infrastructure/db/mongo"
	redisdb "github.com/identityservice/identity-service/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("identity"))
	e.Use(middleware.Gate(cfg.JWTSecret, middleware.DefaultPolicy()))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	permissionRepo := mongodb.NewPermissionRepository(db)
	roleCache := redisdb.NewRoleCache(rdb)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	userService := service.NewUserService(userRepo, roleRepo, log)
	roleService := service.NewRoleService(roleRepo, roleCache, log)
	permissionService := service.NewPermissionService(permissionRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleService)
	permissionHandler := handler.NewPermissionHandler(permissionService)

	// --- Auth routes ---
	e.GET("/auth/welcome", authHandler.Welcome)
	e.POST("/auth/login", authHandler.Login)

	// --- User routes (create is public, the rest sit behind the gate) ---
	e.POST("/user", userHandler.Create)
	e.GET("/user", userHandler.GetAll)
	e.GET("/user/:username", userHandler.Get)
	e.PUT("/user/:username", userHandler.Update)
	e.DELETE("/user/:username", userHandler.Delete)

	// --- Role routes ---
	e.POST("/roles", roleHandler.Create)
	e.GET("/roles", roleHandler.GetAll)
	e.PUT("/roles/:name", roleHandler.Update)
	e.DELETE("/roles/:name", roleHandler.Delete)

	// --- Permission routes ---
	e.POST("/permissions", permissionHandler.Create)
	e.GET("/permissions", permissionHandler.GetAll)
	e.PUT("/permissions/:name", permissionHandler.Update)
	e.DELETE("/permissions/:name", permissionHandler.Delete)

	// --- Observability & docs (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
