package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rolebase/blog-api/internal/api/handler"
	"github.com/rolebase/blog-api/internal/api/middleware"
	"github.com/rolebase/blog-api/internal/core/domain"
	"github.com/rolebase/blog-api/internal/core/service"
	"github.com/rolebase/blog-api/internal/infrastructure/config"
	mongorepo "github.com/rolebase/blog-api/internal/infrastructure/db/mongo"
	healthhandlers "github.com/rolebase/blog-api/internal/infrastructure/http/handlers"
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
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	postRepo := mongorepo.NewPostRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	postService := service.NewPostService(postRepo, userRepo, log)
	userService := service.NewUserService(userRepo, postRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	userHandler := handler.NewUserHandler(userService)

	requireAuth := middleware.Auth(cfg.JWTSecret)
	optionalAuth := middleware.OptionalAuth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Post routes ---
	// Reads tolerate anonymous callers; the resolved role only narrows
	// visibility. Writes are gated by role.
	e.GET("/posts", postHandler.List, optionalAuth)
	e.GET("/posts/:id", postHandler.Get, optionalAuth)
	e.POST("/posts", postHandler.Create, requireAuth, middleware.RBAC(domain.RoleWriter, domain.RoleAdmin))
	e.PATCH("/posts/:id", postHandler.Update, requireAuth, middleware.RBAC(domain.RoleAdmin))
	e.DELETE("/posts/:id", postHandler.Delete, requireAuth, middleware.RBAC(domain.RoleAdmin))

	// --- User routes (admin only) ---
	e.GET("/users", userHandler.List, requireAuth, middleware.RBAC(domain.RoleAdmin))
	e.PATCH("/users/:id/role", userHandler.UpdateRole, requireAuth, middleware.RBAC(domain.RoleAdmin))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
