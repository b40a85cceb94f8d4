package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devportfolio/portfolio-api/internal/api/handler"
	"github.com/devportfolio/portfolio-api/internal/api/middleware"
	"github.com/devportfolio/portfolio-api/internal/core/ports"
	"github.com/devportfolio/portfolio-api/internal/core/revocation"
	"github.com/devportfolio/portfolio-api/internal/core/service"
	"github.com/devportfolio/portfolio-api/internal/core/token"
	mongodb "github.com/devportfolio/portfolio-api/internal/infrastructure/db/mongo"
	redisdb "github.com/devportfolio/portfolio-api/internal/infrastructure/db/redis"
	"github.com/devportfolio/portfolio-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil when the in-memory revocation backend is configured; store is
// the upload backend selected in main.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, store ports.FileStore, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("portfolio"))

	// --- Dependencies ---
	var registry ports.RevocationRegistry
	if cfg.RevocationBackend == "redis" {
		registry = redisdb.NewDenylist(rdb, cfg.TokenTTL)
	} else {
		registry = revocation.NewMemory()
	}

	issuer := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL, registry, nil)

	userRepo := mongodb.NewUserRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)

	accountService := service.NewAccountService(userRepo, issuer, registry, nil, log)
	projectService := service.NewProjectService(projectRepo, cfg.PublicBaseURL, nil, log)

	authHandler := handler.NewAuthHandler(accountService)
	projectHandler := handler.NewProjectHandler(projectService)
	uploadHandler := handler.NewUploadHandler(store)
	authRequired := middleware.Auth(issuer)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.PUT("/auth/edit", authHandler.Edit, authRequired)
	e.POST("/auth/logout", authHandler.Logout, authRequired)
	e.GET("/auth/users", authHandler.ListUsers, authRequired)

	// --- Project routes (reads are anonymous) ---
	e.GET("/projects", projectHandler.List)
	e.GET("/projects/:id", projectHandler.Get)
	e.POST("/projects", projectHandler.Create, authRequired)
	e.PUT("/projects/:id", projectHandler.Update, authRequired)
	e.DELETE("/projects/:id", projectHandler.Delete, authRequired)

	// --- Upload routes ---
	e.POST("/uploads", uploadHandler.UploadOne, authRequired)
	e.POST("/uploads/batch", uploadHandler.UploadMany, authRequired)

	// Locally stored uploads are served by this process.
	if cfg.Storage.Backend == "local" {
		e.Static("/static/uploads", cfg.Storage.UploadDir)
	}

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
