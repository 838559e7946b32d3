package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"luvo_backend/database"
	"luvo_backend/internal/auth"
	"luvo_backend/internal/config"
	"luvo_backend/internal/email"
	"luvo_backend/internal/handlers"
	"luvo_backend/internal/logger"
	"luvo_backend/internal/middleware"
	"luvo_backend/internal/routes"
	"luvo_backend/internal/services"
	"luvo_backend/internal/validator"
)

// Run loads config, connects the database, runs migrations and starts
// the HTTP server. It only returns on fatal errors.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	db, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	logger.Info("Migrations applied")

	router, err := SetupRouter(cfg, db)
	if err != nil {
		logger.Fatal("Failed to set up router", "error", err)
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the gin engine with all middleware, services and
// routes wired. Split out from Run so tests can construct the full
// stack against their own database.
func SetupRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	emailProvider, err := email.NewProvider(cfg.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize email provider: %w", err)
	}

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)
	serviceContainer := services.NewServiceContainer(db, tokens, emailProvider, cfg.Coins.DefaultBalance)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(),
	)

	routes.RegisterRoutes(router, appHandlers, tokens)
	return router, nil
}
