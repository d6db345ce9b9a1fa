package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/smalab/social-analyzer/backend/internal/router"
	"github.com/smalab/social-analyzer/backend/pkg/config"
	"github.com/smalab/social-analyzer/backend/pkg/logger"
	"github.com/smalab/social-analyzer/backend/validators"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		zlog.Fatal("failed to initialize database", zap.Error(err))
	}
	defer config.CloseDB(db, zlog)

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db, zlog)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	zlog.Info("starting server", zap.String("port", cfg.Port))
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
