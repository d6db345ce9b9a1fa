package router

import (
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/smalab/social-analyzer/backend/internal/handlers"
	"github.com/smalab/social-analyzer/backend/internal/models"
	"github.com/smalab/social-analyzer/backend/internal/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, logger *zap.Logger) {
	err := db.AutoMigrate(
		&models.SocialMediaPlatform{},
		&models.UserAccount{},
		&models.Post{},
		&models.Repost{},
		&models.Institute{},
		&models.Manager{},
		&models.Project{},
		&models.ProjectField{},
		&models.ProjectPost{},
		&models.AnalysisResult{},
	)
	if err != nil {
		logger.Fatal("failed to auto migrate models", zap.Error(err))
	}
	logger.Info("auto-migrations completed for all models")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	platformRepo := repositories.NewPostgresPlatformRepository(db)
	userAccountRepo := repositories.NewPostgresUserAccountRepository(db)
	instituteRepo := repositories.NewPostgresInstituteRepository(db)
	managerRepo := repositories.NewPostgresManagerRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	projectRepo := repositories.NewPostgresProjectRepository(db)
	resultRepo := repositories.NewPostgresResultRepository(db)
	experimentRepo := repositories.NewPostgresExperimentRepository(db, logger)

	api := e.Group("/api/v1")

	// Platform and account routes
	platformHandler := handlers.NewPlatformHandler(platformRepo)
	platformHandler.RegisterPlatformRoutes(api)

	userAccountHandler := handlers.NewUserAccountHandler(userAccountRepo)
	userAccountHandler.RegisterUserAccountRoutes(api)

	// Institute and manager routes
	instituteHandler := handlers.NewInstituteHandler(instituteRepo)
	instituteHandler.RegisterInstituteRoutes(api)

	managerHandler := handlers.NewManagerHandler(managerRepo)
	managerHandler.RegisterManagerRoutes(api)

	// Post and repost routes
	postHandler := handlers.NewPostHandler(postRepo)
	postHandler.RegisterPostRoutes(api)

	// Project routes (fields, associations, results)
	projectHandler := handlers.NewProjectHandler(projectRepo, resultRepo)
	projectHandler.RegisterProjectRoutes(api)

	// Experiment query routes
	experimentHandler := handlers.NewExperimentHandler(experimentRepo)
	experimentHandler.RegisterExperimentRoutes(api)

	logger.Info("all routes configured")
}
