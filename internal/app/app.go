package app

import (
	"fmt"
	"time"

	"portfolio_backend/database"
	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/config"
	"portfolio_backend/internal/handlers"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/middleware"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/routes"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	_ = godotenv.Load()

	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	auth.Init(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Hour)

	logger.Info("Connecting to database...")
	// TranslateError: нарушение уникального индекса должно приходить
	// как gorm.ErrDuplicatedKey, а не как сырая ошибка драйвера
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает полный Gin-роутер поверх переданного хендла БД.
// Используется и в Run, и тестовым сервером.
func SetupRouter(gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices()
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices() *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	projectRepo := repositories.NewProjectRepository()
	contactRepo := repositories.NewContactRepository()

	return &services.ServiceContainer{
		AuthService:    services.NewAuthService(userRepo, profileRepo),
		ProjectService: services.NewProjectService(projectRepo),
		ProfileService: services.NewProfileService(profileRepo),
		ContactService: services.NewContactService(contactRepo, userRepo),
	}
}

func initializeHandlers(svc *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(baseHandler, svc.AuthService),
		ProjectHandler: handlers.NewProjectHandler(baseHandler, svc.ProjectService),
		ProfileHandler: handlers.NewProfileHandler(baseHandler, svc.ProfileService),
		ContactHandler: handlers.NewContactHandler(baseHandler, svc.ContactService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
