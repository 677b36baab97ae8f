package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"spendbot/internal/categorizer"
	"spendbot/internal/config"
	"spendbot/internal/database"
	"spendbot/internal/handlers"
	"spendbot/internal/logger"
	"spendbot/internal/middleware"
	"spendbot/internal/services"
	"spendbot/internal/session"
	"spendbot/internal/validator"

	_ "spendbot/internal/docs" // Import swagger docs
)

// @title           Spendbot API
// @version         1.0
// @description     Spendbot records free-text chat expenses, classifies them into categories and reports per-period spending statistics.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Category rules: an explicit file wins over the built-in table.
	rules := categorizer.Default()
	if appConfig.CategoryRulesPath != "" {
		rules, err = categorizer.FromFile(appConfig.CategoryRulesPath)
		if err != nil {
			return fmt.Errorf("failed to load category rules: %w", err)
		}
		log.Infof("Loaded category rules from %s", appConfig.CategoryRulesPath)
	}

	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	expenseService := services.NewExpenseService(db, userService, rules)
	statsService := services.NewStatsService(db, userService)
	categoryService := services.NewCategoryService(db)
	catService := services.NewCatImageService(appConfig.CatAPIURL, appConfig.CatAPITimeout)
	sessions := session.NewManager(appConfig.SessionTTL)

	// Initialize handlers
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	statsHandler := handlers.NewStatsHandler(statsService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	catHandler := handlers.NewCatHandler(catService)
	sessionHandler := handlers.NewSessionHandler(sessions)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	v1.POST("/expenses", expenseHandler.CreateExpense)
	v1.GET("/records", expenseHandler.GetUserRecords)
	v1.GET("/statistics", statsHandler.GetStatistics)
	v1.GET("/categories", categoryHandler.ListCategories)
	v1.GET("/cat", catHandler.RandomCat)

	sessionRoutes := v1.Group("/sessions")
	sessionRoutes.POST("/:id/start", sessionHandler.StartSession)
	sessionRoutes.POST("/:id/await-range", sessionHandler.AwaitRange)
	sessionRoutes.POST("/:id/resolve", sessionHandler.ResolveSession)
	sessionRoutes.GET("/:id", sessionHandler.GetSession)
	sessionRoutes.DELETE("/:id", sessionHandler.CancelSession)

	log.Infof("Starting Spendbot server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
