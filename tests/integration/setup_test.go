package integration

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"spendbot/internal/categorizer"
	"spendbot/internal/database"
	"spendbot/internal/handlers"
	"spendbot/internal/logger"
	"spendbot/internal/middleware"
	"spendbot/internal/models"
	"spendbot/internal/services"
	"spendbot/internal/session"
	"spendbot/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single
// test, migrated and seeded with the category reference table.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:flowdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Record{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	if err := database.SeedCategories(db); err != nil {
		t.Fatalf("failed to seed categories: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory
// SQLite. The cat image service points at catURL; tests that do not hit /cat
// pass an empty string.
func setupApp(t *testing.T, catURL string) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	userService := services.NewUserService(db)
	expenseService := services.NewExpenseService(db, userService, categorizer.Default())
	statsService := services.NewStatsService(db, userService)
	categoryService := services.NewCategoryService(db)
	catService := services.NewCatImageService(catURL, time.Second)
	sessions := session.NewManager(0)

	// Handlers
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	statsHandler := handlers.NewStatsHandler(statsService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	catHandler := handlers.NewCatHandler(catService)
	sessionHandler := handlers.NewSessionHandler(sessions)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

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

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}
