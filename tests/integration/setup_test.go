package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"impactcat/internal/authz"
	"impactcat/internal/handlers"
	"impactcat/internal/logger"
	"impactcat/internal/middleware"
	"impactcat/internal/models"
	"impactcat/internal/services"
	"impactcat/internal/validator"
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

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.AuditLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	userService := services.NewUserService(db)
	categoryService := services.NewCategoryService(db)
	productService := services.NewProductService(db)
	auditService := services.NewAuditService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, auditService)
	productHandler := handlers.NewProductHandler(productService, auditService)

	policy := authz.DefaultPolicy()

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)

	products := protected.Group("/impact-products")
	products.GET("", productHandler.ListProducts)
	products.GET("/:id", productHandler.GetProductByID)
	products.POST("", middleware.RequireLevel(policy, authz.LevelManager), productHandler.CreateProduct)
	products.PUT("/:id", middleware.RequireLevel(policy, authz.LevelManager), productHandler.UpdateProduct)
	products.DELETE("/:id", middleware.RequireLevel(policy, authz.LevelAdmin), productHandler.DeleteProduct)

	categories := protected.Group("/categories")
	categories.GET("", categoryHandler.GetCategories)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.POST("", middleware.RequireLevel(policy, authz.LevelManager), categoryHandler.CreateCategory)
	categories.PUT("/:id", middleware.RequireLevel(policy, authz.LevelManager), categoryHandler.UpdateCategory)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
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

// registerUser registers a new user and returns the token and user ID.
// Every registration starts at the viewer role.
func (app *testApp) registerUser(t *testing.T, email, password string) (token, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"first_name":"Test","last_name":"User"}`, email, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["token"].(string), user["id"].(string)
}

// registerUserAs registers a user, promotes it to the given role directly in
// the database, and logs in again so the token carries the new role claim.
func (app *testApp) registerUserAs(t *testing.T, email, password, role string) (token, userID string) {
	t.Helper()
	_, userID = app.registerUser(t, email, password)
	if err := app.DB.Model(&models.User{}).Where("id = ?", userID).Update("role", role).Error; err != nil {
		t.Fatalf("failed to promote user: %v", err)
	}

	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login after promotion failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["token"].(string), userID
}

// createCategory creates a category through the API and returns its ID.
func (app *testApp) createCategory(t *testing.T, token, name string) string {
	t.Helper()
	rec := app.request("POST", "/api/v1/categories", fmt.Sprintf(`{"name":%q}`, name), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create category failed: %d %s", rec.Code, rec.Body.String())
	}
	category := parseJSON(t, rec)["category"].(map[string]interface{})
	return category["id"].(string)
}

// createProduct creates an impact product through the API and returns its ID.
func (app *testApp) createProduct(t *testing.T, token, name, category, group string) string {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"category":%q,"group":%q}`, name, category, group)
	rec := app.request("POST", "/api/v1/impact-products", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create product failed: %d %s", rec.Code, rec.Body.String())
	}
	product := parseJSON(t, rec)["product"].(map[string]interface{})
	return product["id"].(string)
}

// countAuditEntries returns the number of audit log rows matching the action
// and resource type.
func (app *testApp) countAuditEntries(t *testing.T, action, resourceType string) int64 {
	t.Helper()
	var count int64
	if err := app.DB.Model(&models.AuditLog{}).
		Where("action = ? AND resource_type = ?", action, resourceType).
		Count(&count).Error; err != nil {
		t.Fatalf("failed to count audit entries: %v", err)
	}
	return count
}
