package main

import (
	"fmt"
	"net/http"
	"os"

	"impactcat/internal/authz"
	"impactcat/internal/config"
	"impactcat/internal/database"
	"impactcat/internal/handlers"
	"impactcat/internal/logger"
	"impactcat/internal/middleware"
	"impactcat/internal/services"
	"impactcat/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "impactcat/internal/docs" // Import swagger docs
)

// @title           ImpactCat API
// @version         1.0
// @description     ImpactCat is a catalogue service for impact products: categorised financial instruments with role-based management and a full audit trail.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	categoryService := services.NewCategoryService(db)
	productService := services.NewProductService(db)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, auditService)
	productHandler := handlers.NewProductHandler(productService, auditService)

	// Authorization policy for write operations
	policy := authz.DefaultPolicy()

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Impact product routes. Reads are open to every authenticated role;
	// writes are gated on the policy.
	products := protected.Group("/impact-products")
	products.GET("", productHandler.ListProducts)
	products.GET("/:id", productHandler.GetProductByID)
	products.POST("", middleware.RequireLevel(policy, authz.LevelManager), productHandler.CreateProduct)
	products.PUT("/:id", middleware.RequireLevel(policy, authz.LevelManager), productHandler.UpdateProduct)
	products.DELETE("/:id", middleware.RequireLevel(policy, authz.LevelAdmin), productHandler.DeleteProduct)

	// Category routes. Categories cannot be deleted; products reference them.
	categories := protected.Group("/categories")
	categories.GET("", categoryHandler.GetCategories)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.POST("", middleware.RequireLevel(policy, authz.LevelManager), categoryHandler.CreateCategory)
	categories.PUT("/:id", middleware.RequireLevel(policy, authz.LevelManager), categoryHandler.UpdateCategory)

	log.Infof("Starting ImpactCat backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
