// @title Slooze Inventory API
// @version 1.0
// @description Inventory and dashboard backend: merges the remote product catalog with locally created custom products.
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"
	"time"

	"github.com/Slooze-Commerce/slooze-inventory-backend/config"
	"github.com/Slooze-Commerce/slooze-inventory-backend/controllers/cache_controller"
	"github.com/Slooze-Commerce/slooze-inventory-backend/controllers/category_controller"
	"github.com/Slooze-Commerce/slooze-inventory-backend/controllers/dashboard_controller"
	"github.com/Slooze-Commerce/slooze-inventory-backend/controllers/product_controller"
	"github.com/Slooze-Commerce/slooze-inventory-backend/middleware"
	"github.com/Slooze-Commerce/slooze-inventory-backend/routes"
	"github.com/Slooze-Commerce/slooze-inventory-backend/services"
	"github.com/Slooze-Commerce/slooze-inventory-backend/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Storage: Redis when reachable, JSON file otherwise. Both present the
	// same three logical keys (catalog snapshot, snapshot timestamp,
	// custom products).
	var store storage.Store
	if err := config.ConnectRedis(); err != nil {
		storageFile := config.GetEnv("STORAGE_FILE", "slooze_storage.json")
		log.Printf("⚠️  Redis unavailable (%v), falling back to file store %q", err, storageFile)
		store = storage.NewFileStore(storageFile)
	} else {
		store = storage.NewRedisStore(config.RedisClient)
	}

	// Services
	catalogService := services.NewCatalogService(config.LoadCatalogConfig(), store)
	customService := services.NewCustomProductService(store)
	productService := services.NewProductService(catalogService, customService)

	product_controller.Init(productService)
	category_controller.Init(catalogService)
	dashboard_controller.Init(productService)
	cache_controller.Init(catalogService)
	log.Println("✅ Services initialized")

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"X-Request-ID"},
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))
	router.Use(middleware.RequestLogger())

	// Register API routes
	api := router.Group("/api/v1")

	// Mutating routes get rate limiting when Redis is around; without it
	// they run unthrottled rather than not at all.
	var mutating []gin.HandlerFunc
	if config.RedisClient != nil {
		mutating = append(mutating, middleware.RateLimiter(config.RedisClient, 100, time.Minute))
		log.Println("✅ Rate limiter enabled on mutating routes")
	}

	routes.SetupProductRoutes(api, mutating...)
	routes.SetupCategoryRoutes(api)
	routes.SetupDashboardRoutes(api)
	routes.SetupCacheRoutes(api, mutating...)

	port := config.GetEnv("PORT", "8081")
	log.Println("🚀 Server is running on http://localhost:" + port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
