package routes

import (
	"github.com/Slooze-Commerce/slooze-inventory-backend/controllers/cache_controller"
	"github.com/gin-gonic/gin"
)

func SetupCacheRoutes(rg *gin.RouterGroup, mutating ...gin.HandlerFunc) {
	cache := rg.Group("/cache")
	cache.Use(mutating...)

	cache.POST("/clear", cache_controller.ClearCache)
}
