package cache_controller

import (
	"net/http"

	"github.com/Slooze-Commerce/slooze-inventory-backend/models"
	"github.com/Slooze-Commerce/slooze-inventory-backend/services"
	"github.com/gin-gonic/gin"
)

var catalogService *services.CatalogService

func Init(cs *services.CatalogService) {
	catalogService = cs
}

// ClearCache godoc
// @Summary Clear the catalog snapshot cache
// @Description Drops the persisted remote-product snapshot; the next listing triggers a fresh catalog fetch
// @Tags Cache
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/cache/clear [post]
func ClearCache(c *gin.Context) {
	catalogService.ClearCache()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Catalog cache cleared", nil))
}
