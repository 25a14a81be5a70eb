package dashboard_controller

import (
	"net/http"
	"sort"

	"github.com/Slooze-Commerce/slooze-inventory-backend/models"
	"github.com/Slooze-Commerce/slooze-inventory-backend/utils"
	"github.com/gin-gonic/gin"
)

// GetLowStockAlerts godoc
// @Summary Get low stock alerts
// @Description Products below the in-stock threshold (including out-of-stock), lowest stock first
// @Tags Dashboard
// @Produce json
// @Param limit query int false "Number of products" default(6)
// @Success 200 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /api/v1/dashboard/low-stock [get]
func GetLowStockAlerts(c *gin.Context) {
	products, ok := loadProducts(c)
	if !ok {
		return
	}
	limit := parseLimit(c, 6)

	alerts := utils.StockAlerts(products)
	sort.SliceStable(alerts, func(i, j int) bool { return alerts[i].Stock < alerts[j].Stock })
	if len(alerts) > limit {
		alerts = alerts[:limit]
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Low stock alerts fetched successfully", alerts))
}
