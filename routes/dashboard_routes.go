package routes

import (
	"github.com/Slooze-Commerce/slooze-inventory-backend/controllers/dashboard_controller"
	"github.com/gin-gonic/gin"
)

func SetupDashboardRoutes(rg *gin.RouterGroup) {
	dashboard := rg.Group("/dashboard")

	dashboard.GET("/stock-overview", dashboard_controller.GetStockOverview)
	dashboard.GET("/categories", dashboard_controller.GetCategoryDistribution)
	dashboard.GET("/price-distribution", dashboard_controller.GetPriceDistribution)
	dashboard.GET("/top-products", dashboard_controller.GetTopProducts)
	dashboard.GET("/recent-products", dashboard_controller.GetRecentProducts)
	dashboard.GET("/low-stock", dashboard_controller.GetLowStockAlerts)
}
