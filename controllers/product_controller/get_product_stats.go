package product_controller

import (
	"net/http"

	"github.com/Slooze-Commerce/slooze-inventory-backend/config"
	"github.com/Slooze-Commerce/slooze-inventory-backend/models"
	"github.com/Slooze-Commerce/slooze-inventory-backend/utils"
	"github.com/gin-gonic/gin"
)

// GetProductStats godoc
// @Summary Get product statistics
// @Description Returns the aggregate stats (counts, inventory value, stock buckets, categories) over the merged collection
// @Tags Products
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.ProductStats}
// @Failure 502 {object} models.ApiResponse
// @Router /api/v1/products/stats [get]
func GetProductStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	products, err := productService.AllProducts(ctx)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to load products"))
		return
	}

	stats := utils.ComputeMetrics(products)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product stats fetched successfully", stats))
}
