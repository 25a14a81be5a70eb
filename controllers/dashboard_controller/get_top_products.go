package dashboard_controller

import (
	"net/http"

	"github.com/Slooze-Commerce/slooze-inventory-backend/models"
	"github.com/Slooze-Commerce/slooze-inventory-backend/utils"
	"github.com/gin-gonic/gin"
)

// TopProduct pairs a product with its inventory value and its share of the
// top-N total, for the ranked dashboard list.
type TopProduct struct {
	models.Product
	InventoryValue float64 `json:"inventoryValue"`
	Percentage     float64 `json:"percentage"`
}

// GetTopProducts godoc
// @Summary Get top products by inventory value
// @Description Highest price×stock products; percentage is each item's share of the returned set's total
// @Tags Dashboard
// @Produce json
// @Param limit query int false "Number of products" default(5)
// @Success 200 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /api/v1/dashboard/top-products [get]
func GetTopProducts(c *gin.Context) {
	products, ok := loadProducts(c)
	if !ok {
		return
	}
	limit := parseLimit(c, 5)

	ranked := utils.SortByInventoryValue(products)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	var totalValue float64
	top := make([]TopProduct, len(ranked))
	for i, p := range ranked {
		top[i] = TopProduct{Product: p, InventoryValue: p.Price * float64(p.Stock)}
		totalValue += top[i].InventoryValue
	}
	if totalValue > 0 {
		for i := range top {
			top[i].Percentage = top[i].InventoryValue / totalValue * 100
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Top products fetched successfully", top))
}
