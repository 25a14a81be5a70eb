package dashboard_controller

import (
	"net/http"

	"github.com/Slooze-Commerce/slooze-inventory-backend/models"
	"github.com/Slooze-Commerce/slooze-inventory-backend/utils"
	"github.com/gin-gonic/gin"
)

// StockSegment is one slice of the stock level distribution chart.
type StockSegment struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// GetStockOverview godoc
// @Summary Get stock level distribution
// @Description In-stock / low-stock / out-of-stock segments over the merged collection; empty segments are omitted
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /api/v1/dashboard/stock-overview [get]
func GetStockOverview(c *gin.Context) {
	products, ok := loadProducts(c)
	if !ok {
		return
	}

	stats := utils.ComputeMetrics(products)
	// InStockCount includes low stock; the chart splits them apart.
	inStock := stats.InStockCount - stats.LowStockCount

	total := stats.TotalProducts
	pct := func(count int) float64 {
		if total == 0 {
			return 0
		}
		return float64(count) / float64(total) * 100
	}

	segments := make([]StockSegment, 0, 3)
	for _, seg := range []StockSegment{
		{Name: "In Stock", Count: inStock, Percentage: pct(inStock)},
		{Name: "Low Stock", Count: stats.LowStockCount, Percentage: pct(stats.LowStockCount)},
		{Name: "Out of Stock", Count: stats.OutOfStockCount, Percentage: pct(stats.OutOfStockCount)},
	} {
		if seg.Count > 0 {
			segments = append(segments, seg)
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Stock overview fetched successfully", segments))
}
