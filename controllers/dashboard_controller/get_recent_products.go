package dashboard_controller

import (
	"net/http"

	"github.com/Slooze-Commerce/slooze-inventory-backend/models"
	"github.com/Slooze-Commerce/slooze-inventory-backend/utils"
	"github.com/gin-gonic/gin"
)

// GetRecentProducts godoc
// @Summary Get recently created products
// @Description Newest products by createdAt. Catalog products usually carry no timestamp; when nothing does, the head of the collection is shown instead
// @Tags Dashboard
// @Produce json
// @Param limit query int false "Number of products" default(5)
// @Success 200 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /api/v1/dashboard/recent-products [get]
func GetRecentProducts(c *gin.Context) {
	products, ok := loadProducts(c)
	if !ok {
		return
	}
	limit := parseLimit(c, 5)

	withDates := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.CreatedAt != "" {
			withDates = append(withDates, p)
		}
	}

	recent := utils.SortByDate(withDates)
	if len(recent) == 0 {
		recent = products
	}
	if len(recent) > limit {
		recent = recent[:limit]
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Recent products fetched successfully", recent))
}
