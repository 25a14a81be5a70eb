package product_controller

import (
	"net/http"

	"github.com/Slooze-Commerce/slooze-inventory-backend/config"
	"github.com/Slooze-Commerce/slooze-inventory-backend/models"
	"github.com/gin-gonic/gin"
)

// SearchProducts godoc
// @Summary Search catalog products
// @Description Server-side search against the remote catalog API. A failing upstream yields an empty result, not an error.
// @Tags Products
// @Produce json
// @Param query query string true "Search keyword"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/products/search [get]
func SearchProducts(c *gin.Context) {
	queryParam := c.Query("query")
	if queryParam == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Query parameter 'query' is required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	results := catalogService.SearchProducts(ctx, queryParam)
	if len(results) == 0 {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "No results found", []models.Product{}))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Search results", results))
}
