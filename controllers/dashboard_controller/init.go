package dashboard_controller

import (
	"net/http"
	"strconv"

	"github.com/Slooze-Commerce/slooze-inventory-backend/config"
	"github.com/Slooze-Commerce/slooze-inventory-backend/models"
	"github.com/Slooze-Commerce/slooze-inventory-backend/services"
	"github.com/gin-gonic/gin"
)

var productService *services.ProductService

func Init(ps *services.ProductService) {
	productService = ps
}

// loadProducts fetches the merged collection and writes the error response
// itself on failure; every dashboard handler starts here.
func loadProducts(c *gin.Context) ([]models.Product, bool) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	products, err := productService.AllProducts(ctx)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to load products"))
		return nil, false
	}
	return products, true
}

// parseLimit clamps the dashboard list size query param to 1..50.
func parseLimit(c *gin.Context, fallback int) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		return fallback
	}
	if limit > 50 {
		return 50
	}
	return limit
}
