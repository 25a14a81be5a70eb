package category_controller

import (
	"net/http"

	"github.com/Slooze-Commerce/slooze-inventory-backend/config"
	"github.com/Slooze-Commerce/slooze-inventory-backend/models"
	"github.com/Slooze-Commerce/slooze-inventory-backend/services"
	"github.com/gin-gonic/gin"
)

var catalogService *services.CatalogService

func Init(cs *services.CatalogService) {
	catalogService = cs
}

// fallbackCategories stands in whenever the remote catalog can't provide
// the category list.
var fallbackCategories = []string{
	"general",
	"electronics",
	"clothing",
	"food",
	"furniture",
	"beauty",
	"sports",
	"automotive",
}

// GetCategories godoc
// @Summary Get category slugs
// @Description Category slugs from the remote catalog, or a fixed fallback list when the catalog is unreachable
// @Tags Categories
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/categories [get]
func GetCategories(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	categories := catalogService.FetchCategories(ctx)
	if len(categories) == 0 {
		categories = fallbackCategories
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", categories))
}
