package product_controller

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/Slooze-Commerce/slooze-inventory-backend/config"
	"github.com/Slooze-Commerce/slooze-inventory-backend/models"
	"github.com/Slooze-Commerce/slooze-inventory-backend/utils"
	"github.com/gin-gonic/gin"
)

// GetProducts godoc
// @Summary Get merged products
// @Description Retrieve the merged catalog + custom product collection with filtering, sorting and pagination
// @Tags Products
// @Produce json
// @Param search query string false "Case-insensitive substring over title, description, category"
// @Param categories query string false "Comma-separated category slugs"
// @Param stockStatus query string false "Stock bucket" Enums(all, in-stock, low-stock, out-of-stock)
// @Param minPrice query number false "Inclusive lower price bound"
// @Param maxPrice query number false "Inclusive upper price bound"
// @Param sortBy query string false "Sort field" Enums(title, price, stock, category, createdAt)
// @Param sortOrder query string false "Sort direction" Enums(asc, desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /api/v1/products [get]
func GetProducts(c *gin.Context) {
	// Step 1: Parse and validate pagination params
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	// Step 2: Load the merged collection
	ctx, cancel := config.WithTimeout()
	defer cancel()

	products, err := productService.AllProducts(ctx)
	if err != nil {
		// only reachable when the fetch failed AND no cache of any age exists
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to load products"))
		return
	}

	// Step 3: Apply filters and sorting
	filters := parseFilters(c)
	filtered := utils.ApplyFilters(products, filters)
	sorted := utils.ApplySort(filtered, parseSortField(c), parseSortOrder(c))

	// Step 4: Paginate
	total := len(sorted)
	offset := (page - 1) * limit
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	// Step 5: Prepare pagination meta
	meta := &models.Pagination{
		Page:          page,
		Limit:         limit,
		Total:         total,
		TotalPages:    int(math.Ceil(float64(total) / float64(limit))),
		ActiveFilters: utils.ActiveFilterCount(filters),
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", sorted[offset:end], meta))
}

func parseFilters(c *gin.Context) models.FilterOptions {
	filters := models.DefaultFilters()

	filters.SearchQuery = c.Query("search")

	if raw := c.Query("categories"); raw != "" {
		for _, cat := range strings.Split(raw, ",") {
			if cat = strings.TrimSpace(cat); cat != "" {
				filters.SelectedCategories = append(filters.SelectedCategories, cat)
			}
		}
	}

	switch status := models.StockStatus(c.Query("stockStatus")); status {
	case models.StockStatusIn, models.StockStatusLow, models.StockStatusOut:
		filters.StockStatus = status
	}

	if min, err := strconv.ParseFloat(c.Query("minPrice"), 64); err == nil && min > 0 {
		filters.PriceRange.Min = min
	}
	if max, err := strconv.ParseFloat(c.Query("maxPrice"), 64); err == nil && max > 0 {
		filters.PriceRange.Max = max
	}

	return filters
}

func parseSortField(c *gin.Context) models.SortField {
	switch field := models.SortField(c.Query("sortBy")); field {
	case models.SortByPrice, models.SortByStock, models.SortByCategory, models.SortByCreatedAt:
		return field
	default:
		return models.SortByTitle
	}
}

func parseSortOrder(c *gin.Context) models.SortOrder {
	if models.SortOrder(c.Query("sortOrder")) == models.SortDesc {
		return models.SortDesc
	}
	return models.SortAsc
}
