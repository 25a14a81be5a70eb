package dashboard_controller

import (
	"net/http"
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/Slooze-Commerce/slooze-inventory-backend/models"
	"github.com/gin-gonic/gin"
)

// CategorySlice is one bar of the products-by-category chart.
type CategorySlice struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

// GetCategoryDistribution godoc
// @Summary Get category distribution
// @Description Top 5 categories by product count with their aggregate inventory value
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /api/v1/dashboard/categories [get]
func GetCategoryDistribution(c *gin.Context) {
	products, ok := loadProducts(c)
	if !ok {
		return
	}

	byCategory := map[string]*CategorySlice{}
	for _, p := range products {
		name := p.Category
		if name == "" {
			name = "Uncategorized"
		}
		slice, exists := byCategory[name]
		if !exists {
			slice = &CategorySlice{Name: capitalize(name)}
			byCategory[name] = slice
		}
		slice.Count++
		slice.Value += p.Price * float64(p.Stock)
	}

	slices := make([]CategorySlice, 0, len(byCategory))
	for _, slice := range byCategory {
		slices = append(slices, *slice)
	}
	sort.SliceStable(slices, func(i, j int) bool { return slices[i].Count > slices[j].Count })

	// Top 5 categories
	if len(slices) > 5 {
		slices = slices[:5]
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category distribution fetched successfully", slices))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
