package dashboard_controller

import (
	"math"
	"net/http"

	"github.com/Slooze-Commerce/slooze-inventory-backend/models"
	"github.com/gin-gonic/gin"
)

// PriceBucket is one band of the price distribution chart. Min is
// inclusive, Max exclusive.
type PriceBucket struct {
	Range string  `json:"range"`
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

// PriceSummary carries the headline numbers next to the chart. AvgPrice
// here is the plain per-product average, unlike the stats endpoint's
// inventory-weighted ratio.
type PriceSummary struct {
	AvgPrice float64 `json:"avgPrice"`
	MinPrice float64 `json:"minPrice"`
	MaxPrice float64 `json:"maxPrice"`
}

type PriceDistribution struct {
	Buckets []PriceBucket `json:"buckets"`
	Summary PriceSummary  `json:"summary"`
}

var priceBands = []struct {
	label string
	min   float64
	max   float64
}{
	{"$0-50", 0, 50},
	{"$50-100", 50, 100},
	{"$100-250", 100, 250},
	{"$250-500", 250, 500},
	{"$500-1000", 500, 1000},
	{"$1000+", 1000, math.Inf(1)},
}

// GetPriceDistribution godoc
// @Summary Get price distribution
// @Description Product counts and inventory value per fixed price band, with min/avg/max summary
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /api/v1/dashboard/price-distribution [get]
func GetPriceDistribution(c *gin.Context) {
	products, ok := loadProducts(c)
	if !ok {
		return
	}

	buckets := make([]PriceBucket, len(priceBands))
	for i, band := range priceBands {
		buckets[i].Range = band.label
	}

	var summary PriceSummary
	for i, p := range products {
		for j, band := range priceBands {
			if p.Price >= band.min && p.Price < band.max {
				buckets[j].Count++
				buckets[j].Value += p.Price * float64(p.Stock)
				break
			}
		}

		summary.AvgPrice += p.Price
		if i == 0 || p.Price < summary.MinPrice {
			summary.MinPrice = p.Price
		}
		if p.Price > summary.MaxPrice {
			summary.MaxPrice = p.Price
		}
	}
	if len(products) > 0 {
		summary.AvgPrice /= float64(len(products))
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Price distribution fetched successfully", PriceDistribution{
		Buckets: buckets,
		Summary: summary,
	}))
}
