package utils

import (
	"math"
	"strings"

	"github.com/Slooze-Commerce/slooze-inventory-backend/models"
)

// ApplyFilters returns the subset of products matching every active
// constraint. Constraints are evaluated independently and ANDed; each one is
// skipped entirely at its default value. Pure function of its inputs.
func ApplyFilters(products []models.Product, filters models.FilterOptions) []models.Product {
	result := make([]models.Product, 0, len(products))

	var selected map[string]struct{}
	if len(filters.SelectedCategories) > 0 {
		selected = make(map[string]struct{}, len(filters.SelectedCategories))
		for _, cat := range filters.SelectedCategories {
			selected[cat] = struct{}{}
		}
	}

	query := strings.ToLower(filters.SearchQuery)

	for _, p := range products {
		if query != "" && !matchesSearch(p, query) {
			continue
		}
		if selected != nil {
			if _, ok := selected[p.Category]; !ok {
				continue
			}
		}
		if !matchesStockStatus(p, filters.StockStatus) {
			continue
		}
		if priceFilterActive(filters.PriceRange) {
			if p.Price < filters.PriceRange.Min || p.Price > filters.PriceRange.Max {
				continue
			}
		}
		result = append(result, p)
	}
	return result
}

// ActiveFilterCount reports how many of the four constraint categories are
// currently restricting results (for UI badges), not how many products they
// exclude.
func ActiveFilterCount(filters models.FilterOptions) int {
	count := 0
	if filters.SearchQuery != "" {
		count++
	}
	if len(filters.SelectedCategories) > 0 {
		count++
	}
	if filters.StockStatus != "" && filters.StockStatus != models.StockStatusAll {
		count++
	}
	if priceFilterActive(filters.PriceRange) {
		count++
	}
	return count
}

func matchesSearch(p models.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(strings.ToLower(p.Category), query)
}

func matchesStockStatus(p models.Product, status models.StockStatus) bool {
	switch status {
	case models.StockStatusIn:
		return p.Stock >= 10
	case models.StockStatusLow:
		return p.Stock > 0 && p.Stock < 10
	case models.StockStatusOut:
		return p.Stock == 0
	default:
		return true
	}
}

// priceFilterActive: any finite max is an active bound, zero included; only
// a +Inf max with a zero min means "no price constraint".
func priceFilterActive(r models.PriceRange) bool {
	return r.Min > 0 || !math.IsInf(r.Max, 1)
}
