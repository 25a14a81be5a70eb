// models/filters.go
package models

import "math"

// StockStatus buckets products by quantity on hand:
// in-stock ≥ 10, low-stock 1–9, out-of-stock 0.
type StockStatus string

const (
	StockStatusAll StockStatus = "all"
	StockStatusIn  StockStatus = "in-stock"
	StockStatusLow StockStatus = "low-stock"
	StockStatusOut StockStatus = "out-of-stock"
)

// PriceRange is inclusive on both ends. Max of +Inf means unbounded.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterOptions holds the active browsing constraints. All four are
// combined with logical AND; each is inactive at its zero/default value.
// Filter state is ephemeral: it lives in the request, never in storage.
type FilterOptions struct {
	SearchQuery        string      `json:"searchQuery"`
	SelectedCategories []string    `json:"selectedCategories"`
	StockStatus        StockStatus `json:"stockStatus"`
	PriceRange         PriceRange  `json:"priceRange"`
}

// DefaultFilters returns the no-restriction filter state.
func DefaultFilters() FilterOptions {
	return FilterOptions{
		SearchQuery:        "",
		SelectedCategories: nil,
		StockStatus:        StockStatusAll,
		PriceRange:         PriceRange{Min: 0, Max: math.Inf(1)},
	}
}
