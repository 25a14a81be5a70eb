package utils

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Slooze-Commerce/slooze-inventory-backend/models"
)

// ApplySort returns a new ordering of products by the given field; the
// input slice is never mutated. Title and category compare locale-aware and
// case-insensitive ("apple" sorts before "Banana").
//
// The createdAt comparator's base ordering is newest-first, with missing
// timestamps pinned to epoch zero; the direction flip is applied uniformly
// on top of each field's base, so "desc" on dates reads oldest-first. The
// dashboard has always behaved this way, keep it.
func ApplySort(products []models.Product, field models.SortField, order models.SortOrder) []models.Product {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)

	// Collators carry an internal buffer, so each call gets its own.
	col := collate.New(language.English, collate.IgnoreCase)

	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := compareProducts(col, sorted[i], sorted[j], field)
		if order == models.SortDesc {
			cmp = -cmp
		}
		return cmp < 0
	})
	return sorted
}

func compareProducts(col *collate.Collator, a, b models.Product, field models.SortField) int {
	switch field {
	case models.SortByPrice:
		return compareFloats(a.Price, b.Price)
	case models.SortByStock:
		return a.Stock - b.Stock
	case models.SortByCategory:
		return col.CompareString(a.Category, b.Category)
	case models.SortByCreatedAt:
		// newest-first base ordering
		return compareInt64(parseTimestamp(b.CreatedAt), parseTimestamp(a.CreatedAt))
	default:
		return col.CompareString(a.Title, b.Title)
	}
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// parseTimestamp converts an optional ISO-8601 string to epoch millis;
// missing or malformed values collapse to 0 (epoch zero, the oldest).
func parseTimestamp(value string) int64 {
	if value == "" {
		return 0
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return 0
	}
	return t.UnixMilli()
}
