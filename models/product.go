package models

// ═══════════════════════════════════════════════════════════
// Product Model
// ═══════════════════════════════════════════════════════════

// Product is one catalog entry, either fetched from the remote catalog API
// or created locally. Identifiers are unique across the union of both
// origins: remote ids live in the catalog's small demo range, custom ids
// start at 101 and only grow (see services.CustomProductService).
//
// Timestamps are optional ISO-8601 strings; remote products usually carry
// none. IsCustom is true only for locally created entries; remote products
// are immutable from this application's perspective.
type Product struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	Category    string   `json:"category"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
	Images      []string `json:"images,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
	IsCustom    bool     `json:"isCustom,omitempty"`
}

// Category as returned by the remote catalog API. Only Slug is used.
type Category struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// CatalogPage is the paginated envelope the remote catalog API wraps
// product lists in.
type CatalogPage struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type ProductRequest struct {
	Title       string  `json:"title" binding:"required" example:"Wireless Mouse"`
	Description string  `json:"description" example:"Ergonomic 2.4GHz mouse"`
	Price       float64 `json:"price" binding:"required,gt=0" example:"29.99"`
	Stock       *int    `json:"stock" binding:"required,gte=0" example:"25"`
	Category    string  `json:"category" binding:"required" example:"electronics"`
	Thumbnail   string  `json:"thumbnail" example:"https://cdn.example.com/mouse.png"`
}

type UpdateProductRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Stock       *int     `json:"stock" binding:"omitempty,gte=0"`
	Category    *string  `json:"category"`
	Thumbnail   *string  `json:"thumbnail"`
}

// ═══════════════════════════════════════════════════════════
// Stats Model
// ═══════════════════════════════════════════════════════════

// ProductStats mirrors the dashboard's aggregate card values.
//
// TotalStock sums raw prices (despite the name) and AvgPrice is TotalValue
// divided by that sum. The dashboard cards consume these numbers as-is; see
// utils.ComputeMetrics before changing either.
type ProductStats struct {
	TotalProducts   int     `json:"totalProducts"`
	CustomProducts  int     `json:"customProducts"`
	APIProducts     int     `json:"apiProducts"`
	TotalValue      float64 `json:"totalValue"`
	TotalStock      float64 `json:"totalStock"`
	AvgPrice        float64 `json:"avgPrice"`
	LowStockCount   int     `json:"lowStockCount"`
	OutOfStockCount int     `json:"outOfStockCount"`
	InStockCount    int     `json:"inStockCount"`
	Categories      int     `json:"categories"`
}

// ═══════════════════════════════════════════════════════════
// Sorting
// ═══════════════════════════════════════════════════════════

type SortField string

const (
	SortByTitle     SortField = "title"
	SortByPrice     SortField = "price"
	SortByStock     SortField = "stock"
	SortByCategory  SortField = "category"
	SortByCreatedAt SortField = "createdAt"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)
