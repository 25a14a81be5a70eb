package product_controller

import "github.com/Slooze-Commerce/slooze-inventory-backend/services"

var (
	productService *services.ProductService
	customService  *services.CustomProductService
	catalogService *services.CatalogService
)

// Init wires the shared services. Must run before routes are registered.
func Init(ps *services.ProductService) {
	productService = ps
	customService = ps.Custom()
	catalogService = ps.Catalog()
}
