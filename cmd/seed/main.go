package main

import (
	"fmt"
	"log"

	"github.com/Slooze-Commerce/slooze-inventory-backend/config"
	"github.com/Slooze-Commerce/slooze-inventory-backend/models"
	"github.com/Slooze-Commerce/slooze-inventory-backend/services"
	"github.com/Slooze-Commerce/slooze-inventory-backend/storage"
	"github.com/joho/godotenv"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

func intPtr(v int) *int { return &v }

var demoProducts = []models.ProductRequest{
	{Title: "Warehouse Label Printer", Description: "Thermal label printer for shelf tags", Price: 189.99, Stock: intPtr(12), Category: "electronics"},
	{Title: "Packing Tape (36 pack)", Description: "Heavy duty 48mm packing tape", Price: 42.50, Stock: intPtr(80), Category: "general"},
	{Title: "Steel Shelving Unit", Description: "5-tier boltless shelving, 875kg capacity", Price: 129.00, Stock: intPtr(7), Category: "furniture"},
	{Title: "Barcode Scanner", Description: "Wireless 2D barcode scanner with cradle", Price: 75.25, Stock: intPtr(0), Category: "electronics"},
	{Title: "Safety Gloves", Description: "Cut-resistant work gloves, size L", Price: 9.99, Stock: intPtr(150), Category: "clothing"},
}

// main seeds demo custom products into the local store.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("SLOOZE INVENTORY - Custom Product Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	var store storage.Store
	if err := config.ConnectRedis(); err != nil {
		storageFile := config.GetEnv("STORAGE_FILE", "slooze_storage.json")
		log.Printf("⚠️  Redis unavailable (%v), seeding file store %q", err, storageFile)
		store = storage.NewFileStore(storageFile)
	} else {
		store = storage.NewRedisStore(config.RedisClient)
	}

	customService := services.NewCustomProductService(store)

	existing := customService.List()
	if len(existing) > 0 {
		log.Printf("⚠️  Store already holds %d custom products; new ids continue from the current maximum", len(existing))
	}

	created := 0
	for _, req := range demoProducts {
		product, err := customService.Create(req)
		if err != nil {
			log.Fatalf("Failed to seed %q: %v", req.Title, err)
		}
		log.Printf("✓ Created #%d %s ($%.2f, stock %d)", product.ID, product.Title, product.Price, product.Stock)
		created++
	}

	fmt.Println()
	fmt.Printf("✅ Seeded %d custom products (store now holds %d)\n", created, len(customService.List()))
}
