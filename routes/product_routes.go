package routes

import (
	"github.com/Slooze-Commerce/slooze-inventory-backend/controllers/product_controller"
	"github.com/gin-gonic/gin"
)

func SetupProductRoutes(rg *gin.RouterGroup, mutating ...gin.HandlerFunc) {
	product := rg.Group("/products")

	// Read side: merged catalog + custom collection
	product.GET("", product_controller.GetProducts)
	product.GET("/stats", product_controller.GetProductStats)
	product.GET("/search", product_controller.SearchProducts)
	product.GET("/:id", product_controller.GetProductByID)

	// Write side: custom products only (catalog entries are read-only)
	protected := product.Group("")
	protected.Use(mutating...)
	{
		protected.POST("", product_controller.CreateProduct)
		protected.PATCH("/:id", product_controller.UpdateProduct)
		protected.DELETE("/:id", product_controller.DeleteProduct)
	}
}
