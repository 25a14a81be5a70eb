package routes

import (
	"github.com/Slooze-Commerce/slooze-inventory-backend/controllers/category_controller"
	"github.com/gin-gonic/gin"
)

func SetupCategoryRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories", category_controller.GetCategories)
}
