package product_controller

import (
	"log"
	"net/http"

	"github.com/Slooze-Commerce/slooze-inventory-backend/models"
	"github.com/gin-gonic/gin"
)

// CreateProduct godoc
// @Summary Create a custom product
// @Description Create a locally stored custom product; the id is assigned from the custom range (101+)
// @Tags Products
// @Accept json
// @Produce json
// @Param product body models.ProductRequest true "Product details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/products [post]
func CreateProduct(c *gin.Context) {
	// Step 1: Parse JSON request
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	// Step 2: Persist through the custom product store
	product, err := customService.Create(req)
	if err != nil {
		log.Printf("[products] create failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}
