package product_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Slooze-Commerce/slooze-inventory-backend/models"
	"github.com/gin-gonic/gin"
)

// DeleteProduct godoc
// @Summary Delete a custom product
// @Description Delete a custom product by id. Catalog products are read-only and rejected with 403.
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 403 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	// Step 1: Parse and validate product ID
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	// Step 2: Remove from the custom product store
	removed, err := customService.Delete(id)
	if err != nil {
		log.Printf("[products] delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product"))
		return
	}
	if !removed {
		rejectIfCatalogProduct(c, id, "Catalog products cannot be deleted")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", map[string]int{
		"id": id,
	}))
}
