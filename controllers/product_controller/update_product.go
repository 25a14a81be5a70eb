package product_controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Slooze-Commerce/slooze-inventory-backend/config"
	"github.com/Slooze-Commerce/slooze-inventory-backend/models"
	"github.com/Slooze-Commerce/slooze-inventory-backend/services"
	"github.com/gin-gonic/gin"
)

// UpdateProduct godoc
// @Summary Update a custom product
// @Description Partially update a custom product by id. Catalog products are read-only and rejected with 403.
// @Tags Products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body models.UpdateProductRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 403 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/products/{id} [patch]
func UpdateProduct(c *gin.Context) {
	// Step 1: Parse and validate product ID
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	// Step 2: Parse partial update payload
	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	// Step 3: Apply through the custom product store
	product, err := customService.Update(id, req)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			rejectIfCatalogProduct(c, id, "Catalog products cannot be edited")
			return
		}
		log.Printf("[products] update failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", product))
}

// rejectIfCatalogProduct distinguishes "no such product" from "that product
// belongs to the remote catalog": the id wasn't in the custom collection, so
// if the merged collection still knows it, the caller tried to mutate a
// read-only catalog entry.
func rejectIfCatalogProduct(c *gin.Context, id int, message string) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	if product, err := productService.FindByID(ctx, id); err == nil && !product.IsCustom {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, message))
		return
	}
	c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
}
