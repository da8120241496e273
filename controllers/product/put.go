package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/riturajpurohit95/shopSphere-sub001/models"
)

type UpdateProductInput struct {
	Name        *string  `json:"product_name"`
	Price       *float64 `json:"product_price"`
	MRP         *float64 `json:"product_mrp"`
	Quantity    *int     `json:"product_quantity"`
	CategoryID  *uint    `json:"category_id"`
	Brand       *string  `json:"brand"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url"`
}

// UpdateProduct updates a product owned by the authenticated seller.
// Only fields present in the body are touched.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID, ok := currentSellerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if product.UserID != sellerID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your product"})
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.MRP != nil {
			product.MRP = *input.MRP
		}
		if input.Quantity != nil {
			product.Quantity = *input.Quantity
		}
		if input.CategoryID != nil {
			product.CategoryID = *input.CategoryID
		}
		if input.Brand != nil {
			product.Brand = *input.Brand
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.ImageURL != nil {
			product.ImageURL = *input.ImageURL
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
