package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/riturajpurohit95/shopSphere-sub001/middleware"
	"github.com/riturajpurohit95/shopSphere-sub001/models"
)

type CreateProductInput struct {
	Name        string  `json:"product_name" binding:"required"`
	Price       float64 `json:"product_price" binding:"required,gte=0"`
	MRP         float64 `json:"product_mrp" binding:"gte=0"`
	Quantity    int     `json:"product_quantity" binding:"gte=0"`
	CategoryID  uint    `json:"category_id"`
	Brand       string  `json:"brand"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
}

func currentSellerID(c *gin.Context) (uint, bool) {
	return middleware.CurrentUserID(c)
}

// CreateProduct registers a new product owned by the authenticated seller.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID, ok := currentSellerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.CategoryID != 0 {
			var category models.Category
			if err := db.First(&category, input.CategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
		}

		product := models.Product{
			UserID:      sellerID,
			CategoryID:  input.CategoryID,
			Name:        input.Name,
			Price:       input.Price,
			MRP:         input.MRP,
			Quantity:    input.Quantity,
			Brand:       input.Brand,
			Description: input.Description,
			ImageURL:    input.ImageURL,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
