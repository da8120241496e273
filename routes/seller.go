package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/riturajpurohit95/shopSphere-sub001/controllers/product"
	"github.com/riturajpurohit95/shopSphere-sub001/middleware"
	"github.com/riturajpurohit95/shopSphere-sub001/models"
)

// SetupSellerRoutes registers all "/api/seller/*" endpoints. Requires JWT
// middleware plus the SELLER (or ADMIN) role.
func SetupSellerRoutes(r *gin.Engine, db *gorm.DB) {
	sellerGroup := r.Group("/api/seller")
	sellerGroup.Use(middleware.ValidateToken, middleware.RequireRole(string(models.RoleSeller), string(models.RoleAdmin)))
	{
		productSeller := sellerGroup.Group("/products")
		{
			productSeller.GET("", productcontroller.GetSellerProducts(db))
			productSeller.POST("", productcontroller.CreateProduct(db))
			productSeller.PUT("/:id", productcontroller.UpdateProduct(db))
			productSeller.DELETE("/:id", productcontroller.DeleteProduct(db))
		}
	}
}
