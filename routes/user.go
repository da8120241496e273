package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/riturajpurohit95/shopSphere-sub001/controllers/cart"
	orderControllers "github.com/riturajpurohit95/shopSphere-sub001/controllers/order"
	productcontroller "github.com/riturajpurohit95/shopSphere-sub001/controllers/product"
	userControllers "github.com/riturajpurohit95/shopSphere-sub001/controllers/user"
	"github.com/riturajpurohit95/shopSphere-sub001/middleware"
)

// SetupUserRoutes registers the JWT-protected "/api/*" endpoints any
// authenticated user can reach.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	api.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		api.GET("/users/me", userControllers.GetUser(db))    // GET /api/users/me
		api.PUT("/users/me", userControllers.UpdateUser(db)) // PUT /api/users/me

		// ──────────────── Shopping Cart ────────────────
		cartGroup := api.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetUserCart(db))                   // GET /api/cart
			cartGroup.POST("", cartControllers.UpdateCartItem(db))               // POST /api/cart
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(db)) // DELETE /api/cart/:product_id
			cartGroup.DELETE("", cartControllers.ClearUserCart(db))              // DELETE /api/cart
		}

		// ──────────────── Browse Products ────────────────
		api.GET("/products", productcontroller.GetProducts(db))
		api.GET("/products/:id", productcontroller.GetProductByID(db))
		api.GET("/categories", productcontroller.GetAllCategories(db))

		// ──────────────── Orders ────────────────
		api.POST("/orders", orderControllers.PlaceOrderHandler(db))
		api.GET("/orders", orderControllers.GetUserOrdersHandler(db))
		api.GET("/orders/:orderID", orderControllers.GetOrderByIDHandler(db))
	}
}
