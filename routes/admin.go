package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/riturajpurohit95/shopSphere-sub001/controllers/cart"
	dashboardControllers "github.com/riturajpurohit95/shopSphere-sub001/controllers/dashboard"
	orderControllers "github.com/riturajpurohit95/shopSphere-sub001/controllers/order"
	productcontroller "github.com/riturajpurohit95/shopSphere-sub001/controllers/product"
	userControllers "github.com/riturajpurohit95/shopSphere-sub001/controllers/user"
	"github.com/riturajpurohit95/shopSphere-sub001/middleware"
	"github.com/riturajpurohit95/shopSphere-sub001/models"
)

// SetupAdminRoutes registers all "/api/admin/*" endpoints. Requires JWT
// middleware plus the ADMIN role.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireRole(string(models.RoleAdmin)))
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		// ─────────── Product & Category Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.GET("/ws", orderControllers.OrderWebSocketHandler)
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
			orderAdmin.PUT("/:orderID/payment-status", orderControllers.UpdatePaymentStatusHandler(db))
			orderAdmin.DELETE("/:orderID", orderControllers.DeleteOrderHandler(db))
		}

		// ─────────── Dashboard ───────────
		adminGroup.GET("/dashboard/summary", dashboardControllers.GetDashboardSummary(db))

		// ─────────── Cart Inspection ───────────
		adminGroup.GET("/user-cart/:user_id", cartControllers.GetAdminUserCart(db))
	}
}
