package dashboardControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/riturajpurohit95/shopSphere-sub001/models"
	"github.com/riturajpurohit95/shopSphere-sub001/repository"
)

type DashboardSummary struct {
	TotalUsers    int64            `json:"total_users"`
	TotalProducts int64            `json:"total_products"`
	TotalOrders   int64            `json:"total_orders"`
	TotalRevenue  float64          `json:"total_revenue"`
	PendingOrders int64            `json:"pending_orders"`
	RecentOrders  []models.Order   `json:"recent_orders"`
	TopProducts   []models.Product `json:"top_products"`
}

// GET /api/admin/dashboard/summary
func GetDashboardSummary(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var summary DashboardSummary

		if err := db.Model(&models.User{}).Count(&summary.TotalUsers).Error; err != nil {
			log.Println("❌ Failed to count users:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard summary"})
			return
		}
		if err := db.Model(&models.Product{}).Count(&summary.TotalProducts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard summary"})
			return
		}
		if err := db.Model(&models.Order{}).Count(&summary.TotalOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard summary"})
			return
		}
		if err := db.Model(&models.Order{}).
			Where(`"orderStatus" = ?`, models.OrderStatusPending).
			Count(&summary.PendingOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard summary"})
			return
		}

		row := db.Raw(`SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE payment_status = ?`,
			models.PaymentStatusPaid).Row()
		if err := row.Scan(&summary.TotalRevenue); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard summary"})
			return
		}

		rows, err := db.Raw(`SELECT order_id, user_id, total_amount, shipping_address, "orderStatus",
			payment_method, razorpay_order_id, placed_at, payment_status
			FROM orders ORDER BY placed_at DESC LIMIT 10`).Rows()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recent orders"})
			return
		}
		defer rows.Close()

		summary.RecentOrders, err = repository.ScanOrders(rows)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to map recent orders"})
			return
		}

		productRows, err := db.Raw(`SELECT product_id, user_id, category_id, product_name, product_price,
			product_mrp, product_quantity, product_avg_rating, product_reviews_count, brand, description, image_url
			FROM products WHERE deleted_at IS NULL ORDER BY product_reviews_count DESC LIMIT 5`).Rows()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch top products"})
			return
		}
		defer productRows.Close()

		summary.TopProducts, err = repository.ScanProducts(productRows)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to map top products"})
			return
		}

		c.JSON(http.StatusOK, summary)
	}
}
