package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up Auth, User, Seller,
// Admin and Payment route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// 1️⃣ Public Auth routes (token check bypasses the /api/auth prefix)
	SetupAuthRoutes(r, db)

	// 2️⃣ User routes (JWT-protected)
	SetupUserRoutes(r, db)

	// 3️⃣ Seller routes (JWT + role)
	SetupSellerRoutes(r, db)

	// 4️⃣ Admin routes (JWT + role)
	SetupAdminRoutes(r, db)

	// razorpay payment routes
	SetupPaymentRoutes(r, db)
}
