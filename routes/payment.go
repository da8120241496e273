package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	paymentControllers "github.com/riturajpurohit95/shopSphere-sub001/controllers/payment"
	"github.com/riturajpurohit95/shopSphere-sub001/middleware"
)

func SetupPaymentRoutes(r *gin.Engine, db *gorm.DB) {
	payment := r.Group("/api/payments")
	{
		// Gateway order creation (user must be logged in)
		payment.POST("/order",
			middleware.ValidateToken,
			paymentControllers.PaymentRequestHandler(db),
		)

		// Webhook endpoint: middleware handles signature verification, the
		// gateway cannot send a bearer token.
		payment.POST("/webhook",
			middleware.RazorpayWebhookAuth(),
			paymentControllers.WebhookHandler(db),
		)
	}
}
