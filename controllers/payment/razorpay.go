package paymentControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/riturajpurohit95/shopSphere-sub001/models"
)

// RazorpayOrderResponse represents the gateway's order-create response
type RazorpayOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
	Error    *struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error,omitempty"`
}

// getRazorpayConfig reads gateway credentials from the environment
func getRazorpayConfig() (keyID, keySecret, apiURL string, err error) {
	keyID = os.Getenv("RAZORPAY_KEY_ID")
	keySecret = os.Getenv("RAZORPAY_KEY_SECRET")
	apiURL = os.Getenv("RAZORPAY_API_URL")
	if apiURL == "" {
		apiURL = "https://api.razorpay.com/v1/orders"
	}

	if keyID == "" || keySecret == "" {
		return "", "", "", fmt.Errorf("razorpay configuration missing")
	}
	return keyID, keySecret, apiURL, nil
}

// CreateRazorpayOrder registers an order with the gateway and returns its id.
// Amount is in rupees; the gateway wants paise.
func CreateRazorpayOrder(amount float64, currency, receipt string) (string, int64, error) {
	keyID, keySecret, apiURL, err := getRazorpayConfig()
	if err != nil {
		return "", 0, err
	}

	paise := decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	payload := map[string]interface{}{
		"amount":   paise,
		"currency": currency,
		"receipt":  receipt,
	}

	jsonData, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", apiURL, bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(keyID, keySecret)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("failed to reach Razorpay: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", 0, fmt.Errorf("razorpay API error (%d): %s", resp.StatusCode, string(body))
	}

	var rzpResp RazorpayOrderResponse
	if err := json.Unmarshal(body, &rzpResp); err != nil {
		return "", 0, fmt.Errorf("failed to parse Razorpay response: %v", err)
	}

	if rzpResp.Error != nil {
		return "", 0, fmt.Errorf("razorpay error: %s", rzpResp.Error.Description)
	}
	if rzpResp.ID == "" {
		return "", 0, fmt.Errorf("razorpay returned empty order id")
	}

	return rzpResp.ID, paise, nil
}

// POST /api/payments/order
func PaymentRequestHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			OrderID  uint   `json:"order_id" binding:"required,min=1"`
			Currency string `json:"currency"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
			return
		}
		if input.Currency == "" {
			input.Currency = "INR"
		}

		var order models.Order
		if err := db.First(&order, "order_id = ?", input.OrderID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		receipt := "rcpt_" + uuid.NewString()
		rzpOrderID, paise, err := CreateRazorpayOrder(order.TotalAmount, input.Currency, receipt)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		if err := db.Model(&order).Update("razorpay_order_id", rzpOrderID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save gateway order id"})
			return
		}

		keyID := os.Getenv("RAZORPAY_KEY_ID")
		c.JSON(http.StatusOK, gin.H{
			"razorpay_order_id": rzpOrderID,
			"amount":            paise,
			"currency":          input.Currency,
			"key_id":            keyID,
		})
	}
}

// WebhookEvent is the subset of the gateway event payload we act on.
type WebhookEvent struct {
	Event   string `json:"event"` // e.g. "payment.captured"
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
				Status  string `json:"status"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// POST /api/payments/webhook
// Signature verification happens in middleware before this handler runs.
func WebhookHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var event WebhookEvent
		if err := c.ShouldBindJSON(&event); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse webhook payload"})
			return
		}

		rzpOrderID := event.Payload.Payment.Entity.OrderID
		if rzpOrderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing order_id in payload"})
			return
		}

		var updates map[string]interface{}
		switch event.Event {
		case "payment.captured":
			updates = map[string]interface{}{
				"payment_status": models.PaymentStatusPaid,
				"orderStatus":    models.OrderStatusConfirmed,
			}
		case "payment.failed":
			updates = map[string]interface{}{
				"payment_status": models.PaymentStatusFailed,
			}
		default:
			c.JSON(http.StatusOK, gin.H{"message": "event ignored"})
			return
		}

		result := db.Model(&models.Order{}).
			Where("razorpay_order_id = ?", rzpOrderID).
			Updates(updates)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "no order for gateway order id"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Payment status updated"})
	}
}
