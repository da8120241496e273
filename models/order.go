package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	// Order statuses (typical e-commerce flow)
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // Confirmed by seller
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the item
	OrderStatusReturned  OrderStatus = "returned"  // Customer returned the item
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before shipping

	// Payment statuses
	PaymentStatusPending  PaymentStatus = "pending"  // Payment not completed yet
	PaymentStatusPaid     PaymentStatus = "paid"     // Payment completed successfully
	PaymentStatusFailed   PaymentStatus = "failed"   // Payment attempt failed
	PaymentStatusRefunded PaymentStatus = "refunded" // Money returned to customer
)

type Order struct {
	ID              uint        `gorm:"column:order_id;primaryKey;autoIncrement" json:"order_id"`
	UserID          uint        `gorm:"column:user_id;not null" json:"user_id"`
	User            User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	TotalAmount     float64     `gorm:"column:total_amount;not null" json:"total_amount"`
	ShippingAddress string      `gorm:"column:shipping_address;not null" json:"shipping_address"`
	Status          OrderStatus `gorm:"column:orderStatus;type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentMethod   string      `gorm:"column:payment_method" json:"payment_method"`
	RazorpayOrderID string      `gorm:"column:razorpay_order_id" json:"razorpay_order_id"`
	// Nullable: some upstream queries predate the payments rollout and do
	// not carry this column at all.
	PaymentStatus *PaymentStatus `gorm:"column:payment_status;type:VARCHAR(20)" json:"payment_status"`
	PlacedAt      time.Time      `gorm:"column:placed_at" json:"placed_at"`
}

func (Order) TableName() string { return "orders" }

type OrderItem struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	OrderID      uint    `gorm:"index" json:"order_id"`
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image"`
	ProductPrice float64 `json:"product_price"`
	Quantity     int     `json:"quantity"`
}
