// Package repository maps flat relational rows from raw dashboard and
// reporting queries into model records. Mapping is column-name driven: a
// query may select any subset of the known columns in any order, and
// optional columns that are absent from the result set simply leave their
// field at the zero (or nil) value.
package repository

import (
	"database/sql"

	"github.com/riturajpurohit95/shopSphere-sub001/models"
)

// orderColumns are the relational columns an order query may carry.
const (
	colOrderID         = "order_id"
	colUserID          = "user_id"
	colTotalAmount     = "total_amount"
	colShippingAddress = "shipping_address"
	colOrderStatus     = "orderStatus"
	colPaymentMethod   = "payment_method"
	colRazorpayOrderID = "razorpay_order_id"
	colPlacedAt        = "placed_at"
	colPaymentStatus   = "payment_status"
)

// ScanOrders maps every row of a result set to an Order. The payment_status
// column is optional: result sets from before the payments rollout do not
// carry it, and its absence yields a nil PaymentStatus rather than an error.
func ScanOrders(rows *sql.Rows) ([]models.Order, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var orders []models.Order
	for rows.Next() {
		order, err := scanOrder(rows, cols)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func scanOrder(rows *sql.Rows, cols []string) (models.Order, error) {
	var (
		order           models.Order
		shippingAddress sql.NullString
		status          sql.NullString
		paymentMethod   sql.NullString
		razorpayOrderID sql.NullString
		placedAt        sql.NullTime
		paymentStatus   sql.NullString
	)

	dests := make([]interface{}, len(cols))
	for i, col := range cols {
		switch col {
		case colOrderID:
			dests[i] = &order.ID
		case colUserID:
			dests[i] = &order.UserID
		case colTotalAmount:
			dests[i] = &order.TotalAmount
		case colShippingAddress:
			dests[i] = &shippingAddress
		case colOrderStatus:
			dests[i] = &status
		case colPaymentMethod:
			dests[i] = &paymentMethod
		case colRazorpayOrderID:
			dests[i] = &razorpayOrderID
		case colPlacedAt:
			dests[i] = &placedAt
		case colPaymentStatus:
			dests[i] = &paymentStatus
		default:
			dests[i] = new(sql.RawBytes)
		}
	}

	if err := rows.Scan(dests...); err != nil {
		return models.Order{}, err
	}

	order.ShippingAddress = shippingAddress.String
	order.Status = models.OrderStatus(status.String)
	order.PaymentMethod = paymentMethod.String
	order.RazorpayOrderID = razorpayOrderID.String
	if placedAt.Valid {
		order.PlacedAt = placedAt.Time
	}
	if paymentStatus.Valid {
		ps := models.PaymentStatus(paymentStatus.String)
		order.PaymentStatus = &ps
	}
	return order, nil
}

// ScanProducts maps every row of a product result set to a Product.
func ScanProducts(rows *sql.Rows) ([]models.Product, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var products []models.Product
	for rows.Next() {
		product, err := scanProduct(rows, cols)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func scanProduct(rows *sql.Rows, cols []string) (models.Product, error) {
	var (
		product     models.Product
		brand       sql.NullString
		description sql.NullString
		imageURL    sql.NullString
	)

	dests := make([]interface{}, len(cols))
	for i, col := range cols {
		switch col {
		case "product_id":
			dests[i] = &product.ID
		case "user_id":
			dests[i] = &product.UserID
		case "category_id":
			dests[i] = &product.CategoryID
		case "product_name":
			dests[i] = &product.Name
		case "product_price":
			dests[i] = &product.Price
		case "product_mrp":
			dests[i] = &product.MRP
		case "product_quantity":
			dests[i] = &product.Quantity
		case "product_avg_rating":
			dests[i] = &product.AvgRating
		case "product_reviews_count":
			dests[i] = &product.ReviewsCount
		case "brand":
			dests[i] = &brand
		case "description":
			dests[i] = &description
		case "image_url":
			dests[i] = &imageURL
		default:
			dests[i] = new(sql.RawBytes)
		}
	}

	if err := rows.Scan(dests...); err != nil {
		return models.Product{}, err
	}

	product.Brand = brand.String
	product.Description = description.String
	product.ImageURL = imageURL.String
	return product, nil
}
