package orderControllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/riturajpurohit95/shopSphere-sub001/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func cartWithOneItem(mock sqlmock.Sqlmock, productID uint, price float64, qty int) {
	mock.ExpectQuery(`SELECT \* FROM "carts"`).WillReturnRows(
		sqlmock.NewRows([]string{"cart_id", "user_id", "created_at", "updated_at"}).
			AddRow(1, 7, time.Now(), time.Now()),
	)
	mock.ExpectQuery(`SELECT \* FROM "cart_items"`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "cart_id", "product_id", "product_name", "product_price", "product_image", "quantity", "added_at"}).
			AddRow(1, 1, productID, "Trail Running Shoes", price, "shoes.jpg", qty, time.Now()),
	)
}

func TestMapOrderStatus(t *testing.T) {
	cases := []struct {
		in   string
		want models.OrderStatus
		ok   bool
	}{
		{"pending", models.OrderStatusPending, true},
		{"CONFIRMED", models.OrderStatusConfirmed, true},
		{"Shipped", models.OrderStatusShipped, true},
		{"delivered", models.OrderStatusDelivered, true},
		{"returned", models.OrderStatusReturned, true},
		{"cancelled", models.OrderStatusCancelled, true},
		{"teleported", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := mapOrderStatus(tc.in)
		if tc.ok {
			assert.NoError(t, err, tc.in)
			assert.Equal(t, tc.want, got)
		} else {
			assert.Error(t, err, tc.in)
		}
	}
}

func TestMapPaymentStatus(t *testing.T) {
	got, err := mapPaymentStatus("PAID")
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, got)

	_, err = mapPaymentStatus("almost-paid")
	assert.Error(t, err)
}

func TestValidCurrencyAmount(t *testing.T) {
	assert.True(t, validCurrencyAmount(0))
	assert.True(t, validCurrencyAmount(99.99))
	assert.True(t, validCurrencyAmount(1500))
	assert.False(t, validCurrencyAmount(-0.01))
	assert.False(t, validCurrencyAmount(10.999))
}

func TestPlaceOrder_DecrementsStockAndClearsCart(t *testing.T) {
	db, mock := newMockDB(t)

	cartWithOneItem(mock, 9, 499.50, 2)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "products" .*FOR UPDATE`).WillReturnRows(
		sqlmock.NewRows([]string{"product_id", "user_id", "product_name", "product_price", "product_quantity"}).
			AddRow(9, 2, "Trail Running Shoes", 499.50, 5),
	)
	mock.ExpectExec(`UPDATE "products" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "orders"`).WillReturnRows(
		sqlmock.NewRows([]string{"order_id"}).AddRow(42),
	)
	mock.ExpectQuery(`INSERT INTO "order_items"`).WillReturnRows(
		sqlmock.NewRows([]string{"id"}).AddRow(1),
	)
	mock.ExpectExec(`DELETE FROM "cart_items"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	order, err := PlaceOrder(db, OrderRequest{
		UserID:          7,
		TotalAmount:     999.00,
		ShippingAddress: "12 MG Road, Bengaluru",
		Status:          "pending",
		PaymentMethod:   "card",
	})
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, 999.00, order.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	require.NotNil(t, order.PaymentStatus)
	assert.Equal(t, models.PaymentStatusPending, *order.PaymentStatus)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrder_InsufficientStockRollsBack(t *testing.T) {
	db, mock := newMockDB(t)

	cartWithOneItem(mock, 9, 499.50, 10)

	// Only 3 left in stock: no decrement, no order insert, no cart clear.
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "products" .*FOR UPDATE`).WillReturnRows(
		sqlmock.NewRows([]string{"product_id", "user_id", "product_name", "product_price", "product_quantity"}).
			AddRow(9, 2, "Trail Running Shoes", 499.50, 3),
	)
	mock.ExpectRollback()

	order, err := PlaceOrder(db, OrderRequest{
		UserID:          7,
		TotalAmount:     4995.00,
		ShippingAddress: "12 MG Road, Bengaluru",
		Status:          "pending",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient stock")
	assert.Nil(t, order)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "carts"`).WillReturnRows(
		sqlmock.NewRows([]string{"cart_id", "user_id"}).AddRow(1, 7),
	)
	mock.ExpectQuery(`SELECT \* FROM "cart_items"`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "cart_id", "product_id"}),
	)

	_, err := PlaceOrder(db, OrderRequest{
		UserID:          7,
		TotalAmount:     0,
		ShippingAddress: "12 MG Road, Bengaluru",
		Status:          "pending",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cart is empty")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrder_BlankShippingAddress(t *testing.T) {
	db, _ := newMockDB(t)

	_, err := PlaceOrder(db, OrderRequest{
		UserID:          7,
		TotalAmount:     10.00,
		ShippingAddress: "   ",
		Status:          "pending",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be blank")
}

func TestPlaceOrderHandler_MissingClaimRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, _ := newMockDB(t)

	r := gin.New()
	r.POST("/api/orders", PlaceOrderHandler(db))

	body := `{"user_id":7,"total_amount":10,"shipping_address":"12 MG Road","status":"pending"}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetOrderByIDHandler_ScopedToOwner(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := newMockDB(t)

	// Buyer 7 asking for someone else's order: the query is scoped to
	// user_id = 7 and comes back empty.
	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE user_id = \$1 AND order_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"order_id"}))

	r := gin.New()
	r.GET("/api/orders/:orderID", func(c *gin.Context) {
		c.Set("user_id", float64(7))
		c.Set("role", "BUYER")
		c.Next()
	}, GetOrderByIDHandler(db))

	req := httptest.NewRequest(http.MethodGet, "/api/orders/55", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
