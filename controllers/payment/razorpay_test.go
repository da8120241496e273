package paymentControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRazorpayOrder(t *testing.T) {
	var gotPayload map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "rzp_test_secret", pass)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       "order_Abc123",
			"amount":   gotPayload["amount"],
			"currency": gotPayload["currency"],
			"status":   "created",
		})
	}))
	defer srv.Close()

	os.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	os.Setenv("RAZORPAY_KEY_SECRET", "rzp_test_secret")
	os.Setenv("RAZORPAY_API_URL", srv.URL)
	defer func() {
		os.Unsetenv("RAZORPAY_KEY_ID")
		os.Unsetenv("RAZORPAY_KEY_SECRET")
		os.Unsetenv("RAZORPAY_API_URL")
	}()

	id, paise, err := CreateRazorpayOrder(2499.50, "INR", "rcpt_test")
	require.NoError(t, err)
	assert.Equal(t, "order_Abc123", id)
	// Rupees convert to paise exactly, no float drift.
	assert.Equal(t, int64(249950), paise)
	assert.Equal(t, "rcpt_test", gotPayload["receipt"])
}

func TestCreateRazorpayOrder_MissingConfig(t *testing.T) {
	os.Unsetenv("RAZORPAY_KEY_ID")
	os.Unsetenv("RAZORPAY_KEY_SECRET")

	_, _, err := CreateRazorpayOrder(10, "INR", "rcpt")
	assert.Error(t, err)
}

func TestCreateRazorpayOrder_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"amount too small"}}`))
	}))
	defer srv.Close()

	os.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	os.Setenv("RAZORPAY_KEY_SECRET", "rzp_test_secret")
	os.Setenv("RAZORPAY_API_URL", srv.URL)
	defer func() {
		os.Unsetenv("RAZORPAY_KEY_ID")
		os.Unsetenv("RAZORPAY_KEY_SECRET")
		os.Unsetenv("RAZORPAY_API_URL")
	}()

	_, _, err := CreateRazorpayOrder(0.001, "INR", "rcpt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "razorpay API error")
}
