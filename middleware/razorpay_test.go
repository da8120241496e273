package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyWebhookSignature(t *testing.T) {
	body := []byte(`{"event":"payment.captured"}`)
	secret := "whsec_123"

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	good := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, VerifyWebhookSignature(body, good, secret))
	assert.False(t, VerifyWebhookSignature(body, good, "wrong-secret"))
	assert.False(t, VerifyWebhookSignature([]byte(`tampered`), good, secret))
	assert.False(t, VerifyWebhookSignature(body, "", secret))
}
