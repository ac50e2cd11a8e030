package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"storefront/internal/pkg/errs"
)

var (
	ErrInvalidSignature = errs.NewCategorized("payment signature mismatch", errs.ErrValidation)
	ErrMissingSignature = errs.NewCategorized("payment signature missing", errs.ErrValidation)
)

// Sign returns the lowercase hex HMAC-SHA256 of message under secret.
func Sign(secret string, message []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(message)
	return hex.EncodeToString(mac.Sum(nil))
}

func verify(secret string, message []byte, signature string) error {
	signature = strings.TrimSpace(signature)
	if signature == "" {
		return ErrMissingSignature
	}
	got, err := hex.DecodeString(strings.ToLower(signature))
	if err != nil {
		return ErrInvalidSignature
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(message)
	if !hmac.Equal(mac.Sum(nil), got) {
		return ErrInvalidSignature
	}
	return nil
}

// CheckoutMessage is what the gateway signs after a widget payment.
func CheckoutMessage(providerOrderID, paymentID string) []byte {
	return []byte(providerOrderID + "|" + paymentID)
}

// VerifyCheckout checks the signature the payment widget hands back to the browser.
func VerifyCheckout(keySecret, providerOrderID, paymentID, signature string) error {
	return verify(keySecret, CheckoutMessage(providerOrderID, paymentID), signature)
}

// VerifyWebhook checks the X-Razorpay-Signature header against the raw body.
func VerifyWebhook(webhookSecret string, body []byte, signature string) error {
	return verify(webhookSecret, body, signature)
}
