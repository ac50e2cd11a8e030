//go:build unit

package payment_test

import (
	"strings"
	"testing"

	"storefront/internal/domain/payment"

	"github.com/stretchr/testify/assert"
)

func TestSign_KnownVector(t *testing.T) {
	// RFC 4231 test case 2.
	got := payment.Sign("Jefe", []byte("what do ya want for nothing?"))
	assert.Equal(t, "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843", got)
}

func TestVerifyCheckout(t *testing.T) {
	secret := "key_secret"
	sig := payment.Sign(secret, payment.CheckoutMessage("order_abc", "pay_xyz"))

	cases := []struct {
		name      string
		orderID   string
		paymentID string
		sig       string
		errIs     error
	}{
		{name: "valid", orderID: "order_abc", paymentID: "pay_xyz", sig: sig},
		{name: "uppercase hex accepted", orderID: "order_abc", paymentID: "pay_xyz", sig: strings.ToUpper(sig)},
		{name: "other payment", orderID: "order_abc", paymentID: "pay_other", sig: sig, errIs: payment.ErrInvalidSignature},
		{name: "swapped fields", orderID: "pay_xyz", paymentID: "order_abc", sig: sig, errIs: payment.ErrInvalidSignature},
		{name: "not hex", orderID: "order_abc", paymentID: "pay_xyz", sig: "zz", errIs: payment.ErrInvalidSignature},
		{name: "missing", orderID: "order_abc", paymentID: "pay_xyz", sig: "", errIs: payment.ErrMissingSignature},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := payment.VerifyCheckout(secret, tc.orderID, tc.paymentID, tc.sig)
			if tc.errIs == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.errIs)
			}
		})
	}
}

func TestVerifyWebhook(t *testing.T) {
	body := []byte(`{"event":"payment.captured"}`)
	sig := payment.Sign("whsec", body)

	assert.NoError(t, payment.VerifyWebhook("whsec", body, sig))
	assert.ErrorIs(t, payment.VerifyWebhook("other", body, sig), payment.ErrInvalidSignature)
	assert.ErrorIs(t, payment.VerifyWebhook("whsec", append(body, ' '), sig), payment.ErrInvalidSignature)
}
