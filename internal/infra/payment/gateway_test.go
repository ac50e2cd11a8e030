//go:build unit

package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, h http.HandlerFunc) *Gateway {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewGateway(config.PaymentConfig{
		KeyID:     "rzp_test_key",
		KeySecret: "secret",
		BaseURL:   srv.URL + "/",
		Timeout:   2 * time.Second,
	})
}

func TestGateway_CreateOrder(t *testing.T) {
	t.Run("returns the gateway order id", func(t *testing.T) {
		g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/orders", r.URL.Path)
			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "rzp_test_key", user)
			assert.Equal(t, "secret", pass)

			var body createOrderBody
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, int64(121500), body.Amount)
			assert.Equal(t, "INR", body.Currency)
			assert.Equal(t, "SF-1", body.Receipt)

			_, _ = w.Write([]byte(`{"id":"order_abc","status":"created"}`))
		})

		id, err := g.CreateOrder(context.Background(), 121500, "INR", "SF-1")
		require.NoError(t, err)
		assert.Equal(t, "order_abc", id)
	})

	t.Run("4xx is a rejection", func(t *testing.T) {
		g := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"description":"amount too small"}}`))
		})

		_, err := g.CreateOrder(context.Background(), 1, "INR", "SF-2")
		assert.True(t, errs.Is(err, ErrGatewayRejected))
		assert.Contains(t, err.Error(), "amount too small")
	})

	t.Run("5xx is unavailable", func(t *testing.T) {
		g := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := g.CreateOrder(context.Background(), 100, "INR", "SF-3")
		assert.True(t, errs.Is(err, ErrGatewayUnavailable))
	})

	t.Run("missing id is unavailable", func(t *testing.T) {
		g := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"status":"created"}`))
		})

		_, err := g.CreateOrder(context.Background(), 100, "INR", "SF-4")
		assert.True(t, errs.Is(err, ErrGatewayUnavailable))
	})
}

func TestGateway_ParseWebhook(t *testing.T) {
	g := NewGateway(config.PaymentConfig{})

	t.Run("payment entity", func(t *testing.T) {
		ev, err := g.ParseWebhook([]byte(`{
			"event": "payment.failed",
			"payload": {"payment": {"entity": {
				"id": "pay_1", "order_id": "order_1", "amount": 5000,
				"currency": "INR", "error_description": "card declined"
			}}}
		}`))

		require.NoError(t, err)
		assert.Equal(t, "payment.failed", ev.Event)
		assert.Equal(t, "order_1", ev.ProviderOrderID)
		assert.Equal(t, "pay_1", ev.PaymentID)
		assert.Equal(t, int64(5000), ev.AmountCents)
		assert.Equal(t, "card declined", ev.ErrorReason)
	})

	t.Run("malformed", func(t *testing.T) {
		for _, body := range []string{`not json`, `{"payload":{}}`} {
			_, err := g.ParseWebhook([]byte(body))
			assert.True(t, errs.Is(err, ErrMalformedWebhook), body)
			assert.True(t, errs.Is(err, errs.ErrValidation), body)
		}
	})
}
