package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"storefront/internal/domain/payment"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"

	"github.com/tidwall/gjson"
)

var (
	ErrGatewayUnavailable = errs.New("payment gateway unavailable")
	ErrGatewayRejected    = errs.New("payment gateway rejected the request")
	ErrMalformedWebhook   = errs.NewCategorized("malformed payment webhook", errs.ErrValidation)
)

const maxResponseBytes = 1 << 20

// Gateway talks to a Razorpay-compatible orders API.
type Gateway struct {
	baseURL   string
	keyID     string
	keySecret string
	client    *http.Client
}

func NewGateway(cfg config.PaymentConfig) *Gateway {
	return &Gateway{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
		client:    &http.Client{Timeout: cfg.Timeout},
	}
}

func (g *Gateway) KeyID() string { return g.keyID }

type createOrderBody struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

// CreateOrder opens a gateway order for amountCents and returns its id.
func (g *Gateway) CreateOrder(ctx context.Context, amountCents int64, currency, receipt string) (string, error) {
	payload, err := json.Marshal(createOrderBody{
		Amount:   amountCents,
		Currency: currency,
		Receipt:  receipt,
		Notes:    map[string]string{"receipt": receipt},
	})
	if err != nil {
		return "", errs.Wrap(err, "failed to encode gateway order")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/orders", bytes.NewReader(payload))
	if err != nil {
		return "", errs.Wrap(err, "failed to build gateway request")
	}
	req.SetBasicAuth(g.keyID, g.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "gateway request failed"), ErrGatewayUnavailable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "failed to read gateway response"), ErrGatewayUnavailable)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return "", errs.Mark(fmt.Errorf("gateway status %d", resp.StatusCode), ErrGatewayUnavailable)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		desc := gjson.GetBytes(body, "error.description").String()
		slog.Warn("payment gateway rejected order", "status", resp.StatusCode, "receipt", receipt, "description", desc)
		return "", errs.Mark(fmt.Errorf("gateway status %d: %s", resp.StatusCode, desc), ErrGatewayRejected)
	}

	id := gjson.GetBytes(body, "id").String()
	if id == "" {
		return "", errs.Mark(errs.New("gateway response has no order id"), ErrGatewayUnavailable)
	}
	return id, nil
}

// ParseWebhook extracts the payment entity from a gateway event body.
func (g *Gateway) ParseWebhook(body []byte) (payment.WebhookEvent, error) {
	if !gjson.ValidBytes(body) {
		return payment.WebhookEvent{}, ErrMalformedWebhook
	}
	res := gjson.GetManyBytes(body,
		"event",
		"payload.payment.entity.order_id",
		"payload.payment.entity.id",
		"payload.payment.entity.amount",
		"payload.payment.entity.currency",
		"payload.payment.entity.error_description",
	)
	ev := payment.WebhookEvent{
		Event:           res[0].String(),
		ProviderOrderID: res[1].String(),
		PaymentID:       res[2].String(),
		AmountCents:     res[3].Int(),
		Currency:        res[4].String(),
		ErrorReason:     res[5].String(),
	}
	if ev.Event == "" {
		return payment.WebhookEvent{}, ErrMalformedWebhook
	}
	return ev, nil
}
