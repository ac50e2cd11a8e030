package payment

// Webhook events we act on; everything else is acknowledged and ignored.
const (
	EventPaymentCaptured = "payment.captured"
	EventPaymentFailed   = "payment.failed"
)

// Confirmation is the widget callback payload after checkout.
type Confirmation struct {
	ProviderOrderID string
	PaymentID       string
	Signature       string
}

// WebhookEvent is the part of a gateway webhook the order flow needs.
type WebhookEvent struct {
	Event           string
	ProviderOrderID string
	PaymentID       string
	AmountCents     int64
	Currency        string
	ErrorReason     string
}

// Intent is what the browser needs to open the payment widget.
type Intent struct {
	ProviderOrderID string
	AmountCents     int64
	Currency        string
	KeyID           string
}
