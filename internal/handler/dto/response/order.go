package response

import (
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// CheckoutResponse is what the client needs to open the payment widget.
type CheckoutResponse struct {
	OrderID         uuid.UUID `json:"order_id"`
	OrderNumber     string    `json:"order_number"`
	Status          string    `json:"status"`
	ProviderOrderID string    `json:"razorpay_order_id,omitempty"`
	AmountCents     int64     `json:"amount_cents"`
	Currency        string    `json:"currency"`
	KeyID           string    `json:"key_id"`
	Replayed        bool      `json:"replayed"`
}

func FromPlaceOrderResult(r *commands.PlaceOrderResult) (*CheckoutResponse, error) {
	var out CheckoutResponse
	if err := copier.Copy(&out, r.Intent); err != nil {
		return nil, err
	}
	out.Replayed = r.IsReplayed
	return &out, nil
}

type OrderSummaryResponse struct {
	ID         uuid.UUID `json:"id"`
	Number     string    `json:"number"`
	Status     string    `json:"status"`
	TotalCents int64     `json:"total_cents"`
	Currency   string    `json:"currency"`
	CreatedAt  int64     `json:"created_at"`
}

func FromOrderList(items []*queries.OrderListItem) []*OrderSummaryResponse {
	res := make([]*OrderSummaryResponse, len(items))
	for i, it := range items {
		res[i] = &OrderSummaryResponse{
			ID:         it.ID,
			Number:     it.Number,
			Status:     it.Status,
			TotalCents: it.TotalCents,
			Currency:   it.Currency,
			CreatedAt:  it.CreatedAt.Unix(),
		}
	}
	return res
}

type SendBroadcastResponse struct {
	Recipients int `json:"recipients"`
}
