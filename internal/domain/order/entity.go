package order

import (
	"fmt"
	"strings"
	"time"

	"storefront/internal/domain/pricing"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus      = errs.NewCategorized("invalid order status", errs.ErrValidation)
	ErrInvalidTransition  = errs.NewCategorized("order status transition not allowed", errs.ErrConflict)
	ErrEmptyOrder         = errs.NewCategorized("cannot place an order with no items", errs.ErrValidation)
	ErrNotOwner           = errs.NewCategorized("order belongs to another user", errs.ErrForbidden)
	ErrPaymentMismatch    = errs.NewCategorized("order already paid with a different payment", errs.ErrConflict)
	ErrNotCancellable     = errs.NewCategorized("order can no longer be cancelled", errs.ErrConflict)
	ErrMissingProviderRef = errs.NewCategorized("order has no payment gateway reference", errs.ErrConflict)
)

type Item struct {
	ProductID uuid.UUID
	BundleID  *uuid.UUID
	Name      string
	UnitPrice pricing.Money
	Quantity  int
	LineTotal pricing.Money
}

// ShippingAddress is copied onto the order so later address edits do not rewrite history.
type ShippingAddress struct {
	FullName string
	Phone    string
	Line1    string
	Line2    string
	City     string
	State    string
	Pincode  string
}

func (a ShippingAddress) Lines() []string {
	out := []string{a.FullName, a.Line1}
	if a.Line2 != "" {
		out = append(out, a.Line2)
	}
	return append(out, fmt.Sprintf("%s, %s %s", a.City, a.State, a.Pincode), a.Phone)
}

type Order struct {
	id              uuid.UUID
	userID          uuid.UUID
	number          string
	status          Status
	items           []Item
	subtotal        pricing.Money
	shipping        pricing.Money
	discount        pricing.Money
	total           pricing.Money
	currency        string
	couponID        *uuid.UUID
	couponCode      *string
	address         ShippingAddress
	providerOrderID *string
	paymentID       *string
	cancelReason    *string
	paidAt          *time.Time
	cancelledAt     *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

// NewOrder freezes a quote into a pending order.
func NewOrder(
	userID uuid.UUID,
	quote pricing.Quote,
	couponID *uuid.UUID,
	address ShippingAddress,
	currency string,
	now time.Time,
) (*Order, error) {
	if quote.IsEmpty() {
		return nil, ErrEmptyOrder
	}

	items := make([]Item, 0, len(quote.Lines))
	for _, l := range quote.Lines {
		items = append(items, Item{
			ProductID: l.ProductID,
			BundleID:  l.BundleID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			LineTotal: l.LineTotal,
		})
	}

	var code *string
	if couponID != nil && quote.CouponCode != "" {
		c := quote.CouponCode
		code = &c
	}

	id := uuid.New()
	return &Order{
		id:         id,
		userID:     userID,
		number:     NewOrderNumber(id, now),
		status:     StatusPending,
		items:      items,
		subtotal:   quote.Subtotal,
		shipping:   quote.Shipping,
		discount:   quote.Discount,
		total:      quote.Total,
		currency:   currency,
		couponID:   couponID,
		couponCode: code,
		address:    address,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// NewOrderNumber is human-facing: SF-YYMMDD-XXXXXXXX.
func NewOrderNumber(id uuid.UUID, now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
	return fmt.Sprintf("SF-%s-%s", now.Format("060102"), suffix)
}

type ReconstructParams struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Number          string
	Status          Status
	Items           []Item
	Subtotal        pricing.Money
	Shipping        pricing.Money
	Discount        pricing.Money
	Total           pricing.Money
	Currency        string
	CouponID        *uuid.UUID
	CouponCode      *string
	Address         ShippingAddress
	ProviderOrderID *string
	PaymentID       *string
	CancelReason    *string
	PaidAt          *time.Time
	CancelledAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func Reconstruct(p ReconstructParams) *Order {
	return &Order{
		id:              p.ID,
		userID:          p.UserID,
		number:          p.Number,
		status:          p.Status,
		items:           p.Items,
		subtotal:        p.Subtotal,
		shipping:        p.Shipping,
		discount:        p.Discount,
		total:           p.Total,
		currency:        p.Currency,
		couponID:        p.CouponID,
		couponCode:      p.CouponCode,
		address:         p.Address,
		providerOrderID: p.ProviderOrderID,
		paymentID:       p.PaymentID,
		cancelReason:    p.CancelReason,
		paidAt:          p.PaidAt,
		cancelledAt:     p.CancelledAt,
		createdAt:       p.CreatedAt,
		updatedAt:       p.UpdatedAt,
	}
}

func (o *Order) Transition(next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !o.status.CanTransitionTo(next) {
		return errs.Wrapf(ErrInvalidTransition, "%s -> %s", o.status, next)
	}
	o.status = next
	o.updatedAt = now
	return nil
}

// MarkPaid is idempotent for the same payment id; replayed reports that nothing changed.
func (o *Order) MarkPaid(paymentID string, now time.Time) (replayed bool, err error) {
	if o.paymentID != nil && o.status != StatusPending {
		if *o.paymentID == paymentID {
			return true, nil
		}
		return false, ErrPaymentMismatch
	}
	if err := o.Transition(StatusPaid, now); err != nil {
		return false, err
	}
	o.paymentID = &paymentID
	o.paidAt = &now
	return false, nil
}

// RecordLateCapture keeps the id of a payment captured after the order was
// cancelled or failed. The status is unchanged and the capture is owed a
// refund. It reports false when the same payment is already on record.
func (o *Order) RecordLateCapture(paymentID string, now time.Time) (bool, error) {
	if o.status.HoldsReservation() {
		return false, errs.Wrapf(ErrInvalidTransition, "%s order is still open", o.status)
	}
	if o.paymentID != nil {
		if *o.paymentID == paymentID {
			return false, nil
		}
		return false, ErrPaymentMismatch
	}
	o.paymentID = &paymentID
	o.updatedAt = now
	return true, nil
}

func (o *Order) MarkPaymentFailed(reason string, now time.Time) error {
	if err := o.Transition(StatusPaymentFailed, now); err != nil {
		return err
	}
	if reason != "" {
		o.cancelReason = &reason
	}
	return nil
}

// Cancel lets owners drop unpaid orders; staff may cancel anything not yet shipped.
func (o *Order) Cancel(reason string, privileged bool, now time.Time) error {
	if !privileged && o.status != StatusPending {
		return ErrNotCancellable
	}
	if !o.status.CanTransitionTo(StatusCancelled) {
		return ErrNotCancellable
	}
	o.status = StatusCancelled
	o.updatedAt = now
	o.cancelledAt = &now
	if reason != "" {
		o.cancelReason = &reason
	}
	return nil
}

func (o *Order) AttachProviderOrder(providerOrderID string, now time.Time) {
	o.providerOrderID = &providerOrderID
	o.updatedAt = now
}

func (o *Order) IsOwnedBy(userID uuid.UUID) bool {
	return o.userID == userID
}

// ItemQuantities sums quantities per product across standalone and bundled rows.
func (o *Order) ItemQuantities() map[uuid.UUID]int {
	out := make(map[uuid.UUID]int, len(o.items))
	for _, it := range o.items {
		out[it.ProductID] += it.Quantity
	}
	return out
}

func (o *Order) ID() uuid.UUID            { return o.id }
func (o *Order) UserID() uuid.UUID        { return o.userID }
func (o *Order) Number() string           { return o.number }
func (o *Order) Status() Status           { return o.status }
func (o *Order) Items() []Item            { return o.items }
func (o *Order) Subtotal() pricing.Money  { return o.subtotal }
func (o *Order) Shipping() pricing.Money  { return o.shipping }
func (o *Order) Discount() pricing.Money  { return o.discount }
func (o *Order) Total() pricing.Money     { return o.total }
func (o *Order) Currency() string         { return o.currency }
func (o *Order) CouponID() *uuid.UUID     { return o.couponID }
func (o *Order) CouponCode() *string      { return o.couponCode }
func (o *Order) Address() ShippingAddress { return o.address }
func (o *Order) ProviderOrderID() *string { return o.providerOrderID }
func (o *Order) PaymentID() *string       { return o.paymentID }
func (o *Order) CancelReason() *string    { return o.cancelReason }
func (o *Order) PaidAt() *time.Time       { return o.paidAt }
func (o *Order) CancelledAt() *time.Time  { return o.cancelledAt }
func (o *Order) CreatedAt() time.Time     { return o.createdAt }
func (o *Order) UpdatedAt() time.Time     { return o.updatedAt }
