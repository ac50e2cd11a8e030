package queries

import (
	"context"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/coupon"
	"storefront/internal/domain/pricing"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartLineView struct {
	ProductID      uuid.UUID  `json:"product_id"`
	BundleID       *uuid.UUID `json:"bundle_id,omitempty"`
	Name           string     `json:"name"`
	ImageURL       string     `json:"image_url"`
	Stock          int32      `json:"stock"`
	UnitPriceCents int64      `json:"unit_price_cents"`
	Quantity       int        `json:"quantity"`
	LineTotalCents int64      `json:"line_total_cents"`
}

type BundleTotalView struct {
	BundleID       uuid.UUID `json:"bundle_id"`
	Name           string    `json:"name"`
	Mode           string    `json:"mode"`
	BaseTotalCents int64     `json:"base_total_cents"`
	TotalCents     int64     `json:"total_cents"`
}

type QuoteView struct {
	Lines                     []CartLineView    `json:"lines"`
	Bundles                   []BundleTotalView `json:"bundles"`
	SubtotalCents             int64             `json:"subtotal_cents"`
	ShippingCents             int64             `json:"shipping_cents"`
	EligibleCents             int64             `json:"eligible_cents"`
	DiscountCents             int64             `json:"discount_cents"`
	TotalCents                int64             `json:"total_cents"`
	FreeShipping              bool              `json:"free_shipping"`
	FreeShippingReason        string            `json:"free_shipping_reason,omitempty"`
	AmountToFreeShippingCents int64             `json:"amount_to_free_shipping_cents"`
	Currency                  string            `json:"currency"`
}

type UnavailableView struct {
	ProductID uuid.UUID  `json:"product_id"`
	BundleID  *uuid.UUID `json:"bundle_id,omitempty"`
	Quantity  int        `json:"quantity"`
	Reason    string     `json:"reason"`
}

// CouponStatus reports what happened to a requested coupon code.
type CouponStatus struct {
	Code        string `json:"code"`
	Applied     bool   `json:"applied"`
	MessageCode string `json:"message_code"`
	Message     string `json:"message,omitempty"`
}

type CartView struct {
	Quote       QuoteView         `json:"quote"`
	Unavailable []UnavailableView `json:"unavailable"`
	Coupon      *CouponStatus     `json:"coupon,omitempty"`
}

//go:generate mockgen -source=checkout.go -destination=../../../tests/mock/queries/checkout.go -package=queriesmock

// CouponLookup finds redeemable coupons by code for previews. It may serve cached data.
type CouponLookup interface {
	FindByCode(ctx context.Context, code string) (*coupon.Coupon, error)
}

type CheckoutQueries interface {
	// Quote prices the user's cart. A rejected coupon is reported in CartView.Coupon, not as an error.
	Quote(ctx context.Context, userID uuid.UUID, email, couponCode string) (*CartView, error)
	// ValidateCoupon fails with the coupon's rejection error when it cannot be applied.
	ValidateCoupon(ctx context.Context, userID uuid.UUID, email, couponCode string) (*CartView, error)
}

type checkoutQueriesImpl struct {
	uow      shared.UnitOfWork
	coupons  CouponLookup
	calc     pricing.Calculator
	clock    clock.Clock
	currency string
}

func NewCheckoutQueries(uow shared.UnitOfWork, coupons CouponLookup, calc pricing.Calculator, clk clock.Clock, currency string) CheckoutQueries {
	return &checkoutQueriesImpl{uow: uow, coupons: coupons, calc: calc, clock: clk, currency: currency}
}

func (q *checkoutQueriesImpl) Quote(ctx context.Context, userID uuid.UUID, email, couponCode string) (*CartView, error) {
	res, err := q.price(ctx, userID, email, couponCode)
	if err != nil {
		return nil, err
	}
	return res.view, nil
}

func (q *checkoutQueriesImpl) ValidateCoupon(ctx context.Context, userID uuid.UUID, email, couponCode string) (*CartView, error) {
	if couponCode == "" {
		return nil, coupon.ErrCouponNotFound
	}
	res, err := q.price(ctx, userID, email, couponCode)
	if err != nil {
		return nil, err
	}
	if res.rejected != nil {
		return nil, res.rejected
	}
	return res.view, nil
}

type pricedView struct {
	view     *CartView
	rejected error
}

func (q *checkoutQueriesImpl) price(ctx context.Context, userID uuid.UUID, email, couponCode string) (*pricedView, error) {
	reads := q.uow.CommandReads()
	c, err := reads.CartByUser(ctx, userID, false)
	if err != nil {
		return nil, err
	}

	var (
		cp        *coupon.Coupon
		couponErr error
	)
	if couponCode != "" {
		cp, err = q.coupons.FindByCode(ctx, couponCode)
		switch {
		case err == nil:
		case infra.IsKind(err, infra.KindNotFound):
			couponErr = coupon.ErrCouponNotFound
		default:
			return nil, err
		}
	}

	priced, err := shared.PriceCart(ctx, reads, q.calc, c, cp, email, q.clock.Now())
	if err != nil {
		return nil, err
	}
	if couponErr == nil {
		couponErr = priced.CouponErr
	}

	view := &CartView{
		Quote:       NewQuoteView(priced.Quote, priced.Catalog, q.currency),
		Unavailable: unavailableViews(priced.Unavailable),
	}
	if couponCode != "" {
		view.Coupon = couponStatus(coupon.NormalizeCode(couponCode), couponErr)
	}
	return &pricedView{view: view, rejected: couponErr}, nil
}

// NewQuoteView flattens a quote for clients, enriching lines with catalog display fields.
func NewQuoteView(q pricing.Quote, cat cart.Catalog, currency string) QuoteView {
	lines := make([]CartLineView, 0, len(q.Lines))
	for _, l := range q.Lines {
		lv := CartLineView{
			ProductID:      l.ProductID,
			BundleID:       l.BundleID,
			Name:           l.Name,
			UnitPriceCents: l.UnitPrice.Cents(),
			Quantity:       l.Quantity,
			LineTotalCents: l.LineTotal.Cents(),
		}
		if p, ok := cat.Products[l.ProductID]; ok {
			lv.ImageURL = p.ImageURL()
			lv.Stock = p.Stock()
		}
		lines = append(lines, lv)
	}

	bundles := make([]BundleTotalView, 0, len(q.Bundles))
	for _, b := range q.Bundles {
		bundles = append(bundles, BundleTotalView{
			BundleID:       b.BundleID,
			Name:           b.Name,
			Mode:           string(b.Mode),
			BaseTotalCents: b.BaseTotal.Cents(),
			TotalCents:     b.Total.Cents(),
		})
	}

	return QuoteView{
		Lines:                     lines,
		Bundles:                   bundles,
		SubtotalCents:             q.Subtotal.Cents(),
		ShippingCents:             q.Shipping.Cents(),
		EligibleCents:             q.EligibleAmount.Cents(),
		DiscountCents:             q.Discount.Cents(),
		TotalCents:                q.Total.Cents(),
		FreeShipping:              q.FreeShipping,
		FreeShippingReason:        string(q.FreeShippingReason),
		AmountToFreeShippingCents: q.AmountToFreeShipping.Cents(),
		Currency:                  currency,
	}
}

func unavailableViews(items []cart.Unavailable) []UnavailableView {
	out := make([]UnavailableView, 0, len(items))
	for _, u := range items {
		out = append(out, UnavailableView{
			ProductID: u.Item.ProductID,
			BundleID:  u.Item.BundleID,
			Quantity:  u.Item.Quantity,
			Reason:    string(u.Reason),
		})
	}
	return out
}

func couponStatus(code string, err error) *CouponStatus {
	if err != nil {
		return &CouponStatus{Code: code, MessageCode: coupon.MessageCode(err), Message: err.Error()}
	}
	return &CouponStatus{Code: code, Applied: true, MessageCode: coupon.MsgCouponApplied}
}
