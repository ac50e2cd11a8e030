package shared

import (
	"context"
	"time"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/coupon"
	"storefront/internal/domain/pricing"
)

// PricedCart is a cart priced against the live catalog.
// CouponErr holds a coupon rejection; Quote is then the undiscounted quote.
type PricedCart struct {
	Cart        *cart.Cart
	Catalog     cart.Catalog
	Lines       []pricing.Line
	Quote       pricing.Quote
	Unavailable []cart.Unavailable
	Coupon      *coupon.Coupon
	CouponErr   error
}

func (p *PricedCart) CouponApplied() bool {
	return p.Coupon != nil && p.CouponErr == nil
}

// PriceCart loads the catalog rows the cart references and quotes it with an optional coupon.
func PriceCart(ctx context.Context, reads CommandReads, calc pricing.Calculator, c *cart.Cart, cp *coupon.Coupon, email string, now time.Time) (*PricedCart, error) {
	products, err := reads.ProductsByIDs(ctx, c.ProductIDs())
	if err != nil {
		return nil, err
	}
	bundles, err := reads.BundlesByIDs(ctx, c.BundleIDs())
	if err != nil {
		return nil, err
	}

	cat := cart.Catalog{Products: products, Bundles: bundles}
	lines, rules, unavailable := c.Lines(cat)

	priced := &PricedCart{
		Cart:        c,
		Catalog:     cat,
		Lines:       lines,
		Unavailable: unavailable,
		Coupon:      cp,
	}

	q, err := coupon.Apply(calc, lines, rules, cp, now, email)
	switch {
	case err == nil:
	case coupon.MessageCode(err) != "":
		priced.CouponErr = err
	default:
		return nil, err
	}
	priced.Quote = q
	return priced, nil
}
