package coupon

import (
	"time"

	"storefront/internal/domain/pricing"

	"github.com/google/uuid"
)

// Apply prices lines with c, checking redeemability against the undiscounted subtotal first.
// A nil coupon yields the plain quote.
func Apply(calc pricing.Calculator, lines []pricing.Line, rules map[uuid.UUID]pricing.BundleRule, c *Coupon, now time.Time, email string) (pricing.Quote, error) {
	base, err := calc.Quote(lines, rules, nil)
	if err != nil || c == nil {
		return base, err
	}
	if err := c.Validate(now, email, base.Subtotal); err != nil {
		return base, err
	}
	terms := c.Terms()
	q, err := calc.Quote(lines, rules, &terms)
	if err != nil {
		return base, err
	}
	if err := c.CheckApplicable(q); err != nil {
		return base, err
	}
	return q, nil
}
