package pricing

import (
	"fmt"

	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity  = errs.New("quantity must be at least 1")
	ErrNegativePrice    = errs.New("unit price cannot be negative")
	ErrUnknownBundle    = errs.New("line references a bundle without a pricing rule")
	ErrInvalidBundle    = errs.New("invalid bundle pricing rule")
	ErrInvalidCouponRef = errs.New("invalid coupon terms")
)

var hundred = decimal.NewFromInt(100)

type Calculator interface {
	Quote(lines []Line, bundles map[uuid.UUID]BundleRule, coupon *CouponTerms) (Quote, error)
	Policy() ShippingPolicy
}

type DefaultCalculator struct {
	policy ShippingPolicy
}

func NewCalculator(policy ShippingPolicy) *DefaultCalculator {
	return &DefaultCalculator{policy: policy}
}

func (c *DefaultCalculator) Policy() ShippingPolicy {
	return c.policy
}

func (c *DefaultCalculator) Quote(lines []Line, bundles map[uuid.UUID]BundleRule, coupon *CouponTerms) (Quote, error) {
	q := Quote{}
	if coupon != nil {
		if err := validateTerms(*coupon); err != nil {
			return Quote{}, err
		}
		q.CouponCode = coupon.Code
	}
	if len(lines) == 0 {
		return q, nil
	}

	subtotal, err := c.subtotal(lines, bundles, &q)
	if err != nil {
		return Quote{}, err
	}
	q.Subtotal = subtotal

	q.Shipping, q.FreeShippingReason = c.shipping(subtotal, coupon)
	q.FreeShipping = q.FreeShippingReason != FreeShippingNone
	if c.policy.FreeThreshold.IsPositive() {
		q.AmountToFreeShipping = c.policy.FreeThreshold.SubFloor(subtotal)
	}

	if coupon != nil {
		q.EligibleAmount = eligibleAmount(lines, subtotal, *coupon)
		q.Discount = discount(q.EligibleAmount, *coupon)
	}

	q.Total = subtotal.Add(q.Shipping).SubFloor(q.Discount)
	return q, nil
}

func (c *DefaultCalculator) subtotal(lines []Line, bundles map[uuid.UUID]BundleRule, q *Quote) (Money, error) {
	standalone := Zero()
	groupBase := make(map[uuid.UUID]Money)
	var groupOrder []uuid.UUID

	q.Lines = make([]QuotedLine, 0, len(lines))
	for _, l := range lines {
		if l.Quantity < 1 {
			return Zero(), errs.Wrapf(ErrInvalidQuantity, "product %s", l.ProductID)
		}
		if l.UnitPrice.Cents() < 0 {
			return Zero(), errs.Wrapf(ErrNegativePrice, "product %s", l.ProductID)
		}
		total := l.Total()
		q.Lines = append(q.Lines, QuotedLine{Line: l, LineTotal: total})

		if !l.IsBundled() {
			standalone = standalone.Add(total)
			continue
		}
		id := *l.BundleID
		if _, seen := groupBase[id]; !seen {
			groupOrder = append(groupOrder, id)
		}
		groupBase[id] = groupBase[id].Add(total)
	}

	subtotal := standalone
	for _, id := range groupOrder {
		rule, ok := bundles[id]
		if !ok {
			return Zero(), errs.Wrapf(ErrUnknownBundle, "bundle %s", id)
		}
		bt, err := bundleTotal(rule, groupBase[id])
		if err != nil {
			return Zero(), err
		}
		q.Bundles = append(q.Bundles, bt)
		subtotal = subtotal.Add(bt.Total)
	}
	return subtotal, nil
}

func bundleTotal(rule BundleRule, base Money) (BundleTotal, error) {
	bt := BundleTotal{BundleID: rule.ID, Name: rule.Name, Mode: rule.Mode, BaseTotal: base}
	switch rule.Mode {
	case BundleModeFlat:
		bt.Total = base
	case BundleModePercentage:
		if rule.PercentOff.IsNegative() || rule.PercentOff.GreaterThan(hundred) {
			return BundleTotal{}, errs.Wrapf(ErrInvalidBundle, "bundle %s percent %s", rule.ID, rule.PercentOff)
		}
		bt.Total = base.SubFloor(base.Percent(rule.PercentOff))
	case BundleModeFixed:
		if rule.AmountOff.Cents() < 0 {
			return BundleTotal{}, errs.Wrapf(ErrInvalidBundle, "bundle %s amount %s", rule.ID, rule.AmountOff)
		}
		bt.Total = base.SubFloor(rule.AmountOff)
	default:
		return BundleTotal{}, errs.Wrapf(ErrInvalidBundle, "bundle %s mode %q", rule.ID, rule.Mode)
	}
	return bt, nil
}

func (c *DefaultCalculator) shipping(subtotal Money, coupon *CouponTerms) (Money, FreeShippingReason) {
	if coupon != nil && coupon.Kind == CouponKindFreeShipping {
		return Zero(), FreeShippingCoupon
	}
	if c.policy.FreeThreshold.IsPositive() && subtotal.GreaterOrEqual(c.policy.FreeThreshold) {
		return Zero(), FreeShippingThreshold
	}
	return c.policy.FlatFee, FreeShippingNone
}

// Restricted coupons only count standalone lines; bundles are already discounted.
func eligibleAmount(lines []Line, subtotal Money, terms CouponTerms) Money {
	if !terms.IsRestricted() {
		return subtotal
	}
	eligible := Zero()
	for _, l := range lines {
		if l.IsBundled() || !terms.matches(l) {
			continue
		}
		eligible = eligible.Add(l.Total())
	}
	return eligible
}

func discount(eligible Money, terms CouponTerms) Money {
	switch terms.Kind {
	case CouponKindPercentage:
		d := eligible.Percent(terms.PercentOff)
		if terms.MaxDiscount.IsPositive() {
			d = MinMoney(d, terms.MaxDiscount)
		}
		return MinMoney(d, eligible)
	case CouponKindFixed:
		return MinMoney(terms.AmountOff, eligible)
	default:
		return Zero()
	}
}

func validateTerms(t CouponTerms) error {
	if !t.Kind.Valid() {
		return errs.Wrap(ErrInvalidCouponRef, fmt.Sprintf("kind %q", t.Kind))
	}
	if t.PercentOff.IsNegative() || t.PercentOff.GreaterThan(hundred) {
		return errs.Wrap(ErrInvalidCouponRef, "percent out of range")
	}
	if t.AmountOff.Cents() < 0 || t.MaxDiscount.Cents() < 0 {
		return errs.Wrap(ErrInvalidCouponRef, "negative amount")
	}
	return nil
}
