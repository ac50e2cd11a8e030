package coupon

import (
	"strings"
	"time"

	"storefront/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Params carries the admin-editable fields of a coupon.
type Params struct {
	Code          string
	Kind          pricing.CouponKind
	PercentOff    decimal.Decimal
	AmountOff     pricing.Money
	MaxDiscount   pricing.Money
	MinOrder      pricing.Money
	UsageLimit    *int32
	AllowedEmails []string
	ProductIDs    []uuid.UUID
	CategoryIDs   []uuid.UUID
	ValidFrom     *time.Time
	ValidTo       *time.Time
	Active        bool
}

type Coupon struct {
	id            uuid.UUID
	code          Code
	kind          pricing.CouponKind
	percentOff    decimal.Decimal
	amountOff     pricing.Money
	maxDiscount   pricing.Money
	minOrder      pricing.Money
	usageLimit    *int32
	usedCount     int32
	allowedEmails []string
	productIDs    []uuid.UUID
	categoryIDs   []uuid.UUID
	validFrom     *time.Time
	validTo       *time.Time
	active        bool
	createdAt     time.Time
	updatedAt     time.Time
}

func NewCoupon(id uuid.UUID, p Params, now time.Time) (*Coupon, error) {
	if id == uuid.Nil {
		id = uuid.New()
	}
	c := &Coupon{id: id, createdAt: now}
	if err := c.apply(p, now); err != nil {
		return nil, err
	}
	return c, nil
}

func ReconstructCoupon(
	id uuid.UUID,
	p Params,
	usedCount int32,
	createdAt, updatedAt time.Time,
) *Coupon {
	return &Coupon{
		id:            id,
		code:          Code(NormalizeCode(p.Code)),
		kind:          p.Kind,
		percentOff:    p.PercentOff,
		amountOff:     p.AmountOff,
		maxDiscount:   p.MaxDiscount,
		minOrder:      p.MinOrder,
		usageLimit:    p.UsageLimit,
		usedCount:     usedCount,
		allowedEmails: p.AllowedEmails,
		productIDs:    p.ProductIDs,
		categoryIDs:   p.CategoryIDs,
		validFrom:     p.ValidFrom,
		validTo:       p.ValidTo,
		active:        p.Active,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Update replaces every editable field; used_count is untouched.
func (c *Coupon) Update(p Params, now time.Time) error {
	next := *c
	if err := next.apply(p, now); err != nil {
		return err
	}
	*c = next
	return nil
}

func (c *Coupon) Deactivate(now time.Time) {
	c.active = false
	c.updatedAt = now
}

func (c *Coupon) apply(p Params, now time.Time) error {
	code, err := NewCouponCode(p.Code)
	if err != nil {
		return err
	}
	if !p.Kind.Valid() {
		return ErrInvalidKind
	}

	percent := decimal.Zero
	amount := pricing.Zero()
	switch p.Kind {
	case pricing.CouponKindPercentage:
		if !p.PercentOff.IsPositive() || p.PercentOff.GreaterThan(hundred) {
			return ErrInvalidPercent
		}
		percent = p.PercentOff
	case pricing.CouponKindFixed:
		if !p.AmountOff.IsPositive() {
			return ErrInvalidAmount
		}
		amount = p.AmountOff
	}

	if p.MaxDiscount.Cents() < 0 || p.MinOrder.Cents() < 0 {
		return ErrNegativeAmount
	}
	if p.UsageLimit != nil && *p.UsageLimit < 1 {
		return ErrInvalidUsageLimit
	}
	if p.ValidFrom != nil && p.ValidTo != nil && !p.ValidTo.After(*p.ValidFrom) {
		return ErrInvalidValidity
	}
	emails, err := normalizeEmails(p.AllowedEmails)
	if err != nil {
		return err
	}

	c.code = code
	c.kind = p.Kind
	c.percentOff = percent
	c.amountOff = amount
	c.maxDiscount = p.MaxDiscount
	if p.Kind != pricing.CouponKindPercentage {
		c.maxDiscount = pricing.Zero()
	}
	c.minOrder = p.MinOrder
	c.usageLimit = p.UsageLimit
	c.allowedEmails = emails
	c.productIDs = dedupe(p.ProductIDs)
	c.categoryIDs = dedupe(p.CategoryIDs)
	c.validFrom = p.ValidFrom
	c.validTo = p.ValidTo
	c.active = p.Active
	c.updatedAt = now
	return nil
}

// Validate checks redeemability in a fixed order so shoppers always see the
// most fundamental problem first.
func (c *Coupon) Validate(now time.Time, email string, subtotal pricing.Money) error {
	if !c.active {
		return ErrCouponInactive
	}
	if c.validFrom != nil && now.Before(*c.validFrom) {
		return ErrCouponNotYetValid
	}
	if c.validTo != nil && now.After(*c.validTo) {
		return ErrCouponExpired
	}
	if c.LimitReached() {
		return ErrCouponLimitReached
	}
	if !c.AllowsEmail(email) {
		return ErrCouponNotAllowed
	}
	if subtotal.LessThan(c.minOrder) {
		return ErrMinOrderNotMet
	}
	return nil
}

// CheckApplicable rejects a restricted coupon that matched nothing in the quote.
func (c *Coupon) CheckApplicable(q pricing.Quote) error {
	if c.IsRestricted() && q.EligibleAmount.IsZero() {
		return ErrCouponNotApplicable
	}
	return nil
}

func (c *Coupon) LimitReached() bool {
	return c.usageLimit != nil && c.usedCount >= *c.usageLimit
}

func (c *Coupon) AllowsEmail(email string) bool {
	if len(c.allowedEmails) == 0 {
		return true
	}
	email = strings.TrimSpace(email)
	for _, e := range c.allowedEmails {
		if strings.EqualFold(strings.TrimSpace(e), email) {
			return true
		}
	}
	return false
}

func (c *Coupon) IsRestricted() bool {
	return len(c.productIDs) > 0 || len(c.categoryIDs) > 0
}

func (c *Coupon) Terms() pricing.CouponTerms {
	return pricing.CouponTerms{
		Code:        c.code.String(),
		Kind:        c.kind,
		PercentOff:  c.percentOff,
		AmountOff:   c.amountOff,
		MaxDiscount: c.maxDiscount,
		ProductIDs:  c.productIDs,
		CategoryIDs: c.categoryIDs,
	}
}

func (c *Coupon) ID() uuid.UUID               { return c.id }
func (c *Coupon) Code() Code                  { return c.code }
func (c *Coupon) Kind() pricing.CouponKind    { return c.kind }
func (c *Coupon) PercentOff() decimal.Decimal { return c.percentOff }
func (c *Coupon) AmountOff() pricing.Money    { return c.amountOff }
func (c *Coupon) MaxDiscount() pricing.Money  { return c.maxDiscount }
func (c *Coupon) MinOrder() pricing.Money     { return c.minOrder }
func (c *Coupon) UsageLimit() *int32          { return c.usageLimit }
func (c *Coupon) UsedCount() int32            { return c.usedCount }
func (c *Coupon) AllowedEmails() []string     { return c.allowedEmails }
func (c *Coupon) ProductIDs() []uuid.UUID     { return c.productIDs }
func (c *Coupon) CategoryIDs() []uuid.UUID    { return c.categoryIDs }
func (c *Coupon) ValidFrom() *time.Time       { return c.validFrom }
func (c *Coupon) ValidTo() *time.Time         { return c.validTo }
func (c *Coupon) Active() bool                { return c.active }
func (c *Coupon) CreatedAt() time.Time        { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time        { return c.updatedAt }

func dedupe(ids []uuid.UUID) []uuid.UUID {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
