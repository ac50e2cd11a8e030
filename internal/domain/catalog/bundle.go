package catalog

import (
	"time"

	"storefront/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type BundleParams struct {
	Name       string
	Slug       string
	Mode       pricing.BundleMode
	PercentOff *decimal.Decimal
	AmountOff  *pricing.Money
	ProductIDs []uuid.UUID
	Active     bool
}

type Bundle struct {
	id         uuid.UUID
	name       Name
	slug       Slug
	mode       pricing.BundleMode
	percentOff *decimal.Decimal
	amountOff  *pricing.Money
	productIDs []uuid.UUID
	active     bool
	createdAt  time.Time
	updatedAt  time.Time
}

func NewBundle(id uuid.UUID, p BundleParams, now time.Time) (*Bundle, error) {
	if id == uuid.Nil {
		id = uuid.New()
	}
	b := &Bundle{id: id, createdAt: now}
	if err := b.apply(p, now); err != nil {
		return nil, err
	}
	return b, nil
}

func ReconstructBundle(id uuid.UUID, p BundleParams, createdAt, updatedAt time.Time) *Bundle {
	return &Bundle{
		id:         id,
		name:       Name(p.Name),
		slug:       Slug(p.Slug),
		mode:       p.Mode,
		percentOff: p.PercentOff,
		amountOff:  p.AmountOff,
		productIDs: p.ProductIDs,
		active:     p.Active,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (b *Bundle) Update(p BundleParams, now time.Time) error {
	next := *b
	if err := next.apply(p, now); err != nil {
		return err
	}
	*b = next
	return nil
}

func (b *Bundle) apply(p BundleParams, now time.Time) error {
	name, err := NewName(p.Name)
	if err != nil {
		return err
	}
	slug, err := slugOrDerive(p.Slug, name)
	if err != nil {
		return err
	}
	if !p.Mode.Valid() {
		return ErrInvalidBundleMode
	}

	var percent *decimal.Decimal
	var amount *pricing.Money
	switch p.Mode {
	case pricing.BundleModePercentage:
		if p.PercentOff == nil || !p.PercentOff.IsPositive() || p.PercentOff.GreaterThan(hundred) {
			return ErrInvalidPercent
		}
		percent = p.PercentOff
	case pricing.BundleModeFixed:
		if p.AmountOff == nil || p.AmountOff.Cents() < 0 {
			return ErrInvalidAmount
		}
		amount = p.AmountOff
	}

	products := uniqueIDs(p.ProductIDs)
	if len(products) < 2 {
		return ErrBundleTooSmall
	}

	b.name = name
	b.slug = slug
	b.mode = p.Mode
	b.percentOff = percent
	b.amountOff = amount
	b.productIDs = products
	b.active = p.Active
	b.updatedAt = now
	return nil
}

// Rule is what the pricing calculator needs to total a bundle group.
func (b *Bundle) Rule() pricing.BundleRule {
	rule := pricing.BundleRule{ID: b.id, Name: b.name.String(), Mode: b.mode}
	if b.percentOff != nil {
		rule.PercentOff = *b.percentOff
	}
	if b.amountOff != nil {
		rule.AmountOff = *b.amountOff
	}
	return rule
}

func (b *Bundle) Contains(productID uuid.UUID) bool {
	for _, id := range b.productIDs {
		if id == productID {
			return true
		}
	}
	return false
}

func (b *Bundle) ID() uuid.UUID                { return b.id }
func (b *Bundle) Name() Name                   { return b.name }
func (b *Bundle) Slug() Slug                   { return b.slug }
func (b *Bundle) Mode() pricing.BundleMode     { return b.mode }
func (b *Bundle) PercentOff() *decimal.Decimal { return b.percentOff }
func (b *Bundle) AmountOff() *pricing.Money    { return b.amountOff }
func (b *Bundle) ProductIDs() []uuid.UUID      { return b.productIDs }
func (b *Bundle) Active() bool                 { return b.active }
func (b *Bundle) CreatedAt() time.Time         { return b.createdAt }
func (b *Bundle) UpdatedAt() time.Time         { return b.updatedAt }

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
