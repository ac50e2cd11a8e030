package pricing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BundleMode string

const (
	BundleModeFlat       BundleMode = "flat"
	BundleModePercentage BundleMode = "percentage"
	BundleModeFixed      BundleMode = "fixed"
)

func (m BundleMode) Valid() bool {
	switch m {
	case BundleModeFlat, BundleModePercentage, BundleModeFixed:
		return true
	}
	return false
}

type CouponKind string

const (
	CouponKindPercentage   CouponKind = "percentage"
	CouponKindFixed        CouponKind = "fixed"
	CouponKindFreeShipping CouponKind = "free_shipping"
)

func (k CouponKind) Valid() bool {
	switch k {
	case CouponKindPercentage, CouponKindFixed, CouponKindFreeShipping:
		return true
	}
	return false
}

// Line is one cart or order row. BundleID marks membership in a bundle group.
type Line struct {
	ProductID  uuid.UUID
	CategoryID *uuid.UUID
	Name       string
	UnitPrice  Money
	Quantity   int
	BundleID   *uuid.UUID
}

func (l Line) Total() Money {
	return l.UnitPrice.Times(l.Quantity)
}

func (l Line) IsBundled() bool {
	return l.BundleID != nil
}

type BundleRule struct {
	ID         uuid.UUID
	Name       string
	Mode       BundleMode
	PercentOff decimal.Decimal
	AmountOff  Money
}

type ShippingPolicy struct {
	FlatFee       Money
	FreeThreshold Money
}

// CouponTerms is the pricing-relevant projection of a coupon.
type CouponTerms struct {
	Code        string
	Kind        CouponKind
	PercentOff  decimal.Decimal
	AmountOff   Money
	MaxDiscount Money // zero means uncapped
	ProductIDs  []uuid.UUID
	CategoryIDs []uuid.UUID
}

func (t CouponTerms) IsRestricted() bool {
	return len(t.ProductIDs) > 0 || len(t.CategoryIDs) > 0
}

func (t CouponTerms) matches(l Line) bool {
	for _, id := range t.ProductIDs {
		if id == l.ProductID {
			return true
		}
	}
	if l.CategoryID == nil {
		return false
	}
	for _, id := range t.CategoryIDs {
		if id == *l.CategoryID {
			return true
		}
	}
	return false
}

type FreeShippingReason string

const (
	FreeShippingNone      FreeShippingReason = ""
	FreeShippingThreshold FreeShippingReason = "threshold"
	FreeShippingCoupon    FreeShippingReason = "coupon"
)

type QuotedLine struct {
	Line
	LineTotal Money
}

type BundleTotal struct {
	BundleID  uuid.UUID
	Name      string
	Mode      BundleMode
	BaseTotal Money
	Total     Money
}

type Quote struct {
	Lines              []QuotedLine
	Bundles            []BundleTotal
	Subtotal           Money
	Shipping           Money
	EligibleAmount     Money
	Discount           Money
	Total              Money
	FreeShipping       bool
	FreeShippingReason FreeShippingReason
	CouponCode         string
	// AmountToFreeShipping is how much more the shopper must add; zero once qualified.
	AmountToFreeShipping Money
}

func (q Quote) IsEmpty() bool {
	return len(q.Lines) == 0
}
