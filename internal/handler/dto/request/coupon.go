package request

import (
	"time"

	"storefront/internal/domain/coupon"
	"storefront/internal/domain/pricing"
	"storefront/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CouponRequest struct {
	Code             string          `json:"code" binding:"required,min=3,max=20"`
	Kind             string          `json:"kind" binding:"required,oneof=percentage fixed free_shipping"`
	PercentOff       decimal.Decimal `json:"percent_off"`
	AmountOffCents   int64           `json:"amount_off_cents" binding:"min=0"`
	MaxDiscountCents int64           `json:"max_discount_cents" binding:"min=0"`
	MinOrderCents    int64           `json:"min_order_cents" binding:"min=0"`
	UsageLimit       *int32          `json:"usage_limit,omitempty"`
	AllowedEmails    []string        `json:"allowed_emails,omitempty"`
	ProductIDs       []uuid.UUID     `json:"product_ids,omitempty"`
	CategoryIDs      []uuid.UUID     `json:"category_ids,omitempty"`
	ValidFrom        *time.Time      `json:"valid_from,omitempty"`
	ValidTo          *time.Time      `json:"valid_to,omitempty"`
	Active           *bool           `json:"active,omitempty"`
}

func (r CouponRequest) ToParams() coupon.Params {
	return coupon.Params{
		Code:          r.Code,
		Kind:          pricing.CouponKind(r.Kind),
		PercentOff:    r.PercentOff,
		AmountOff:     pricing.NewMoney(r.AmountOffCents),
		MaxDiscount:   pricing.NewMoney(r.MaxDiscountCents),
		MinOrder:      pricing.NewMoney(r.MinOrderCents),
		UsageLimit:    r.UsageLimit,
		AllowedEmails: r.AllowedEmails,
		ProductIDs:    r.ProductIDs,
		CategoryIDs:   r.CategoryIDs,
		ValidFrom:     r.ValidFrom,
		ValidTo:       r.ValidTo,
		Active:        patch.Coalesce(r.Active, true),
	}
}

type ListQuery struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
}
