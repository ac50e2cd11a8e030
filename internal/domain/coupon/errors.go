package coupon

import "storefront/internal/pkg/errs"

// Message codes shown to shoppers. Clients translate them into toasts.
const (
	MsgCouponNotFound      = "coupon_not_found"
	MsgCouponExpired       = "coupon_expired"
	MsgUsageLimitReached   = "usage_limit_reached"
	MsgMinOrderNotMet      = "min_order_value_not_met"
	MsgCouponNotAllowed    = "coupon_not_allowed"
	MsgCouponNotApplicable = "coupon_not_applicable"
	MsgCouponInactive      = "coupon_inactive"
	MsgCouponNotYetValid   = "coupon_not_yet_valid"
	MsgCouponApplied       = "coupon_applied"
)

var (
	ErrCouponNotFound      = coded(errs.ErrNotFound, "coupon not found", MsgCouponNotFound)
	ErrCouponInactive      = coded(errs.ErrValidation, "coupon is inactive", MsgCouponInactive)
	ErrCouponNotYetValid   = coded(errs.ErrValidation, "coupon is not yet valid", MsgCouponNotYetValid)
	ErrCouponExpired       = coded(errs.ErrValidation, "coupon has expired", MsgCouponExpired)
	ErrCouponLimitReached  = coded(errs.ErrValidation, "coupon usage limit reached", MsgUsageLimitReached)
	ErrCouponNotAllowed    = coded(errs.ErrValidation, "coupon is not available for this account", MsgCouponNotAllowed)
	ErrMinOrderNotMet      = coded(errs.ErrValidation, "order subtotal below coupon minimum", MsgMinOrderNotMet)
	ErrCouponNotApplicable = coded(errs.ErrValidation, "coupon does not apply to any item in the cart", MsgCouponNotApplicable)
)

var (
	ErrInvalidCouponCode   = errs.NewCategorized("invalid coupon code format", errs.ErrValidation)
	ErrInvalidKind         = errs.NewCategorized("invalid coupon kind", errs.ErrValidation)
	ErrInvalidPercent      = errs.NewCategorized("percentage discount must be greater than 0 and at most 100", errs.ErrValidation)
	ErrInvalidAmount       = errs.NewCategorized("discount amount must be positive", errs.ErrValidation)
	ErrNegativeAmount      = errs.NewCategorized("coupon amounts cannot be negative", errs.ErrValidation)
	ErrInvalidUsageLimit   = errs.NewCategorized("usage limit must be at least 1", errs.ErrValidation)
	ErrInvalidValidity     = errs.NewCategorized("valid_to must be after valid_from", errs.ErrValidation)
	ErrInvalidAllowedEmail = errs.NewCategorized("invalid allowed email", errs.ErrValidation)
)

func coded(category error, msg, code string) error {
	return errs.Categorize(errs.WithHint(errs.New(msg), code), category)
}

// MessageCode returns the shopper-facing code carried by err, or "".
func MessageCode(err error) string {
	return errs.Hint(err)
}
