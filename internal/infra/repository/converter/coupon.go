package converter

import (
	"storefront/internal/domain/coupon"
	"storefront/internal/domain/pricing"
	"storefront/internal/infra/sqlc"
	"storefront/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

func CouponToCreateParams(c *coupon.Coupon) sqlc.CreateCouponParams {
	return sqlc.CreateCouponParams{
		ID:               c.ID(),
		Code:             c.Code().String(),
		Kind:             string(c.Kind()),
		PercentOff:       percentToNumeric(c),
		AmountOffCents:   c.AmountOff().Cents(),
		MaxDiscountCents: c.MaxDiscount().Cents(),
		MinOrderCents:    c.MinOrder().Cents(),
		UsageLimit:       pgconv.Int32PtrToPgtype(c.UsageLimit()),
		AllowedEmails:    emptyIfNil(c.AllowedEmails()),
		ProductIds:       emptyIfNil(c.ProductIDs()),
		CategoryIds:      emptyIfNil(c.CategoryIDs()),
		ValidFrom:        pgconv.TimePtrToPgtype(c.ValidFrom()),
		ValidTo:          pgconv.TimePtrToPgtype(c.ValidTo()),
		Active:           c.Active(),
		CreatedAt:        pgconv.TimeToPgtype(c.CreatedAt()),
	}
}

func CouponToUpdateParams(c *coupon.Coupon) sqlc.UpdateCouponParams {
	return sqlc.UpdateCouponParams{
		ID:               c.ID(),
		Code:             c.Code().String(),
		Kind:             string(c.Kind()),
		PercentOff:       percentToNumeric(c),
		AmountOffCents:   c.AmountOff().Cents(),
		MaxDiscountCents: c.MaxDiscount().Cents(),
		MinOrderCents:    c.MinOrder().Cents(),
		UsageLimit:       pgconv.Int32PtrToPgtype(c.UsageLimit()),
		AllowedEmails:    emptyIfNil(c.AllowedEmails()),
		ProductIds:       emptyIfNil(c.ProductIDs()),
		CategoryIds:      emptyIfNil(c.CategoryIDs()),
		ValidFrom:        pgconv.TimePtrToPgtype(c.ValidFrom()),
		ValidTo:          pgconv.TimePtrToPgtype(c.ValidTo()),
		Active:           c.Active(),
		UpdatedAt:        pgconv.TimeToPgtype(c.UpdatedAt()),
	}
}

func CouponFromRow(row sqlc.Coupons) *coupon.Coupon {
	percent := decimal.Zero
	if d := pgconv.DecimalPtrFromNumeric(row.PercentOff); d != nil {
		percent = *d
	}
	return coupon.ReconstructCoupon(row.ID, coupon.Params{
		Code:          row.Code,
		Kind:          pricing.CouponKind(row.Kind),
		PercentOff:    percent,
		AmountOff:     pricing.NewMoney(row.AmountOffCents),
		MaxDiscount:   pricing.NewMoney(row.MaxDiscountCents),
		MinOrder:      pricing.NewMoney(row.MinOrderCents),
		UsageLimit:    pgconv.Int32PtrFromPgtype(row.UsageLimit),
		AllowedEmails: row.AllowedEmails,
		ProductIDs:    row.ProductIds,
		CategoryIDs:   row.CategoryIds,
		ValidFrom:     pgconv.TimePtrFromPgtype(row.ValidFrom),
		ValidTo:       pgconv.TimePtrFromPgtype(row.ValidTo),
		Active:        row.Active,
	}, row.UsedCount, pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt))
}

func percentToNumeric(c *coupon.Coupon) pgtype.Numeric {
	if c.Kind() != pricing.CouponKindPercentage {
		return pgtype.Numeric{}
	}
	p := c.PercentOff()
	return pgconv.DecimalPtrToNumeric(&p)
}

// emptyIfNil keeps NOT NULL array columns from receiving NULL for a nil slice.
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
