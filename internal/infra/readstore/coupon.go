package readstore

import (
	"context"

	"storefront/internal/infra"
	"storefront/internal/infra/sqlc"
	"storefront/internal/pkg/pgconv"
	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponReadQueries interface {
	FindCouponByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Coupons, error)
	ListCoupons(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCouponsParams) ([]sqlc.Coupons, error)
}

type CouponReadStore struct {
	queries CouponReadQueries
	db      sqlc.DBTX
}

func NewCouponReadStore(queries CouponReadQueries, db sqlc.DBTX) *CouponReadStore {
	return &CouponReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CouponReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CouponView, error) {
	row, err := r.queries.FindCouponByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon", err)
	}
	return toCouponView(row), nil
}

func (r *CouponReadStore) List(ctx context.Context, after *queries.Keyset, limit int32) ([]*queries.CouponView, error) {
	params := sqlc.ListCouponsParams{Limit: limit}
	params.AfterCreatedAt, params.AfterID = afterParams(after)

	rows, err := r.queries.ListCoupons(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	out := make([]*queries.CouponView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toCouponView(row))
	}
	return out, nil
}

func toCouponView(row sqlc.Coupons) *queries.CouponView {
	return &queries.CouponView{
		ID:               row.ID,
		Code:             row.Code,
		Kind:             row.Kind,
		PercentOff:       pgconv.DecimalPtrFromNumeric(row.PercentOff),
		AmountOffCents:   row.AmountOffCents,
		MaxDiscountCents: row.MaxDiscountCents,
		MinOrderCents:    row.MinOrderCents,
		UsageLimit:       pgconv.Int32PtrFromPgtype(row.UsageLimit),
		UsedCount:        row.UsedCount,
		AllowedEmails:    row.AllowedEmails,
		ProductIDs:       row.ProductIds,
		CategoryIDs:      row.CategoryIds,
		ValidFrom:        pgconv.TimePtrFromPgtype(row.ValidFrom),
		ValidTo:          pgconv.TimePtrFromPgtype(row.ValidTo),
		Active:           row.Active,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
