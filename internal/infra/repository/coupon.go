package repository

import (
	"context"
	"time"

	"storefront/internal/domain/coupon"
	"storefront/internal/infra"
	"storefront/internal/infra/repository/converter"
	"storefront/internal/infra/sqlc"
	"storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type CouponQueries interface {
	CreateCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCouponParams) error
	UpdateCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCouponParams) (int64, error)
	DeleteCoupon(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	FindCouponByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Coupons, error)
	FindCouponByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Coupons, error)
	IncrementCouponUsage(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	DecrementCouponUsage(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	DeactivateExpiredRewardCoupons(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error)
}

type CouponRepository struct {
	queries CouponQueries
}

func NewCouponRepository(queries CouponQueries) *CouponRepository {
	return &CouponRepository{queries: queries}
}

func (r *CouponRepository) Create(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error {
	if err := r.queries.CreateCoupon(ctx, tx, converter.CouponToCreateParams(c)); err != nil {
		return infra.WrapRepoErr("failed to create coupon", err)
	}
	return nil
}

func (r *CouponRepository) Update(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error {
	rows, err := r.queries.UpdateCoupon(ctx, tx, converter.CouponToUpdateParams(c))
	return expectAffected(rows, err, "coupon")
}

func (r *CouponRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	rows, err := r.queries.DeleteCoupon(ctx, tx, id)
	return expectAffected(rows, err, "coupon")
}

func (r *CouponRepository) ReserveUsage(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	rows, err := r.queries.IncrementCouponUsage(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to reserve coupon usage", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("coupon usage limit reached", pgx.ErrNoRows, infra.KindConflict)
	}
	return nil
}

func (r *CouponRepository) ReleaseUsage(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if err := r.queries.DecrementCouponUsage(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to release coupon usage", err)
	}
	return nil
}

func (r *CouponRepository) DeactivateExpiredRewards(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error) {
	n, err := r.queries.DeactivateExpiredRewardCoupons(ctx, tx, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to deactivate expired reward coupons", err)
	}
	return n, nil
}

func (r *CouponRepository) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*coupon.Coupon, error) {
	row, err := r.queries.FindCouponByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon", err)
	}
	return converter.CouponFromRow(row), nil
}

func (r *CouponRepository) FindByCode(ctx context.Context, db sqlc.DBTX, code string) (*coupon.Coupon, error) {
	row, err := r.queries.FindCouponByCode(ctx, db, coupon.NormalizeCode(code))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}
	return converter.CouponFromRow(row), nil
}
