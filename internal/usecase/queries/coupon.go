package queries

import (
	"context"
	"time"

	"storefront/internal/domain/coupon"
	"storefront/internal/infra"

	"github.com/google/uuid"
)

//go:generate mockgen -source=coupon.go -destination=../../../tests/mock/queries/coupon.go -package=queriesmock

type CouponReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CouponView, error)
	List(ctx context.Context, after *Keyset, limit int32) ([]*CouponView, error)
}

type CouponQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*CouponView, error)
	List(ctx context.Context, cursor *Cursor, limit int) ([]*CouponView, *Cursor, error)
}

type couponQueriesImpl struct {
	readStore CouponReadStore
}

func NewCouponQueries(readStore CouponReadStore) CouponQueries {
	return &couponQueriesImpl{readStore: readStore}
}

func (q *couponQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*CouponView, error) {
	c, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, coupon.ErrCouponNotFound
		}
		return nil, err
	}
	return c, nil
}

func (q *couponQueriesImpl) List(ctx context.Context, cursor *Cursor, limit int) ([]*CouponView, *Cursor, error) {
	fetch := func(after *Keyset, n int32) ([]*CouponView, error) {
		return q.readStore.List(ctx, after, n)
	}
	return page(limit, cursor, fetch, func(c *CouponView) (time.Time, uuid.UUID) { return c.CreatedAt, c.ID })
}
