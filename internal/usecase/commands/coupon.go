package commands

import (
	"context"
	"log/slog"

	"storefront/internal/domain/coupon"
	reqdto "storefront/internal/handler/dto/request"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=coupon.go -destination=../../../tests/mock/commands/coupon.go -package=commandsmock

type CouponCommands interface {
	Create(ctx context.Context, req reqdto.CouponRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.CouponRequest) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type couponCommandsImpl struct {
	uow   shared.UnitOfWork
	cache CouponCacheInvalidator
	clock clock.Clock
}

func NewCouponCommands(uow shared.UnitOfWork, cache CouponCacheInvalidator, clk clock.Clock) CouponCommands {
	return &couponCommandsImpl{uow: uow, cache: cache, clock: clk}
}

func (c *couponCommandsImpl) Create(ctx context.Context, req reqdto.CouponRequest) (uuid.UUID, error) {
	cp, err := coupon.NewCoupon(uuid.Nil, req.ToParams(), c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return codeErr(tx.Coupons().Create(ctx, tx.DB(), cp), nil)
	})
	if err != nil {
		return uuid.Nil, err
	}
	// a previous miss may be cached
	c.cache.Invalidate(ctx, cp.Code().String())
	slog.Info("Coupon created", "coupon_id", cp.ID(), "code", cp.Code())
	return cp.ID(), nil
}

func (c *couponCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.CouponRequest) error {
	var codes []string
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cp, err := tx.Reads().CouponByID(ctx, id)
		if err != nil {
			return repoErr(err, coupon.ErrCouponNotFound)
		}
		codes = append(codes[:0], cp.Code().String())
		if err := cp.Update(req.ToParams(), c.clock.Now()); err != nil {
			return err
		}
		codes = append(codes, cp.Code().String())
		return codeErr(tx.Coupons().Update(ctx, tx.DB(), cp), coupon.ErrCouponNotFound)
	})
	if err != nil {
		return err
	}
	for _, code := range codes {
		c.cache.Invalidate(ctx, code)
	}
	return nil
}

func (c *couponCommandsImpl) Deactivate(ctx context.Context, id uuid.UUID) error {
	var code string
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cp, err := tx.Reads().CouponByID(ctx, id)
		if err != nil {
			return repoErr(err, coupon.ErrCouponNotFound)
		}
		cp.Deactivate(c.clock.Now())
		code = cp.Code().String()
		return repoErr(tx.Coupons().Update(ctx, tx.DB(), cp), coupon.ErrCouponNotFound)
	})
	if err != nil {
		return err
	}
	c.cache.Invalidate(ctx, code)
	return nil
}

// Delete removes coupons no order references; used ones must be deactivated.
func (c *couponCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	var code string
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cp, err := tx.Reads().CouponByID(ctx, id)
		if err != nil {
			return repoErr(err, coupon.ErrCouponNotFound)
		}
		code = cp.Code().String()
		return repoErr(tx.Coupons().Delete(ctx, tx.DB(), id), coupon.ErrCouponNotFound)
	})
	if err != nil {
		return err
	}
	c.cache.Invalidate(ctx, code)
	return nil
}

func codeErr(err error, notFound error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return ErrCouponCodeTaken
	}
	return repoErr(err, notFound)
}
