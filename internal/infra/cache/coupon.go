package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storefront/internal/domain/coupon"
	"storefront/internal/infra"
	"storefront/internal/infra/repository/converter"
	"storefront/internal/infra/sqlc"
	"storefront/internal/pkg/pgconv"

	"github.com/go-redis/redis/v8"
)

const couponKeyPrefix = "storefront:coupon:"

type CouponSource interface {
	FindCouponByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Coupons, error)
}

// CouponCache is a read-through cache of coupon rows keyed by code.
// Redis failures degrade to the database; a nil client disables caching.
type CouponCache struct {
	client *redis.Client
	source CouponSource
	db     sqlc.DBTX
	ttl    time.Duration
}

func NewCouponCache(client *redis.Client, source CouponSource, db sqlc.DBTX, ttl time.Duration) *CouponCache {
	return &CouponCache{client: client, source: source, db: db, ttl: ttl}
}

func couponKey(code string) string {
	return couponKeyPrefix + coupon.NormalizeCode(code)
}

func (c *CouponCache) FindByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	code = coupon.NormalizeCode(code)
	if row, ok := c.get(ctx, code); ok {
		return converter.CouponFromRow(row), nil
	}

	row, err := c.source.FindCouponByCode(ctx, c.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}
	c.set(ctx, code, row)
	return converter.CouponFromRow(row), nil
}

// Invalidate drops a cached code after an admin write or a redemption.
func (c *CouponCache) Invalidate(ctx context.Context, code string) {
	if c.client == nil || code == "" {
		return
	}
	if err := c.client.Del(ctx, couponKey(code)).Err(); err != nil {
		slog.Warn("failed to invalidate coupon cache", "code", code, "error", err)
	}
}

func (c *CouponCache) get(ctx context.Context, code string) (sqlc.Coupons, bool) {
	if c.client == nil {
		return sqlc.Coupons{}, false
	}
	data, err := c.client.Get(ctx, couponKey(code)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("coupon cache read failed", "code", code, "error", err)
		}
		return sqlc.Coupons{}, false
	}
	var row sqlc.Coupons
	if err := json.Unmarshal(data, &row); err != nil {
		slog.Warn("coupon cache entry unreadable", "code", code, "error", err)
		return sqlc.Coupons{}, false
	}
	return row, true
}

func (c *CouponCache) set(ctx context.Context, code string, row sqlc.Coupons) {
	if c.client == nil {
		return
	}
	data, err := json.Marshal(row)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, couponKey(code), data, c.ttl).Err(); err != nil {
		slog.Warn("coupon cache write failed", "code", code, "error", err)
	}
}
