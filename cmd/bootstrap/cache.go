package bootstrap

import (
	"context"
	"log/slog"

	"storefront/internal/infra/cache"
	"storefront/internal/infra/sqlc"
	"storefront/internal/pkg/config"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			NewCouponCache,
			fx.As(new(queries.CouponLookup)),
			fx.As(new(commands.CouponCacheInvalidator)),
		),
	),
)

// NewRedisClient returns nil when redis is disabled; the coupon cache then reads straight from postgres.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	if !cfg.Redis.Enabled {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				slog.Warn("redis unreachable, coupon lookups fall back to the database", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client
}

func NewCouponCache(client *redis.Client, q *sqlc.Queries, pool *pgxpool.Pool, cfg config.Config) *cache.CouponCache {
	return cache.NewCouponCache(client, q, pool, cfg.Redis.CouponTTL)
}
