package bootstrap

import (
	"context"
	"time"

	"storefront/internal/handler/middleware"
	"storefront/internal/infra/scheduler"
	"storefront/internal/pkg/config"
	"storefront/internal/usecase/commands"

	"go.uber.org/fx"
)

const (
	jobTimeout           = 2 * time.Minute
	rateLimitCleanupSpec = "@every 5m"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(RegisterJobs),
)

func NewScheduler(lc fx.Lifecycle) *scheduler.Scheduler {
	s := scheduler.New(jobTimeout)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
	return s
}

type JobParams struct {
	fx.In

	Config      config.Config
	Scheduler   *scheduler.Scheduler
	Dispatcher  commands.NotificationDispatcher
	Orders      commands.OrderCommands
	Maintenance commands.MaintenanceCommands
	RateLimiter *middleware.RateLimiter
}

func RegisterJobs(p JobParams) error {
	if !p.Config.Jobs.Enabled {
		return nil
	}
	jobs := []struct {
		name string
		spec string
		run  scheduler.Job
	}{
		{"dispatch_notifications", p.Config.Jobs.DispatchSpec, func(ctx context.Context) (int64, error) {
			n, err := p.Dispatcher.Dispatch(ctx)
			if err != nil {
				return int64(n), err
			}
			done, err := p.Maintenance.CompleteBroadcasts(ctx)
			return int64(n) + done, err
		}},
		{"expire_pending_orders", p.Config.Jobs.ExpireOrdersSpec, func(ctx context.Context) (int64, error) {
			n, err := p.Orders.ExpireStale(ctx)
			return int64(n), err
		}},
		{"purge_idempotency_keys", p.Config.Jobs.PurgeKeysSpec, p.Maintenance.PurgeExpiredKeys},
		{"expire_reward_coupons", p.Config.Jobs.ExpireRewardSpec, p.Maintenance.ExpireRewardCoupons},
		{"rate_limit_cleanup", rateLimitCleanupSpec, func(_ context.Context) (int64, error) {
			return int64(p.RateLimiter.Cleanup(time.Now())), nil
		}},
	}
	for _, j := range jobs {
		if err := p.Scheduler.Register(j.name, j.spec, j.run); err != nil {
			return err
		}
	}
	return nil
}
