package commands

import (
	"context"
	"log/slog"

	"storefront/internal/pkg/clock"
	"storefront/internal/usecase/shared"
)

//go:generate mockgen -source=maintenance.go -destination=../../../tests/mock/commands/maintenance.go -package=commandsmock

// MaintenanceCommands are the housekeeping sweeps run by the scheduler.
type MaintenanceCommands interface {
	PurgeExpiredKeys(ctx context.Context) (int64, error)
	ExpireRewardCoupons(ctx context.Context) (int64, error)
	// CompleteBroadcasts marks queued broadcasts whose jobs have all left the outbox.
	CompleteBroadcasts(ctx context.Context) (int64, error)
}

type maintenanceCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewMaintenanceCommands(uow shared.UnitOfWork, clk clock.Clock) MaintenanceCommands {
	return &maintenanceCommandsImpl{uow: uow, clock: clk}
}

func (m *maintenanceCommandsImpl) PurgeExpiredKeys(ctx context.Context) (int64, error) {
	return m.sweep(ctx, "idempotency keys purged", func(ctx context.Context, tx shared.Tx) (int64, error) {
		return tx.Idempotency().DeleteExpired(ctx, tx.DB(), m.clock.Now())
	})
}

func (m *maintenanceCommandsImpl) ExpireRewardCoupons(ctx context.Context) (int64, error) {
	return m.sweep(ctx, "reward coupons deactivated", func(ctx context.Context, tx shared.Tx) (int64, error) {
		return tx.Coupons().DeactivateExpiredRewards(ctx, tx.DB(), m.clock.Now())
	})
}

func (m *maintenanceCommandsImpl) CompleteBroadcasts(ctx context.Context) (int64, error) {
	return m.sweep(ctx, "broadcasts completed", func(ctx context.Context, tx shared.Tx) (int64, error) {
		return tx.Content().MarkBroadcastsSent(ctx, tx.DB(), m.clock.Now())
	})
}

func (m *maintenanceCommandsImpl) sweep(ctx context.Context, what string, fn func(ctx context.Context, tx shared.Tx) (int64, error)) (int64, error) {
	var n int64
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		n, err = fn(ctx, tx)
		return repoErr(err, nil)
	})
	if err != nil {
		return 0, err
	}
	if n > 0 {
		slog.Info("Maintenance sweep", "what", what, "rows", n)
	}
	return n, nil
}
