package commands

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/reward"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/metrics"
	"storefront/internal/usecase/shared"
)

//go:generate mockgen -source=reward.go -destination=../../../tests/mock/commands/reward.go -package=commandsmock

type SpinResult struct {
	SegmentIndex int        `json:"segment_index"`
	Label        string     `json:"label"`
	Prize        bool       `json:"prize"`
	CouponCode   *string    `json:"coupon_code,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	NextSpinAt   time.Time  `json:"next_spin_at"`
}

type RewardCommands interface {
	Spin(ctx context.Context, actor shared.Actor) (*SpinResult, error)
}

type rewardCommandsImpl struct {
	uow   shared.UnitOfWork
	wheel *reward.Wheel
	clock clock.Clock
}

func NewRewardCommands(uow shared.UnitOfWork, wheel *reward.Wheel, clk clock.Clock) RewardCommands {
	return &rewardCommandsImpl{uow: uow, wheel: wheel, clock: clk}
}

// Spin holds the user row lock so concurrent spins cannot both pass the cooldown.
func (r *rewardCommandsImpl) Spin(ctx context.Context, actor shared.Actor) (*SpinResult, error) {
	now := r.clock.Now()
	var out *reward.Outcome
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Lock(ctx, tx.DB(), actor.ID); err != nil {
			return repoErr(err, ErrUserNotFound)
		}
		last, err := tx.Reads().LatestSpinAt(ctx, actor.ID)
		if err != nil {
			return repoErr(err, nil)
		}
		out, err = r.wheel.Spin(actor.ID, actor.Email, last, now)
		if err != nil {
			return err
		}
		if out.Coupon != nil {
			err := tx.Coupons().Create(ctx, tx.DB(), out.Coupon)
			if infra.IsKind(err, infra.KindDuplicateKey) {
				// generated code collided with an existing coupon
				return ErrCouponCodeTaken
			}
			if err != nil {
				return repoErr(err, nil)
			}
		}
		return repoErr(tx.Rewards().Create(ctx, tx.DB(), out.Reward), nil)
	})
	if err != nil {
		return nil, err
	}

	metrics.RewardSpun(out.Segment.IsPrize())
	slog.Info("Wheel spun", "user_id", actor.ID, "segment", out.Segment.Label, "prize", out.Segment.IsPrize())

	return &SpinResult{
		SegmentIndex: out.SegmentIndex,
		Label:        out.Segment.Label,
		Prize:        out.Segment.IsPrize(),
		CouponCode:   out.Reward.CouponCode(),
		ExpiresAt:    out.Reward.ExpiresAt(),
		NextSpinAt:   now.Add(r.wheel.Cooldown()),
	}, nil
}
