package queries

import (
	"context"
	"time"

	"storefront/internal/domain/reward"
	"storefront/internal/pkg/clock"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

const maxRewardHistory = 50

//go:generate mockgen -source=reward.go -destination=../../../tests/mock/queries/reward.go -package=queriesmock

type RewardReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]*RewardView, error)
}

type WheelSegmentView struct {
	Index int    `json:"index"`
	Label string `json:"label"`
	Prize bool   `json:"prize"`
}

type WheelView struct {
	Segments   []WheelSegmentView `json:"segments"`
	CanSpin    bool               `json:"can_spin"`
	NextSpinAt *time.Time         `json:"next_spin_at,omitempty"`
}

type RewardQueries interface {
	ListMine(ctx context.Context, userID uuid.UUID) ([]*RewardView, error)
	Wheel(ctx context.Context, userID uuid.UUID) (*WheelView, error)
}

type rewardQueriesImpl struct {
	readStore RewardReadStore
	uow       shared.UnitOfWork
	wheel     *reward.Wheel
	clock     clock.Clock
}

func NewRewardQueries(readStore RewardReadStore, uow shared.UnitOfWork, wheel *reward.Wheel, clk clock.Clock) RewardQueries {
	return &rewardQueriesImpl{readStore: readStore, uow: uow, wheel: wheel, clock: clk}
}

func (q *rewardQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID) ([]*RewardView, error) {
	rewards, err := q.readStore.ListByUser(ctx, userID, maxRewardHistory)
	if err != nil {
		return nil, err
	}
	now := q.clock.Now()
	for _, r := range rewards {
		r.Expired = r.ExpiresAt != nil && !r.Redeemed && now.After(*r.ExpiresAt)
	}
	return rewards, nil
}

func (q *rewardQueriesImpl) Wheel(ctx context.Context, userID uuid.UUID) (*WheelView, error) {
	last, err := q.uow.CommandReads().LatestSpinAt(ctx, userID)
	if err != nil {
		return nil, err
	}
	next := q.wheel.NextSpinAt(last, q.clock.Now())

	segments := make([]WheelSegmentView, 0, len(q.wheel.Segments()))
	for i, s := range q.wheel.Segments() {
		segments = append(segments, WheelSegmentView{Index: i, Label: s.Label, Prize: s.IsPrize()})
	}
	view := &WheelView{Segments: segments, CanSpin: next.IsZero()}
	if !view.CanSpin {
		view.NextSpinAt = &next
	}
	return view, nil
}
