package repository

import (
	"context"
	"time"

	"storefront/internal/domain/reward"
	"storefront/internal/infra"
	"storefront/internal/infra/repository/converter"
	"storefront/internal/infra/sqlc"
	"storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RewardQueries interface {
	CreateReward(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRewardParams) error
	FindLatestRewardByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.Rewards, error)
}

type RewardRepository struct {
	queries RewardQueries
}

func NewRewardRepository(queries RewardQueries) *RewardRepository {
	return &RewardRepository{queries: queries}
}

func (r *RewardRepository) Create(ctx context.Context, tx sqlc.DBTX, rw *reward.Reward) error {
	if err := r.queries.CreateReward(ctx, tx, converter.RewardToCreateParams(rw)); err != nil {
		return infra.WrapRepoErr("failed to create reward", err)
	}
	return nil
}

// LatestSpinAt is nil for users who never spun.
func (r *RewardRepository) LatestSpinAt(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (*time.Time, error) {
	row, err := r.queries.FindLatestRewardByUser(ctx, db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find latest reward", err)
	}
	t := pgconv.TimeFromPgtype(row.CreatedAt)
	return &t, nil
}
