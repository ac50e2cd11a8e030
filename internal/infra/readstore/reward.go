package readstore

import (
	"context"

	"storefront/internal/infra"
	"storefront/internal/infra/sqlc"
	"storefront/internal/pkg/pgconv"
	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type RewardReadQueries interface {
	ListRewardsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRewardsByUserParams) ([]sqlc.ListRewardsByUserRow, error)
}

type RewardReadStore struct {
	queries RewardReadQueries
	db      sqlc.DBTX
}

func NewRewardReadStore(queries RewardReadQueries, db sqlc.DBTX) *RewardReadStore {
	return &RewardReadStore{queries: queries, db: db}
}

func (r *RewardReadStore) ListByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.RewardView, error) {
	rows, err := r.queries.ListRewardsByUser(ctx, r.db, sqlc.ListRewardsByUserParams{UserID: userID, Limit: limit})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rewards", err)
	}
	out := make([]*queries.RewardView, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.RewardView{
			ID:         row.ID,
			Label:      row.Label,
			CouponCode: pgconv.StringPtrFromPgtype(row.CouponCode),
			ExpiresAt:  pgconv.TimePtrFromPgtype(row.ExpiresAt),
			Redeemed:   row.Redeemed,
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return out, nil
}
