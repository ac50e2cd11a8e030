package converter

import (
	"storefront/internal/domain/reward"
	"storefront/internal/infra/sqlc"
	"storefront/internal/pkg/pgconv"
)

func RewardToCreateParams(r *reward.Reward) sqlc.CreateRewardParams {
	return sqlc.CreateRewardParams{
		ID:         r.ID(),
		UserID:     r.UserID(),
		Label:      r.Label(),
		CouponID:   pgconv.UUIDPtrToPgtype(r.CouponID()),
		CouponCode: pgconv.StringPtrToPgtype(r.CouponCode()),
		ExpiresAt:  pgconv.TimePtrToPgtype(r.ExpiresAt()),
		CreatedAt:  pgconv.TimeToPgtype(r.CreatedAt()),
	}
}
