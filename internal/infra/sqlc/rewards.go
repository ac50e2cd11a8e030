package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createReward = `-- name: CreateReward :exec
INSERT INTO rewards (id, user_id, label, coupon_id, coupon_code, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

type CreateRewardParams struct {
	ID         uuid.UUID          `json:"id"`
	UserID     uuid.UUID          `json:"user_id"`
	Label      string             `json:"label"`
	CouponID   pgtype.UUID        `json:"coupon_id"`
	CouponCode pgtype.Text        `json:"coupon_code"`
	ExpiresAt  pgtype.Timestamptz `json:"expires_at"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateReward(ctx context.Context, db DBTX, arg CreateRewardParams) error {
	_, err := db.Exec(ctx, createReward,
		arg.ID,
		arg.UserID,
		arg.Label,
		arg.CouponID,
		arg.CouponCode,
		arg.ExpiresAt,
		arg.CreatedAt,
	)
	return err
}

const findLatestRewardByUser = `-- name: FindLatestRewardByUser :one
SELECT id, user_id, label, coupon_id, coupon_code, expires_at, created_at
FROM rewards
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT 1
`

func (q *Queries) FindLatestRewardByUser(ctx context.Context, db DBTX, userID uuid.UUID) (Rewards, error) {
	row := db.QueryRow(ctx, findLatestRewardByUser, userID)
	var i Rewards
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Label,
		&i.CouponID,
		&i.CouponCode,
		&i.ExpiresAt,
		&i.CreatedAt,
	)
	return i, err
}

const listRewardsByUser = `-- name: ListRewardsByUser :many
SELECT r.id, r.user_id, r.label, r.coupon_id, r.coupon_code, r.expires_at, r.created_at,
       COALESCE(c.used_count > 0, false)::boolean AS redeemed
FROM rewards r
LEFT JOIN coupons c ON c.id = r.coupon_id
WHERE r.user_id = $1
ORDER BY r.created_at DESC
LIMIT $2
`

type ListRewardsByUserParams struct {
	UserID uuid.UUID `json:"user_id"`
	Limit  int32     `json:"limit"`
}

type ListRewardsByUserRow struct {
	ID         uuid.UUID          `json:"id"`
	UserID     uuid.UUID          `json:"user_id"`
	Label      string             `json:"label"`
	CouponID   pgtype.UUID        `json:"coupon_id"`
	CouponCode pgtype.Text        `json:"coupon_code"`
	ExpiresAt  pgtype.Timestamptz `json:"expires_at"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
	Redeemed   bool               `json:"redeemed"`
}

func (q *Queries) ListRewardsByUser(ctx context.Context, db DBTX, arg ListRewardsByUserParams) ([]ListRewardsByUserRow, error) {
	rows, err := db.Query(ctx, listRewardsByUser, arg.UserID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListRewardsByUserRow
	for rows.Next() {
		var i ListRewardsByUserRow
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.Label,
			&i.CouponID,
			&i.CouponCode,
			&i.ExpiresAt,
			&i.CreatedAt,
			&i.Redeemed,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
