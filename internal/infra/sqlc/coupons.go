package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const couponColumns = `id, code, kind, percent_off, amount_off_cents, max_discount_cents, min_order_cents, usage_limit, used_count, allowed_emails, product_ids, category_ids, valid_from, valid_to, active, created_at, updated_at`

const createCoupon = `-- name: CreateCoupon :exec
INSERT INTO coupons (id, code, kind, percent_off, amount_off_cents, max_discount_cents, min_order_cents,
                     usage_limit, used_count, allowed_emails, product_ids, category_ids, valid_from, valid_to,
                     active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, $9, $10, $11, $12, $13, $14, $15, $15)
`

type CreateCouponParams struct {
	ID               uuid.UUID          `json:"id"`
	Code             string             `json:"code"`
	Kind             string             `json:"kind"`
	PercentOff       pgtype.Numeric     `json:"percent_off"`
	AmountOffCents   int64              `json:"amount_off_cents"`
	MaxDiscountCents int64              `json:"max_discount_cents"`
	MinOrderCents    int64              `json:"min_order_cents"`
	UsageLimit       pgtype.Int4        `json:"usage_limit"`
	AllowedEmails    []string           `json:"allowed_emails"`
	ProductIds       []uuid.UUID        `json:"product_ids"`
	CategoryIds      []uuid.UUID        `json:"category_ids"`
	ValidFrom        pgtype.Timestamptz `json:"valid_from"`
	ValidTo          pgtype.Timestamptz `json:"valid_to"`
	Active           bool               `json:"active"`
	CreatedAt        pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateCoupon(ctx context.Context, db DBTX, arg CreateCouponParams) error {
	_, err := db.Exec(ctx, createCoupon,
		arg.ID,
		arg.Code,
		arg.Kind,
		arg.PercentOff,
		arg.AmountOffCents,
		arg.MaxDiscountCents,
		arg.MinOrderCents,
		arg.UsageLimit,
		arg.AllowedEmails,
		arg.ProductIds,
		arg.CategoryIds,
		arg.ValidFrom,
		arg.ValidTo,
		arg.Active,
		arg.CreatedAt,
	)
	return err
}

const updateCoupon = `-- name: UpdateCoupon :execrows
UPDATE coupons
SET code = $2, kind = $3, percent_off = $4, amount_off_cents = $5, max_discount_cents = $6,
    min_order_cents = $7, usage_limit = $8, allowed_emails = $9, product_ids = $10,
    category_ids = $11, valid_from = $12, valid_to = $13, active = $14, updated_at = $15
WHERE id = $1
`

type UpdateCouponParams struct {
	ID               uuid.UUID          `json:"id"`
	Code             string             `json:"code"`
	Kind             string             `json:"kind"`
	PercentOff       pgtype.Numeric     `json:"percent_off"`
	AmountOffCents   int64              `json:"amount_off_cents"`
	MaxDiscountCents int64              `json:"max_discount_cents"`
	MinOrderCents    int64              `json:"min_order_cents"`
	UsageLimit       pgtype.Int4        `json:"usage_limit"`
	AllowedEmails    []string           `json:"allowed_emails"`
	ProductIds       []uuid.UUID        `json:"product_ids"`
	CategoryIds      []uuid.UUID        `json:"category_ids"`
	ValidFrom        pgtype.Timestamptz `json:"valid_from"`
	ValidTo          pgtype.Timestamptz `json:"valid_to"`
	Active           bool               `json:"active"`
	UpdatedAt        pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateCoupon(ctx context.Context, db DBTX, arg UpdateCouponParams) (int64, error) {
	result, err := db.Exec(ctx, updateCoupon,
		arg.ID,
		arg.Code,
		arg.Kind,
		arg.PercentOff,
		arg.AmountOffCents,
		arg.MaxDiscountCents,
		arg.MinOrderCents,
		arg.UsageLimit,
		arg.AllowedEmails,
		arg.ProductIds,
		arg.CategoryIds,
		arg.ValidFrom,
		arg.ValidTo,
		arg.Active,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteCoupon = `-- name: DeleteCoupon :execrows
DELETE FROM coupons WHERE id = $1
`

func (q *Queries) DeleteCoupon(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteCoupon, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const findCouponByID = `-- name: FindCouponByID :one
SELECT ` + couponColumns + ` FROM coupons WHERE id = $1
`

func (q *Queries) FindCouponByID(ctx context.Context, db DBTX, id uuid.UUID) (Coupons, error) {
	row := db.QueryRow(ctx, findCouponByID, id)
	var i Coupons
	err := scanCoupon(row, &i)
	return i, err
}

const findCouponByCode = `-- name: FindCouponByCode :one
SELECT ` + couponColumns + ` FROM coupons WHERE code = $1
`

func (q *Queries) FindCouponByCode(ctx context.Context, db DBTX, code string) (Coupons, error) {
	row := db.QueryRow(ctx, findCouponByCode, code)
	var i Coupons
	err := scanCoupon(row, &i)
	return i, err
}

const listCoupons = `-- name: ListCoupons :many
SELECT ` + couponColumns + ` FROM coupons
WHERE ($1::timestamptz IS NULL OR (created_at, id) < ($1, $2::uuid))
ORDER BY created_at DESC, id DESC
LIMIT $3
`

type ListCouponsParams struct {
	AfterCreatedAt pgtype.Timestamptz `json:"after_created_at"`
	AfterID        pgtype.UUID        `json:"after_id"`
	Limit          int32              `json:"limit"`
}

func (q *Queries) ListCoupons(ctx context.Context, db DBTX, arg ListCouponsParams) ([]Coupons, error) {
	rows, err := db.Query(ctx, listCoupons, arg.AfterCreatedAt, arg.AfterID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Coupons
	for rows.Next() {
		var i Coupons
		if err := scanCoupon(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const incrementCouponUsage = `-- name: IncrementCouponUsage :execrows
UPDATE coupons SET used_count = used_count + 1, updated_at = now()
WHERE id = $1 AND (usage_limit IS NULL OR used_count < usage_limit)
`

func (q *Queries) IncrementCouponUsage(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, incrementCouponUsage, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const decrementCouponUsage = `-- name: DecrementCouponUsage :exec
UPDATE coupons SET used_count = GREATEST(used_count - 1, 0), updated_at = now() WHERE id = $1
`

func (q *Queries) DecrementCouponUsage(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, decrementCouponUsage, id)
	return err
}

const deactivateExpiredRewardCoupons = `-- name: DeactivateExpiredRewardCoupons :execrows
UPDATE coupons c
SET active = false, updated_at = $1
FROM rewards r
WHERE r.coupon_id = c.id
  AND r.expires_at < $1
  AND c.active
  AND c.used_count = 0
`

func (q *Queries) DeactivateExpiredRewardCoupons(ctx context.Context, db DBTX, now pgtype.Timestamptz) (int64, error) {
	result, err := db.Exec(ctx, deactivateExpiredRewardCoupons, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

func scanCoupon(row interface{ Scan(...any) error }, i *Coupons) error {
	return row.Scan(
		&i.ID,
		&i.Code,
		&i.Kind,
		&i.PercentOff,
		&i.AmountOffCents,
		&i.MaxDiscountCents,
		&i.MinOrderCents,
		&i.UsageLimit,
		&i.UsedCount,
		&i.AllowedEmails,
		&i.ProductIds,
		&i.CategoryIds,
		&i.ValidFrom,
		&i.ValidTo,
		&i.Active,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
}
