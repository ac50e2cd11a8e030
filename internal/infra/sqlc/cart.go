package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const listCartItems = `-- name: ListCartItems :many
SELECT user_id, product_id, bundle_id, quantity, created_at, updated_at
FROM cart_items
WHERE user_id = $1
ORDER BY created_at, product_id
`

func (q *Queries) ListCartItems(ctx context.Context, db DBTX, userID uuid.UUID) ([]CartItems, error) {
	return q.queryCartItems(ctx, db, listCartItems, userID)
}

const listCartItemsForUpdate = `-- name: ListCartItemsForUpdate :many
SELECT user_id, product_id, bundle_id, quantity, created_at, updated_at
FROM cart_items
WHERE user_id = $1
ORDER BY created_at, product_id
FOR UPDATE
`

func (q *Queries) ListCartItemsForUpdate(ctx context.Context, db DBTX, userID uuid.UUID) ([]CartItems, error) {
	return q.queryCartItems(ctx, db, listCartItemsForUpdate, userID)
}

func (q *Queries) queryCartItems(ctx context.Context, db DBTX, sql string, userID uuid.UUID) ([]CartItems, error) {
	rows, err := db.Query(ctx, sql, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CartItems
	for rows.Next() {
		var i CartItems
		if err := rows.Scan(
			&i.UserID,
			&i.ProductID,
			&i.BundleID,
			&i.Quantity,
			&i.CreatedAt,
			&i.UpdatedAt,
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

const upsertCartItem = `-- name: UpsertCartItem :exec
INSERT INTO cart_items (user_id, product_id, bundle_id, quantity)
VALUES ($1, $2, $3, $4)
ON CONFLICT ON CONSTRAINT uq_cart_items_line
DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()
`

type UpsertCartItemParams struct {
	UserID    uuid.UUID   `json:"user_id"`
	ProductID uuid.UUID   `json:"product_id"`
	BundleID  pgtype.UUID `json:"bundle_id"`
	Quantity  int32       `json:"quantity"`
}

func (q *Queries) UpsertCartItem(ctx context.Context, db DBTX, arg UpsertCartItemParams) error {
	_, err := db.Exec(ctx, upsertCartItem, arg.UserID, arg.ProductID, arg.BundleID, arg.Quantity)
	return err
}

const deleteCartItem = `-- name: DeleteCartItem :execrows
DELETE FROM cart_items
WHERE user_id = $1 AND product_id = $2 AND bundle_id IS NOT DISTINCT FROM $3
`

type DeleteCartItemParams struct {
	UserID    uuid.UUID   `json:"user_id"`
	ProductID uuid.UUID   `json:"product_id"`
	BundleID  pgtype.UUID `json:"bundle_id"`
}

func (q *Queries) DeleteCartItem(ctx context.Context, db DBTX, arg DeleteCartItemParams) (int64, error) {
	result, err := db.Exec(ctx, deleteCartItem, arg.UserID, arg.ProductID, arg.BundleID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteCartBundle = `-- name: DeleteCartBundle :execrows
DELETE FROM cart_items WHERE user_id = $1 AND bundle_id = $2
`

type DeleteCartBundleParams struct {
	UserID   uuid.UUID `json:"user_id"`
	BundleID uuid.UUID `json:"bundle_id"`
}

func (q *Queries) DeleteCartBundle(ctx context.Context, db DBTX, arg DeleteCartBundleParams) (int64, error) {
	result, err := db.Exec(ctx, deleteCartBundle, arg.UserID, arg.BundleID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const clearCart = `-- name: ClearCart :execrows
DELETE FROM cart_items WHERE user_id = $1
`

func (q *Queries) ClearCart(ctx context.Context, db DBTX, userID uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, clearCart, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
