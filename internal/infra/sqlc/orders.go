package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const orderColumns = `id, user_id, number, status, subtotal_cents, shipping_cents, discount_cents, total_cents, currency, coupon_id, coupon_code, ship_full_name, ship_phone, ship_line1, ship_line2, ship_city, ship_state, ship_pincode, provider_order_id, payment_id, cancel_reason, paid_at, cancelled_at, created_at, updated_at`

const createOrder = `-- name: CreateOrder :exec
INSERT INTO orders (id, user_id, number, status, subtotal_cents, shipping_cents, discount_cents, total_cents,
                    currency, coupon_id, coupon_code, ship_full_name, ship_phone, ship_line1, ship_line2,
                    ship_city, ship_state, ship_pincode, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $19)
`

type CreateOrderParams struct {
	ID            uuid.UUID          `json:"id"`
	UserID        uuid.UUID          `json:"user_id"`
	Number        string             `json:"number"`
	Status        string             `json:"status"`
	SubtotalCents int64              `json:"subtotal_cents"`
	ShippingCents int64              `json:"shipping_cents"`
	DiscountCents int64              `json:"discount_cents"`
	TotalCents    int64              `json:"total_cents"`
	Currency      string             `json:"currency"`
	CouponID      pgtype.UUID        `json:"coupon_id"`
	CouponCode    pgtype.Text        `json:"coupon_code"`
	ShipFullName  string             `json:"ship_full_name"`
	ShipPhone     string             `json:"ship_phone"`
	ShipLine1     string             `json:"ship_line1"`
	ShipLine2     string             `json:"ship_line2"`
	ShipCity      string             `json:"ship_city"`
	ShipState     string             `json:"ship_state"`
	ShipPincode   string             `json:"ship_pincode"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateOrder(ctx context.Context, db DBTX, arg CreateOrderParams) error {
	_, err := db.Exec(ctx, createOrder,
		arg.ID,
		arg.UserID,
		arg.Number,
		arg.Status,
		arg.SubtotalCents,
		arg.ShippingCents,
		arg.DiscountCents,
		arg.TotalCents,
		arg.Currency,
		arg.CouponID,
		arg.CouponCode,
		arg.ShipFullName,
		arg.ShipPhone,
		arg.ShipLine1,
		arg.ShipLine2,
		arg.ShipCity,
		arg.ShipState,
		arg.ShipPincode,
		arg.CreatedAt,
	)
	return err
}

const insertOrderItem = `-- name: InsertOrderItem :exec
INSERT INTO order_items (order_id, position, product_id, bundle_id, name, unit_price_cents, quantity, line_total_cents)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

type InsertOrderItemParams struct {
	OrderID        uuid.UUID   `json:"order_id"`
	Position       int32       `json:"position"`
	ProductID      uuid.UUID   `json:"product_id"`
	BundleID       pgtype.UUID `json:"bundle_id"`
	Name           string      `json:"name"`
	UnitPriceCents int64       `json:"unit_price_cents"`
	Quantity       int32       `json:"quantity"`
	LineTotalCents int64       `json:"line_total_cents"`
}

func (q *Queries) InsertOrderItem(ctx context.Context, db DBTX, arg InsertOrderItemParams) error {
	_, err := db.Exec(ctx, insertOrderItem,
		arg.OrderID,
		arg.Position,
		arg.ProductID,
		arg.BundleID,
		arg.Name,
		arg.UnitPriceCents,
		arg.Quantity,
		arg.LineTotalCents,
	)
	return err
}

const updateOrderState = `-- name: UpdateOrderState :execrows
UPDATE orders
SET status = $2, provider_order_id = $3, payment_id = $4, cancel_reason = $5,
    paid_at = $6, cancelled_at = $7, updated_at = $8
WHERE id = $1
`

type UpdateOrderStateParams struct {
	ID              uuid.UUID          `json:"id"`
	Status          string             `json:"status"`
	ProviderOrderID pgtype.Text        `json:"provider_order_id"`
	PaymentID       pgtype.Text        `json:"payment_id"`
	CancelReason    pgtype.Text        `json:"cancel_reason"`
	PaidAt          pgtype.Timestamptz `json:"paid_at"`
	CancelledAt     pgtype.Timestamptz `json:"cancelled_at"`
	UpdatedAt       pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateOrderState(ctx context.Context, db DBTX, arg UpdateOrderStateParams) (int64, error) {
	result, err := db.Exec(ctx, updateOrderState,
		arg.ID,
		arg.Status,
		arg.ProviderOrderID,
		arg.PaymentID,
		arg.CancelReason,
		arg.PaidAt,
		arg.CancelledAt,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const findOrderByID = `-- name: FindOrderByID :one
SELECT ` + orderColumns + ` FROM orders WHERE id = $1
`

func (q *Queries) FindOrderByID(ctx context.Context, db DBTX, id uuid.UUID) (Orders, error) {
	row := db.QueryRow(ctx, findOrderByID, id)
	var i Orders
	err := scanOrder(row, &i)
	return i, err
}

const findOrderByIDForUpdate = `-- name: FindOrderByIDForUpdate :one
SELECT ` + orderColumns + ` FROM orders WHERE id = $1 FOR UPDATE
`

func (q *Queries) FindOrderByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Orders, error) {
	row := db.QueryRow(ctx, findOrderByIDForUpdate, id)
	var i Orders
	err := scanOrder(row, &i)
	return i, err
}

const findOrderByProviderOrderIDForUpdate = `-- name: FindOrderByProviderOrderIDForUpdate :one
SELECT ` + orderColumns + ` FROM orders WHERE provider_order_id = $1 FOR UPDATE
`

func (q *Queries) FindOrderByProviderOrderIDForUpdate(ctx context.Context, db DBTX, providerOrderID string) (Orders, error) {
	row := db.QueryRow(ctx, findOrderByProviderOrderIDForUpdate, providerOrderID)
	var i Orders
	err := scanOrder(row, &i)
	return i, err
}

const listOrderItems = `-- name: ListOrderItems :many
SELECT order_id, position, product_id, bundle_id, name, unit_price_cents, quantity, line_total_cents
FROM order_items
WHERE order_id = $1
ORDER BY position
`

func (q *Queries) ListOrderItems(ctx context.Context, db DBTX, orderID uuid.UUID) ([]OrderItems, error) {
	rows, err := db.Query(ctx, listOrderItems, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []OrderItems
	for rows.Next() {
		var i OrderItems
		if err := rows.Scan(
			&i.OrderID,
			&i.Position,
			&i.ProductID,
			&i.BundleID,
			&i.Name,
			&i.UnitPriceCents,
			&i.Quantity,
			&i.LineTotalCents,
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

const listOrders = `-- name: ListOrders :many
SELECT ` + orderColumns + ` FROM orders
WHERE ($1::uuid IS NULL OR user_id = $1)
  AND ($2::text IS NULL OR status = $2)
  AND ($3::timestamptz IS NULL OR (created_at, id) < ($3, $4::uuid))
ORDER BY created_at DESC, id DESC
LIMIT $5
`

type ListOrdersParams struct {
	UserID         pgtype.UUID        `json:"user_id"`
	Status         pgtype.Text        `json:"status"`
	AfterCreatedAt pgtype.Timestamptz `json:"after_created_at"`
	AfterID        pgtype.UUID        `json:"after_id"`
	Limit          int32              `json:"limit"`
}

func (q *Queries) ListOrders(ctx context.Context, db DBTX, arg ListOrdersParams) ([]Orders, error) {
	rows, err := db.Query(ctx, listOrders,
		arg.UserID,
		arg.Status,
		arg.AfterCreatedAt,
		arg.AfterID,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Orders
	for rows.Next() {
		var i Orders
		if err := scanOrder(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listStalePendingOrderIDs = `-- name: ListStalePendingOrderIDs :many
SELECT id FROM orders
WHERE status = 'pending' AND created_at < $1
ORDER BY created_at
LIMIT $2
`

type ListStalePendingOrderIDsParams struct {
	Before pgtype.Timestamptz `json:"before"`
	Limit  int32              `json:"limit"`
}

func (q *Queries) ListStalePendingOrderIDs(ctx context.Context, db DBTX, arg ListStalePendingOrderIDsParams) ([]uuid.UUID, error) {
	rows, err := db.Query(ctx, listStalePendingOrderIDs, arg.Before, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		items = append(items, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanOrder(row interface{ Scan(...any) error }, i *Orders) error {
	return row.Scan(
		&i.ID,
		&i.UserID,
		&i.Number,
		&i.Status,
		&i.SubtotalCents,
		&i.ShippingCents,
		&i.DiscountCents,
		&i.TotalCents,
		&i.Currency,
		&i.CouponID,
		&i.CouponCode,
		&i.ShipFullName,
		&i.ShipPhone,
		&i.ShipLine1,
		&i.ShipLine2,
		&i.ShipCity,
		&i.ShipState,
		&i.ShipPincode,
		&i.ProviderOrderID,
		&i.PaymentID,
		&i.CancelReason,
		&i.PaidAt,
		&i.CancelledAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
}
