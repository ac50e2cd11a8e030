package repository

import (
	"context"
	"time"

	"storefront/internal/domain/order"
	"storefront/internal/infra"
	"storefront/internal/infra/repository/converter"
	"storefront/internal/infra/sqlc"
	"storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderQueries interface {
	CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) error
	InsertOrderItem(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOrderItemParams) error
	UpdateOrderState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrderStateParams) (int64, error)
	FindOrderByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	FindOrderByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	FindOrderByProviderOrderIDForUpdate(ctx context.Context, db sqlc.DBTX, providerOrderID string) (sqlc.Orders, error)
	ListOrderItems(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.OrderItems, error)
	ListStalePendingOrderIDs(ctx context.Context, db sqlc.DBTX, arg sqlc.ListStalePendingOrderIDsParams) ([]uuid.UUID, error)
}

type OrderRepository struct {
	queries OrderQueries
}

func NewOrderRepository(queries OrderQueries) *OrderRepository {
	return &OrderRepository{queries: queries}
}

func (r *OrderRepository) Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	if err := r.queries.CreateOrder(ctx, tx, converter.OrderToCreateParams(o)); err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}
	for _, item := range converter.OrderItemsToParams(o) {
		if err := r.queries.InsertOrderItem(ctx, tx, item); err != nil {
			return infra.WrapRepoErr("failed to insert order item", err)
		}
	}
	return nil
}

// SaveState persists status, payment references and timestamps. Items and totals never change.
func (r *OrderRepository) SaveState(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	rows, err := r.queries.UpdateOrderState(ctx, tx, converter.OrderToStateParams(o))
	return expectAffected(rows, err, "order")
}

func (r *OrderRepository) StalePendingIDs(ctx context.Context, tx sqlc.DBTX, before time.Time, limit int32) ([]uuid.UUID, error) {
	ids, err := r.queries.ListStalePendingOrderIDs(ctx, tx, sqlc.ListStalePendingOrderIDsParams{
		Before: pgconv.TimeToPgtype(before),
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stale orders", err)
	}
	return ids, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID, forUpdate bool) (*order.Order, error) {
	find := r.queries.FindOrderByID
	if forUpdate {
		find = r.queries.FindOrderByIDForUpdate
	}
	row, err := find(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}
	return r.withItems(ctx, db, row)
}

func (r *OrderRepository) FindByProviderOrderID(ctx context.Context, db sqlc.DBTX, providerOrderID string) (*order.Order, error) {
	row, err := r.queries.FindOrderByProviderOrderIDForUpdate(ctx, db, providerOrderID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by provider id", err)
	}
	return r.withItems(ctx, db, row)
}

func (r *OrderRepository) withItems(ctx context.Context, db sqlc.DBTX, row sqlc.Orders) (*order.Order, error) {
	items, err := r.queries.ListOrderItems(ctx, db, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	return converter.OrderFromRows(row, items), nil
}
