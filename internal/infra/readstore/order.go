package readstore

import (
	"context"

	"storefront/internal/infra"
	"storefront/internal/infra/sqlc"
	"storefront/internal/pkg/pgconv"
	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderReadQueries interface {
	FindOrderByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	ListOrderItems(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.OrderItems, error)
	ListOrders(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOrdersParams) ([]sqlc.Orders, error)
}

type OrderReadStore struct {
	queries OrderReadQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderReadQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{queries: queries, db: db}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row, err := r.queries.FindOrderByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order view by id", err)
	}
	items, err := r.queries.ListOrderItems(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}

	view := &queries.OrderView{
		ID:            row.ID,
		UserID:        row.UserID,
		Number:        row.Number,
		Status:        row.Status,
		Items:         make([]queries.OrderItemView, 0, len(items)),
		SubtotalCents: row.SubtotalCents,
		ShippingCents: row.ShippingCents,
		DiscountCents: row.DiscountCents,
		TotalCents:    row.TotalCents,
		Currency:      row.Currency,
		CouponCode:    pgconv.StringPtrFromPgtype(row.CouponCode),
		Address: queries.ShippingAddressView{
			FullName: row.ShipFullName,
			Phone:    row.ShipPhone,
			Line1:    row.ShipLine1,
			Line2:    row.ShipLine2,
			City:     row.ShipCity,
			State:    row.ShipState,
			Pincode:  row.ShipPincode,
		},
		ProviderOrderID: pgconv.StringPtrFromPgtype(row.ProviderOrderID),
		PaymentID:       pgconv.StringPtrFromPgtype(row.PaymentID),
		CancelReason:    pgconv.StringPtrFromPgtype(row.CancelReason),
		PaidAt:          pgconv.TimePtrFromPgtype(row.PaidAt),
		CancelledAt:     pgconv.TimePtrFromPgtype(row.CancelledAt),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	for _, it := range items {
		view.Items = append(view.Items, queries.OrderItemView{
			ProductID:      it.ProductID,
			BundleID:       pgconv.UUIDPtrFromPgtype(it.BundleID),
			Name:           it.Name,
			UnitPriceCents: it.UnitPriceCents,
			Quantity:       it.Quantity,
			LineTotalCents: it.LineTotalCents,
		})
	}
	return view, nil
}

func (r *OrderReadStore) List(ctx context.Context, filter queries.OrderFilter, after *queries.Keyset, limit int32) ([]*queries.OrderListItem, error) {
	params := sqlc.ListOrdersParams{
		UserID: pgconv.UUIDPtrToPgtype(filter.UserID),
		Status: pgconv.StringPtrToPgtype(filter.Status),
		Limit:  limit,
	}
	params.AfterCreatedAt, params.AfterID = afterParams(after)

	rows, err := r.queries.ListOrders(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	out := make([]*queries.OrderListItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.OrderListItem{
			ID:         row.ID,
			UserID:     row.UserID,
			Number:     row.Number,
			Status:     row.Status,
			TotalCents: row.TotalCents,
			Currency:   row.Currency,
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return out, nil
}
