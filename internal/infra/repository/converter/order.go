package converter

import (
	"storefront/internal/domain/order"
	"storefront/internal/domain/pricing"
	"storefront/internal/infra/sqlc"
	"storefront/internal/pkg/pgconv"
)

func OrderToCreateParams(o *order.Order) sqlc.CreateOrderParams {
	addr := o.Address()
	return sqlc.CreateOrderParams{
		ID:            o.ID(),
		UserID:        o.UserID(),
		Number:        o.Number(),
		Status:        o.Status().String(),
		SubtotalCents: o.Subtotal().Cents(),
		ShippingCents: o.Shipping().Cents(),
		DiscountCents: o.Discount().Cents(),
		TotalCents:    o.Total().Cents(),
		Currency:      o.Currency(),
		CouponID:      pgconv.UUIDPtrToPgtype(o.CouponID()),
		CouponCode:    pgconv.StringPtrToPgtype(o.CouponCode()),
		ShipFullName:  addr.FullName,
		ShipPhone:     addr.Phone,
		ShipLine1:     addr.Line1,
		ShipLine2:     addr.Line2,
		ShipCity:      addr.City,
		ShipState:     addr.State,
		ShipPincode:   addr.Pincode,
		CreatedAt:     pgconv.TimeToPgtype(o.CreatedAt()),
	}
}

func OrderItemsToParams(o *order.Order) []sqlc.InsertOrderItemParams {
	out := make([]sqlc.InsertOrderItemParams, 0, len(o.Items()))
	for i, it := range o.Items() {
		out = append(out, sqlc.InsertOrderItemParams{
			OrderID:        o.ID(),
			Position:       int32(i),
			ProductID:      it.ProductID,
			BundleID:       pgconv.UUIDPtrToPgtype(it.BundleID),
			Name:           it.Name,
			UnitPriceCents: it.UnitPrice.Cents(),
			Quantity:       int32(it.Quantity),
			LineTotalCents: it.LineTotal.Cents(),
		})
	}
	return out
}

func OrderToStateParams(o *order.Order) sqlc.UpdateOrderStateParams {
	return sqlc.UpdateOrderStateParams{
		ID:              o.ID(),
		Status:          o.Status().String(),
		ProviderOrderID: pgconv.StringPtrToPgtype(o.ProviderOrderID()),
		PaymentID:       pgconv.StringPtrToPgtype(o.PaymentID()),
		CancelReason:    pgconv.StringPtrToPgtype(o.CancelReason()),
		PaidAt:          pgconv.TimePtrToPgtype(o.PaidAt()),
		CancelledAt:     pgconv.TimePtrToPgtype(o.CancelledAt()),
		UpdatedAt:       pgconv.TimeToPgtype(o.UpdatedAt()),
	}
}

func OrderFromRows(row sqlc.Orders, itemRows []sqlc.OrderItems) *order.Order {
	items := make([]order.Item, 0, len(itemRows))
	for _, it := range itemRows {
		items = append(items, order.Item{
			ProductID: it.ProductID,
			BundleID:  pgconv.UUIDPtrFromPgtype(it.BundleID),
			Name:      it.Name,
			UnitPrice: pricing.NewMoney(it.UnitPriceCents),
			Quantity:  int(it.Quantity),
			LineTotal: pricing.NewMoney(it.LineTotalCents),
		})
	}
	return order.Reconstruct(order.ReconstructParams{
		ID:         row.ID,
		UserID:     row.UserID,
		Number:     row.Number,
		Status:     order.Status(row.Status),
		Items:      items,
		Subtotal:   pricing.NewMoney(row.SubtotalCents),
		Shipping:   pricing.NewMoney(row.ShippingCents),
		Discount:   pricing.NewMoney(row.DiscountCents),
		Total:      pricing.NewMoney(row.TotalCents),
		Currency:   row.Currency,
		CouponID:   pgconv.UUIDPtrFromPgtype(row.CouponID),
		CouponCode: pgconv.StringPtrFromPgtype(row.CouponCode),
		Address: order.ShippingAddress{
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
	})
}
