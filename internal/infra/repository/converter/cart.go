package converter

import (
	"storefront/internal/domain/cart"
	"storefront/internal/infra/sqlc"
	"storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func CartFromRows(userID uuid.UUID, rows []sqlc.CartItems) *cart.Cart {
	items := make([]cart.Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, cart.Item{
			ProductID: r.ProductID,
			BundleID:  pgconv.UUIDPtrFromPgtype(r.BundleID),
			Quantity:  int(r.Quantity),
		})
	}
	return cart.New(userID, items)
}

func CartItemToUpsertParams(userID uuid.UUID, item cart.Item) sqlc.UpsertCartItemParams {
	return sqlc.UpsertCartItemParams{
		UserID:    userID,
		ProductID: item.ProductID,
		BundleID:  pgconv.UUIDPtrToPgtype(item.BundleID),
		Quantity:  int32(item.Quantity),
	}
}
