package repository

import (
	"context"

	"storefront/internal/domain/cart"
	"storefront/internal/infra"
	"storefront/internal/infra/repository/converter"
	"storefront/internal/infra/sqlc"
	"storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CartQueries interface {
	ListCartItems(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.CartItems, error)
	ListCartItemsForUpdate(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.CartItems, error)
	UpsertCartItem(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertCartItemParams) error
	DeleteCartItem(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteCartItemParams) (int64, error)
	DeleteCartBundle(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteCartBundleParams) (int64, error)
	ClearCart(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
}

type CartRepository struct {
	queries CartQueries
}

func NewCartRepository(queries CartQueries) *CartRepository {
	return &CartRepository{queries: queries}
}

// Upsert stores the absolute quantity of the row.
func (r *CartRepository) Upsert(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, item cart.Item) error {
	if err := r.queries.UpsertCartItem(ctx, tx, converter.CartItemToUpsertParams(userID, item)); err != nil {
		return infra.WrapRepoErr("failed to save cart item", err)
	}
	return nil
}

func (r *CartRepository) Remove(ctx context.Context, tx sqlc.DBTX, userID, productID uuid.UUID, bundleID *uuid.UUID) error {
	rows, err := r.queries.DeleteCartItem(ctx, tx, sqlc.DeleteCartItemParams{
		UserID:    userID,
		ProductID: productID,
		BundleID:  pgconv.UUIDPtrToPgtype(bundleID),
	})
	return expectAffected(rows, err, "cart item")
}

func (r *CartRepository) RemoveBundle(ctx context.Context, tx sqlc.DBTX, userID, bundleID uuid.UUID) (int64, error) {
	rows, err := r.queries.DeleteCartBundle(ctx, tx, sqlc.DeleteCartBundleParams{UserID: userID, BundleID: bundleID})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to remove cart bundle", err)
	}
	return rows, nil
}

func (r *CartRepository) Clear(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error {
	if _, err := r.queries.ClearCart(ctx, tx, userID); err != nil {
		return infra.WrapRepoErr("failed to clear cart", err)
	}
	return nil
}

// FindByUser locks the rows when forUpdate is set so checkout sees a stable cart.
func (r *CartRepository) FindByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID, forUpdate bool) (*cart.Cart, error) {
	list := r.queries.ListCartItems
	if forUpdate {
		list = r.queries.ListCartItemsForUpdate
	}
	rows, err := list(ctx, db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load cart", err)
	}
	return converter.CartFromRows(userID, rows), nil
}
