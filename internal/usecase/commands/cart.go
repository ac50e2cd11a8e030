package commands

import (
	"context"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/catalog"
	reqdto "storefront/internal/handler/dto/request"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrProductUnavailable = errs.NewCategorized("product is not available", errs.ErrValidation)
	ErrOutOfStock         = errs.NewCategorized("not enough stock", errs.ErrConflict)
	ErrNotInBundle        = errs.NewCategorized("product is not part of the bundle", errs.ErrValidation)
)

//go:generate mockgen -source=cart.go -destination=../../../tests/mock/commands/cart.go -package=commandsmock

type CartCommands interface {
	AddItem(ctx context.Context, userID uuid.UUID, req reqdto.AddCartItemRequest) error
	SetQuantity(ctx context.Context, userID, productID uuid.UUID, req reqdto.SetCartQuantityRequest) error
	RemoveItem(ctx context.Context, userID, productID uuid.UUID, bundleID *uuid.UUID) error
	AddBundle(ctx context.Context, userID, bundleID uuid.UUID, qty int) error
	RemoveBundle(ctx context.Context, userID, bundleID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

type cartCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCartCommands(uow shared.UnitOfWork) CartCommands {
	return &cartCommandsImpl{uow: uow}
}

func (c *cartCommandsImpl) AddItem(ctx context.Context, userID uuid.UUID, req reqdto.AddCartItemRequest) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()
		product, err := c.sellable(ctx, reads, req.ProductID)
		if err != nil {
			return err
		}
		if req.BundleID != nil {
			b, err := reads.BundleByID(ctx, *req.BundleID)
			if err != nil {
				return repoErr(err, ErrBundleNotFound)
			}
			if !b.Active() {
				return cart.ErrBundleInactive
			}
			if !b.Contains(req.ProductID) {
				return ErrNotInBundle
			}
		}

		crt, err := reads.CartByUser(ctx, userID, true)
		if err != nil {
			return repoErr(err, nil)
		}
		item, err := crt.Add(req.ProductID, req.BundleID, req.Quantity)
		if err != nil {
			return err
		}
		if !product.InStock(item.Quantity) {
			return ErrOutOfStock
		}
		return repoErr(tx.Carts().Upsert(ctx, tx.DB(), userID, item), nil)
	})
}

func (c *cartCommandsImpl) SetQuantity(ctx context.Context, userID, productID uuid.UUID, req reqdto.SetCartQuantityRequest) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		crt, err := tx.Reads().CartByUser(ctx, userID, true)
		if err != nil {
			return repoErr(err, nil)
		}
		item, removed, err := crt.SetQuantity(productID, req.BundleID, req.Quantity)
		if err != nil {
			return err
		}
		if removed {
			return repoErr(tx.Carts().Remove(ctx, tx.DB(), userID, productID, req.BundleID), cart.ErrItemNotFound)
		}
		product, err := c.sellable(ctx, tx.Reads(), productID)
		if err != nil {
			return err
		}
		if !product.InStock(item.Quantity) {
			return ErrOutOfStock
		}
		return repoErr(tx.Carts().Upsert(ctx, tx.DB(), userID, item), nil)
	})
}

func (c *cartCommandsImpl) RemoveItem(ctx context.Context, userID, productID uuid.UUID, bundleID *uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return repoErr(tx.Carts().Remove(ctx, tx.DB(), userID, productID, bundleID), cart.ErrItemNotFound)
	})
}

func (c *cartCommandsImpl) AddBundle(ctx context.Context, userID, bundleID uuid.UUID, qty int) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()
		b, err := reads.BundleByID(ctx, bundleID)
		if err != nil {
			return repoErr(err, ErrBundleNotFound)
		}
		products, err := reads.ProductsByIDs(ctx, b.ProductIDs())
		if err != nil {
			return repoErr(err, nil)
		}
		for _, id := range b.ProductIDs() {
			if p, ok := products[id]; !ok || !p.Active() {
				return ErrProductUnavailable
			}
		}

		crt, err := reads.CartByUser(ctx, userID, true)
		if err != nil {
			return repoErr(err, nil)
		}
		items, err := crt.AddBundle(b, qty)
		if err != nil {
			return err
		}
		for _, item := range items {
			if !products[item.ProductID].InStock(item.Quantity) {
				return ErrOutOfStock
			}
			if err := tx.Carts().Upsert(ctx, tx.DB(), userID, item); err != nil {
				return repoErr(err, nil)
			}
		}
		return nil
	})
}

func (c *cartCommandsImpl) RemoveBundle(ctx context.Context, userID, bundleID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Carts().RemoveBundle(ctx, tx.DB(), userID, bundleID)
		if err != nil {
			return repoErr(err, nil)
		}
		if n == 0 {
			return cart.ErrItemNotFound
		}
		return nil
	})
}

func (c *cartCommandsImpl) Clear(ctx context.Context, userID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return repoErr(tx.Carts().Clear(ctx, tx.DB(), userID), nil)
	})
}

func (c *cartCommandsImpl) sellable(ctx context.Context, reads shared.CommandReads, productID uuid.UUID) (*catalog.Product, error) {
	p, err := reads.ProductByID(ctx, productID)
	if err != nil {
		return nil, repoErr(err, ErrProductNotFound)
	}
	if !p.Active() {
		return nil, ErrProductUnavailable
	}
	return p, nil
}
