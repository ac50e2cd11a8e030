package commands

import (
	"context"
	"log/slog"

	"storefront/internal/domain/catalog"
	reqdto "storefront/internal/handler/dto/request"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrUnknownBundleProduct = errs.NewCategorized("bundle references an unknown product", errs.ErrValidation)

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/commands/catalog.go -package=commandsmock

type CatalogCommands interface {
	CreateCategory(ctx context.Context, req reqdto.CategoryRequest) (uuid.UUID, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req reqdto.CategoryRequest) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	CreateProduct(ctx context.Context, req reqdto.ProductRequest) (uuid.UUID, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req reqdto.ProductRequest) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	// AdjustStock applies a signed delta and returns the resulting stock.
	AdjustStock(ctx context.Context, id uuid.UUID, delta int32) (int32, error)

	CreateBundle(ctx context.Context, req reqdto.BundleRequest) (uuid.UUID, error)
	UpdateBundle(ctx context.Context, id uuid.UUID, req reqdto.BundleRequest) error
	DeleteBundle(ctx context.Context, id uuid.UUID) error
}

type catalogCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCatalogCommands(uow shared.UnitOfWork, clk clock.Clock) CatalogCommands {
	return &catalogCommandsImpl{uow: uow, clock: clk}
}

func (c *catalogCommandsImpl) CreateCategory(ctx context.Context, req reqdto.CategoryRequest) (uuid.UUID, error) {
	cat, err := catalog.NewCategory(uuid.Nil, req.Name, req.Slug, c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return slugErr(tx.Catalog().CreateCategory(ctx, tx.DB(), cat), nil)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return cat.ID(), nil
}

func (c *catalogCommandsImpl) UpdateCategory(ctx context.Context, id uuid.UUID, req reqdto.CategoryRequest) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cat, err := tx.Reads().CategoryByID(ctx, id)
		if err != nil {
			return repoErr(err, ErrCategoryNotFound)
		}
		if err := cat.Rename(req.Name, req.Slug); err != nil {
			return err
		}
		return slugErr(tx.Catalog().UpdateCategory(ctx, tx.DB(), cat), ErrCategoryNotFound)
	})
}

func (c *catalogCommandsImpl) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return repoErr(tx.Catalog().DeleteCategory(ctx, tx.DB(), id), ErrCategoryNotFound)
	})
}

func (c *catalogCommandsImpl) CreateProduct(ctx context.Context, req reqdto.ProductRequest) (uuid.UUID, error) {
	p, err := catalog.NewProduct(uuid.Nil, req.ToParams(), c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := c.ensureCategory(ctx, tx, p.CategoryID()); err != nil {
			return err
		}
		return slugErr(tx.Catalog().CreateProduct(ctx, tx.DB(), p), nil)
	})
	if err != nil {
		return uuid.Nil, err
	}
	slog.Info("Product created", "product_id", p.ID(), "slug", p.Slug())
	return p.ID(), nil
}

func (c *catalogCommandsImpl) UpdateProduct(ctx context.Context, id uuid.UUID, req reqdto.ProductRequest) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Reads().ProductByID(ctx, id)
		if err != nil {
			return repoErr(err, ErrProductNotFound)
		}
		if err := p.Update(req.ToParams(), c.clock.Now()); err != nil {
			return err
		}
		if err := c.ensureCategory(ctx, tx, p.CategoryID()); err != nil {
			return err
		}
		return slugErr(tx.Catalog().UpdateProduct(ctx, tx.DB(), p), ErrProductNotFound)
	})
}

// DeleteProduct refuses products that orders still reference; deactivate those instead.
func (c *catalogCommandsImpl) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return repoErr(tx.Catalog().DeleteProduct(ctx, tx.DB(), id), ErrProductNotFound)
	})
}

func (c *catalogCommandsImpl) AdjustStock(ctx context.Context, id uuid.UUID, delta int32) (int32, error) {
	var stock int32
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().ProductByID(ctx, id); err != nil {
			return repoErr(err, ErrProductNotFound)
		}
		var err error
		stock, err = tx.Catalog().AdjustStock(ctx, tx.DB(), id, delta)
		if infra.IsKind(err, infra.KindConflict) {
			return ErrInsufficientStock
		}
		return repoErr(err, ErrProductNotFound)
	})
	if err != nil {
		return 0, err
	}
	slog.Info("Stock adjusted", "product_id", id, "delta", delta, "stock", stock)
	return stock, nil
}

func (c *catalogCommandsImpl) CreateBundle(ctx context.Context, req reqdto.BundleRequest) (uuid.UUID, error) {
	b, err := catalog.NewBundle(uuid.Nil, req.ToParams(), c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := c.ensureMembers(ctx, tx, b.ProductIDs()); err != nil {
			return err
		}
		return slugErr(tx.Catalog().CreateBundle(ctx, tx.DB(), b), nil)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return b.ID(), nil
}

func (c *catalogCommandsImpl) UpdateBundle(ctx context.Context, id uuid.UUID, req reqdto.BundleRequest) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Reads().BundleByID(ctx, id)
		if err != nil {
			return repoErr(err, ErrBundleNotFound)
		}
		if err := b.Update(req.ToParams(), c.clock.Now()); err != nil {
			return err
		}
		if err := c.ensureMembers(ctx, tx, b.ProductIDs()); err != nil {
			return err
		}
		return slugErr(tx.Catalog().UpdateBundle(ctx, tx.DB(), b), ErrBundleNotFound)
	})
}

func (c *catalogCommandsImpl) DeleteBundle(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return repoErr(tx.Catalog().DeleteBundle(ctx, tx.DB(), id), ErrBundleNotFound)
	})
}

func (c *catalogCommandsImpl) ensureCategory(ctx context.Context, tx shared.Tx, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	_, err := tx.Reads().CategoryByID(ctx, *id)
	return repoErr(err, ErrCategoryNotFound)
}

func (c *catalogCommandsImpl) ensureMembers(ctx context.Context, tx shared.Tx, ids []uuid.UUID) error {
	found, err := tx.Reads().ProductsByIDs(ctx, ids)
	if err != nil {
		return repoErr(err, nil)
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return errs.Wrapf(ErrUnknownBundleProduct, "product %s", id)
		}
	}
	return nil
}

func slugErr(err error, notFound error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return ErrSlugTaken
	}
	return repoErr(err, notFound)
}
