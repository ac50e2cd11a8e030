package repository

import (
	"context"

	"storefront/internal/domain/catalog"
	"storefront/internal/infra"
	"storefront/internal/infra/repository/converter"
	"storefront/internal/infra/sqlc"
	"storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CatalogQueries interface {
	CreateCategory(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCategoryParams) error
	UpdateCategory(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCategoryParams) (int64, error)
	DeleteCategory(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	FindCategoryByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Categories, error)

	CreateProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateProductParams) error
	UpdateProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateProductParams) (int64, error)
	DeleteProduct(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	AdjustProductStock(ctx context.Context, db sqlc.DBTX, arg sqlc.AdjustProductStockParams) (int32, error)
	FindProductByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Products, error)
	ListProductsByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.Products, error)

	CreateBundle(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBundleParams) error
	UpdateBundle(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBundleParams) (int64, error)
	DeleteBundle(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	FindBundleByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bundles, error)
	ListBundlesByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.Bundles, error)
	InsertBundleItem(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertBundleItemParams) error
	DeleteBundleItems(ctx context.Context, db sqlc.DBTX, bundleID uuid.UUID) error
	ListBundleItems(ctx context.Context, db sqlc.DBTX, bundleIds []uuid.UUID) ([]sqlc.BundleItems, error)
}

type CatalogRepository struct {
	queries CatalogQueries
}

func NewCatalogRepository(queries CatalogQueries) *CatalogRepository {
	return &CatalogRepository{queries: queries}
}

func (r *CatalogRepository) CreateCategory(ctx context.Context, tx sqlc.DBTX, c *catalog.Category) error {
	if err := r.queries.CreateCategory(ctx, tx, converter.CategoryToCreateParams(c)); err != nil {
		return infra.WrapRepoErr("failed to create category", err)
	}
	return nil
}

func (r *CatalogRepository) UpdateCategory(ctx context.Context, tx sqlc.DBTX, c *catalog.Category) error {
	rows, err := r.queries.UpdateCategory(ctx, tx, converter.CategoryToUpdateParams(c))
	return expectAffected(rows, err, "category")
}

func (r *CatalogRepository) DeleteCategory(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	rows, err := r.queries.DeleteCategory(ctx, tx, id)
	return expectAffected(rows, err, "category")
}

func (r *CatalogRepository) FindCategoryByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*catalog.Category, error) {
	row, err := r.queries.FindCategoryByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("category not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find category", err)
	}
	return converter.CategoryFromRow(row), nil
}

func (r *CatalogRepository) CreateProduct(ctx context.Context, tx sqlc.DBTX, p *catalog.Product) error {
	if err := r.queries.CreateProduct(ctx, tx, converter.ProductToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create product", err)
	}
	return nil
}

func (r *CatalogRepository) UpdateProduct(ctx context.Context, tx sqlc.DBTX, p *catalog.Product) error {
	rows, err := r.queries.UpdateProduct(ctx, tx, converter.ProductToUpdateParams(p))
	return expectAffected(rows, err, "product")
}

func (r *CatalogRepository) DeleteProduct(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	rows, err := r.queries.DeleteProduct(ctx, tx, id)
	return expectAffected(rows, err, "product")
}

func (r *CatalogRepository) AdjustStock(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID, delta int32) (int32, error) {
	stock, err := r.queries.AdjustProductStock(ctx, tx, sqlc.AdjustProductStockParams{ID: productID, Delta: delta})
	if err != nil {
		if pgconv.IsNoRows(err) {
			// The guarded UPDATE matched nothing: unknown product or not enough stock.
			return 0, infra.WrapRepoErr("insufficient stock", err, infra.KindConflict)
		}
		return 0, infra.WrapRepoErr("failed to adjust stock", err)
	}
	return stock, nil
}

func (r *CatalogRepository) FindProductByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*catalog.Product, error) {
	row, err := r.queries.FindProductByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product", err)
	}
	return converter.ProductFromRow(row), nil
}

func (r *CatalogRepository) FindProductsByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) (map[uuid.UUID]*catalog.Product, error) {
	out := make(map[uuid.UUID]*catalog.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.queries.ListProductsByIDs(ctx, db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	for _, row := range rows {
		out[row.ID] = converter.ProductFromRow(row)
	}
	return out, nil
}

func (r *CatalogRepository) CreateBundle(ctx context.Context, tx sqlc.DBTX, b *catalog.Bundle) error {
	if err := r.queries.CreateBundle(ctx, tx, converter.BundleToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create bundle", err)
	}
	return r.insertItems(ctx, tx, b)
}

// UpdateBundle rewrites the member list along with the bundle row.
func (r *CatalogRepository) UpdateBundle(ctx context.Context, tx sqlc.DBTX, b *catalog.Bundle) error {
	rows, err := r.queries.UpdateBundle(ctx, tx, converter.BundleToUpdateParams(b))
	if err := expectAffected(rows, err, "bundle"); err != nil {
		return err
	}
	if err := r.queries.DeleteBundleItems(ctx, tx, b.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear bundle items", err)
	}
	return r.insertItems(ctx, tx, b)
}

func (r *CatalogRepository) insertItems(ctx context.Context, tx sqlc.DBTX, b *catalog.Bundle) error {
	for i, productID := range b.ProductIDs() {
		err := r.queries.InsertBundleItem(ctx, tx, sqlc.InsertBundleItemParams{
			BundleID:  b.ID(),
			ProductID: productID,
			Position:  int32(i),
		})
		if err != nil {
			return infra.WrapRepoErr("failed to insert bundle item", err)
		}
	}
	return nil
}

func (r *CatalogRepository) DeleteBundle(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	rows, err := r.queries.DeleteBundle(ctx, tx, id)
	return expectAffected(rows, err, "bundle")
}

func (r *CatalogRepository) FindBundleByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*catalog.Bundle, error) {
	row, err := r.queries.FindBundleByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("bundle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find bundle", err)
	}
	items, err := r.queries.ListBundleItems(ctx, db, []uuid.UUID{id})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bundle items", err)
	}
	return converter.BundleFromRow(row, items), nil
}

func (r *CatalogRepository) FindBundlesByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) (map[uuid.UUID]*catalog.Bundle, error) {
	out := make(map[uuid.UUID]*catalog.Bundle, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.queries.ListBundlesByIDs(ctx, db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bundles", err)
	}
	items, err := r.queries.ListBundleItems(ctx, db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bundle items", err)
	}
	byBundle := converter.GroupBundleItems(items)
	for _, row := range rows {
		out[row.ID] = converter.BundleFromRow(row, byBundle[row.ID])
	}
	return out, nil
}
