package readstore

import (
	"context"

	"storefront/internal/infra"
	"storefront/internal/infra/sqlc"
	"storefront/internal/pkg/pgconv"
	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type CatalogReadQueries interface {
	ListCategories(ctx context.Context, db sqlc.DBTX) ([]sqlc.Categories, error)
	ListProducts(ctx context.Context, db sqlc.DBTX, arg sqlc.ListProductsParams) ([]sqlc.Products, error)
	FindProductByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Products, error)
	FindProductBySlug(ctx context.Context, db sqlc.DBTX, slug string) (sqlc.Products, error)
	ListProductsByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.Products, error)
	ListBundles(ctx context.Context, db sqlc.DBTX, activeOnly bool) ([]sqlc.Bundles, error)
	ListBundleItems(ctx context.Context, db sqlc.DBTX, bundleIds []uuid.UUID) ([]sqlc.BundleItems, error)
}

type CatalogReadStore struct {
	queries CatalogReadQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogReadQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{queries: queries, db: db}
}

func (r *CatalogReadStore) ListCategories(ctx context.Context) ([]*queries.CategoryView, error) {
	rows, err := r.queries.ListCategories(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}
	out := make([]*queries.CategoryView, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.CategoryView{
			ID:        row.ID,
			Name:      row.Name,
			Slug:      row.Slug,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return out, nil
}

func (r *CatalogReadStore) ListProducts(ctx context.Context, filter queries.ProductFilter, after *queries.Keyset, limit int32) ([]*queries.ProductView, error) {
	params := sqlc.ListProductsParams{
		CategoryID: pgconv.UUIDPtrToPgtype(filter.CategoryID),
		Search:     pgconv.StringPtrToPgtype(filter.Search),
		ActiveOnly: filter.ActiveOnly,
		Limit:      limit,
	}
	params.AfterCreatedAt, params.AfterID = afterParams(after)

	rows, err := r.queries.ListProducts(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	out := make([]*queries.ProductView, 0, len(rows))
	for _, row := range rows {
		v := toProductView(row)
		out = append(out, &v)
	}
	return out, nil
}

func (r *CatalogReadStore) FindProductByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	row, err := r.queries.FindProductByID(ctx, r.db, id)
	return r.oneProduct(row, err)
}

func (r *CatalogReadStore) FindProductBySlug(ctx context.Context, slug string) (*queries.ProductView, error) {
	row, err := r.queries.FindProductBySlug(ctx, r.db, slug)
	return r.oneProduct(row, err)
}

func (r *CatalogReadStore) oneProduct(row sqlc.Products, err error) (*queries.ProductView, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product", err)
	}
	v := toProductView(row)
	return &v, nil
}

// ListBundles loads bundles with their member products in three queries.
func (r *CatalogReadStore) ListBundles(ctx context.Context, activeOnly bool) ([]*queries.BundleView, error) {
	bundles, err := r.queries.ListBundles(ctx, r.db, activeOnly)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bundles", err)
	}
	if len(bundles) == 0 {
		return []*queries.BundleView{}, nil
	}

	ids := make([]uuid.UUID, 0, len(bundles))
	for _, b := range bundles {
		ids = append(ids, b.ID)
	}
	items, err := r.queries.ListBundleItems(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bundle items", err)
	}

	productIDs := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		productIDs = append(productIDs, it.ProductID)
	}
	products, err := r.queries.ListProductsByIDs(ctx, r.db, productIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bundle products", err)
	}
	byID := make(map[uuid.UUID]sqlc.Products, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	members := make(map[uuid.UUID][]queries.ProductView, len(bundles))
	for _, it := range items {
		if p, ok := byID[it.ProductID]; ok {
			members[it.BundleID] = append(members[it.BundleID], toProductView(p))
		}
	}

	out := make([]*queries.BundleView, 0, len(bundles))
	for _, b := range bundles {
		out = append(out, &queries.BundleView{
			ID:             b.ID,
			Name:           b.Name,
			Slug:           b.Slug,
			Mode:           b.Mode,
			PercentOff:     pgconv.DecimalPtrFromNumeric(b.PercentOff),
			AmountOffCents: pgconv.Int64PtrFromPgtype(b.AmountOffCents),
			Active:         b.Active,
			Products:       members[b.ID],
			CreatedAt:      pgconv.TimeFromPgtype(b.CreatedAt),
		})
	}
	return out, nil
}

func toProductView(row sqlc.Products) queries.ProductView {
	return queries.ProductView{
		ID:                  row.ID,
		CategoryID:          pgconv.UUIDPtrFromPgtype(row.CategoryID),
		Name:                row.Name,
		Slug:                row.Slug,
		Description:         row.Description,
		PriceCents:          row.PriceCents,
		CompareAtPriceCents: pgconv.Int64PtrFromPgtype(row.CompareAtCents),
		Stock:               row.Stock,
		ImageURL:            row.ImageUrl,
		Active:              row.Active,
		CreatedAt:           pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:           pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
