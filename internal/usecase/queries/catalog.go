package queries

import (
	"context"
	"time"

	"storefront/internal/infra"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrProductNotFound = errs.NewCategorized("product not found", errs.ErrNotFound)

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog.go -package=queriesmock

type CatalogReadStore interface {
	ListCategories(ctx context.Context) ([]*CategoryView, error)
	ListProducts(ctx context.Context, filter ProductFilter, after *Keyset, limit int32) ([]*ProductView, error)
	FindProductByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	FindProductBySlug(ctx context.Context, slug string) (*ProductView, error)
	ListBundles(ctx context.Context, activeOnly bool) ([]*BundleView, error)
}

type CatalogQueries interface {
	ListCategories(ctx context.Context) ([]*CategoryView, error)
	ListProducts(ctx context.Context, filter ProductFilter, cursor *Cursor, limit int) ([]*ProductView, *Cursor, error)
	// GetProduct accepts either a product id or its slug.
	GetProduct(ctx context.Context, idOrSlug string, includeInactive bool) (*ProductView, error)
	ListBundles(ctx context.Context, activeOnly bool) ([]*BundleView, error)
}

type catalogQueriesImpl struct {
	readStore CatalogReadStore
}

func NewCatalogQueries(readStore CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{readStore: readStore}
}

func (q *catalogQueriesImpl) ListCategories(ctx context.Context) ([]*CategoryView, error) {
	return q.readStore.ListCategories(ctx)
}

func (q *catalogQueriesImpl) ListProducts(ctx context.Context, filter ProductFilter, cursor *Cursor, limit int) ([]*ProductView, *Cursor, error) {
	fetch := func(after *Keyset, n int32) ([]*ProductView, error) {
		return q.readStore.ListProducts(ctx, filter, after, n)
	}
	return page(limit, cursor, fetch, func(p *ProductView) (time.Time, uuid.UUID) { return p.CreatedAt, p.ID })
}

func (q *catalogQueriesImpl) GetProduct(ctx context.Context, idOrSlug string, includeInactive bool) (*ProductView, error) {
	var (
		p   *ProductView
		err error
	)
	if id, perr := uuid.Parse(idOrSlug); perr == nil {
		p, err = q.readStore.FindProductByID(ctx, id)
	} else {
		p, err = q.readStore.FindProductBySlug(ctx, idOrSlug)
	}
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if !p.Active && !includeInactive {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (q *catalogQueriesImpl) ListBundles(ctx context.Context, activeOnly bool) ([]*BundleView, error) {
	bundles, err := q.readStore.ListBundles(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	if !activeOnly {
		return bundles, nil
	}
	// a public bundle only shows while every member product is on sale
	out := bundles[:0]
	for _, b := range bundles {
		if allActive(b.Products) {
			out = append(out, b)
		}
	}
	return out, nil
}

func allActive(products []ProductView) bool {
	for _, p := range products {
		if !p.Active {
			return false
		}
	}
	return len(products) > 0
}
