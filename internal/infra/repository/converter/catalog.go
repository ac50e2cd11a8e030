package converter

import (
	"storefront/internal/domain/catalog"
	"storefront/internal/domain/pricing"
	"storefront/internal/infra/sqlc"
	"storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func CategoryToCreateParams(c *catalog.Category) sqlc.CreateCategoryParams {
	return sqlc.CreateCategoryParams{
		ID:        c.ID(),
		Name:      c.Name().String(),
		Slug:      c.Slug().String(),
		CreatedAt: pgconv.TimeToPgtype(c.CreatedAt()),
	}
}

func CategoryToUpdateParams(c *catalog.Category) sqlc.UpdateCategoryParams {
	return sqlc.UpdateCategoryParams{
		ID:   c.ID(),
		Name: c.Name().String(),
		Slug: c.Slug().String(),
	}
}

func CategoryFromRow(row sqlc.Categories) *catalog.Category {
	return catalog.ReconstructCategory(row.ID, row.Name, row.Slug, pgconv.TimeFromPgtype(row.CreatedAt))
}

func ProductToCreateParams(p *catalog.Product) sqlc.CreateProductParams {
	return sqlc.CreateProductParams{
		ID:             p.ID(),
		CategoryID:     pgconv.UUIDPtrToPgtype(p.CategoryID()),
		Name:           p.Name().String(),
		Slug:           p.Slug().String(),
		Description:    p.Description(),
		PriceCents:     p.Price().Cents(),
		CompareAtCents: moneyPtrToInt8(p.CompareAtPrice()),
		Stock:          p.Stock(),
		ImageUrl:       p.ImageURL(),
		Active:         p.Active(),
		CreatedAt:      pgconv.TimeToPgtype(p.CreatedAt()),
	}
}

// ProductToUpdateParams leaves stock alone; stock only moves through AdjustProductStock.
func ProductToUpdateParams(p *catalog.Product) sqlc.UpdateProductParams {
	return sqlc.UpdateProductParams{
		ID:             p.ID(),
		CategoryID:     pgconv.UUIDPtrToPgtype(p.CategoryID()),
		Name:           p.Name().String(),
		Slug:           p.Slug().String(),
		Description:    p.Description(),
		PriceCents:     p.Price().Cents(),
		CompareAtCents: moneyPtrToInt8(p.CompareAtPrice()),
		ImageUrl:       p.ImageURL(),
		Active:         p.Active(),
		UpdatedAt:      pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func ProductFromRow(row sqlc.Products) *catalog.Product {
	return catalog.ReconstructProduct(row.ID, catalog.ProductParams{
		CategoryID:     pgconv.UUIDPtrFromPgtype(row.CategoryID),
		Name:           row.Name,
		Slug:           row.Slug,
		Description:    row.Description,
		Price:          pricing.NewMoney(row.PriceCents),
		CompareAtPrice: moneyPtrFromInt8(row.CompareAtCents),
		Stock:          row.Stock,
		ImageURL:       row.ImageUrl,
		Active:         row.Active,
	}, pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt))
}

func BundleToCreateParams(b *catalog.Bundle) sqlc.CreateBundleParams {
	return sqlc.CreateBundleParams{
		ID:             b.ID(),
		Name:           b.Name().String(),
		Slug:           b.Slug().String(),
		Mode:           string(b.Mode()),
		PercentOff:     pgconv.DecimalPtrToNumeric(b.PercentOff()),
		AmountOffCents: moneyPtrToInt8(b.AmountOff()),
		Active:         b.Active(),
		CreatedAt:      pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BundleToUpdateParams(b *catalog.Bundle) sqlc.UpdateBundleParams {
	return sqlc.UpdateBundleParams{
		ID:             b.ID(),
		Name:           b.Name().String(),
		Slug:           b.Slug().String(),
		Mode:           string(b.Mode()),
		PercentOff:     pgconv.DecimalPtrToNumeric(b.PercentOff()),
		AmountOffCents: moneyPtrToInt8(b.AmountOff()),
		Active:         b.Active(),
		UpdatedAt:      pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

// BundleFromRow needs the member rows of this bundle in position order.
func BundleFromRow(row sqlc.Bundles, items []sqlc.BundleItems) *catalog.Bundle {
	ids := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		if it.BundleID == row.ID {
			ids = append(ids, it.ProductID)
		}
	}
	return catalog.ReconstructBundle(row.ID, catalog.BundleParams{
		Name:       row.Name,
		Slug:       row.Slug,
		Mode:       pricing.BundleMode(row.Mode),
		PercentOff: pgconv.DecimalPtrFromNumeric(row.PercentOff),
		AmountOff:  moneyPtrFromInt8(row.AmountOffCents),
		ProductIDs: ids,
		Active:     row.Active,
	}, pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt))
}

// GroupBundleItems indexes member rows by bundle id.
func GroupBundleItems(items []sqlc.BundleItems) map[uuid.UUID][]sqlc.BundleItems {
	out := make(map[uuid.UUID][]sqlc.BundleItems)
	for _, it := range items {
		out[it.BundleID] = append(out[it.BundleID], it)
	}
	return out
}

func moneyPtrToInt8(m *pricing.Money) pgtype.Int8 {
	if m == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: m.Cents(), Valid: true}
}

func moneyPtrFromInt8(v pgtype.Int8) *pricing.Money {
	if !v.Valid {
		return nil
	}
	m := pricing.NewMoney(v.Int64)
	return &m
}
