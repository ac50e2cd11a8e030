package cart

import (
	"storefront/internal/domain/catalog"
	"storefront/internal/domain/pricing"

	"github.com/google/uuid"
)

type UnavailableReason string

const (
	ReasonProductMissing  UnavailableReason = "product_missing"
	ReasonProductInactive UnavailableReason = "product_inactive"
	ReasonBundleMissing   UnavailableReason = "bundle_missing"
	ReasonBundleInactive  UnavailableReason = "bundle_inactive"
)

// Unavailable is a cart row that cannot be priced right now.
type Unavailable struct {
	Item   Item
	Reason UnavailableReason
}

// Catalog is the slice of catalog data a cart needs to be priced.
type Catalog struct {
	Products map[uuid.UUID]*catalog.Product
	Bundles  map[uuid.UUID]*catalog.Bundle
}

// ProductIDs and BundleIDs list what to load into a Catalog for this cart.
func (c *Cart) ProductIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c.items))
	seen := make(map[uuid.UUID]struct{}, len(c.items))
	for _, it := range c.items {
		if _, ok := seen[it.ProductID]; ok {
			continue
		}
		seen[it.ProductID] = struct{}{}
		ids = append(ids, it.ProductID)
	}
	return ids
}

func (c *Cart) BundleIDs() []uuid.UUID {
	var ids []uuid.UUID
	seen := make(map[uuid.UUID]struct{})
	for _, it := range c.items {
		if it.BundleID == nil {
			continue
		}
		if _, ok := seen[*it.BundleID]; ok {
			continue
		}
		seen[*it.BundleID] = struct{}{}
		ids = append(ids, *it.BundleID)
	}
	return ids
}

// Lines turns cart rows into pricing lines at current catalog prices.
// Rows whose product or bundle is gone or inactive are reported instead of priced.
func (c *Cart) Lines(cat Catalog) ([]pricing.Line, map[uuid.UUID]pricing.BundleRule, []Unavailable) {
	lines := make([]pricing.Line, 0, len(c.items))
	rules := make(map[uuid.UUID]pricing.BundleRule)
	var unavailable []Unavailable

	for _, it := range c.items {
		p, ok := cat.Products[it.ProductID]
		switch {
		case !ok:
			unavailable = append(unavailable, Unavailable{Item: it, Reason: ReasonProductMissing})
			continue
		case !p.Active():
			unavailable = append(unavailable, Unavailable{Item: it, Reason: ReasonProductInactive})
			continue
		}

		if it.BundleID != nil {
			b, ok := cat.Bundles[*it.BundleID]
			switch {
			case !ok:
				unavailable = append(unavailable, Unavailable{Item: it, Reason: ReasonBundleMissing})
				continue
			case !b.Active():
				unavailable = append(unavailable, Unavailable{Item: it, Reason: ReasonBundleInactive})
				continue
			}
			rules[b.ID()] = b.Rule()
		}

		lines = append(lines, pricing.Line{
			ProductID:  p.ID(),
			CategoryID: p.CategoryID(),
			Name:       p.Name().String(),
			UnitPrice:  p.Price(),
			Quantity:   it.Quantity,
			BundleID:   it.BundleID,
		})
	}
	return lines, rules, unavailable
}
