package response

import (
	"time"

	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// ProductResponse is the storefront shape of a product, with display flags derived from stock and pricing.
type ProductResponse struct {
	ID                  uuid.UUID  `json:"id"`
	CategoryID          *uuid.UUID `json:"category_id,omitempty"`
	Name                string     `json:"name"`
	Slug                string     `json:"slug"`
	Description         string     `json:"description"`
	PriceCents          int64      `json:"price_cents"`
	CompareAtPriceCents *int64     `json:"compare_at_price_cents,omitempty"`
	Stock               int32      `json:"stock"`
	ImageURL            string     `json:"image_url"`
	Active              bool       `json:"active"`
	InStock             bool       `json:"in_stock"`
	OnSale              bool       `json:"on_sale"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func FromProductView(v *queries.ProductView) (*ProductResponse, error) {
	var out ProductResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	out.InStock = v.Stock > 0
	out.OnSale = v.CompareAtPriceCents != nil && *v.CompareAtPriceCents > v.PriceCents
	return &out, nil
}

func FromProductViews(views []*queries.ProductView) ([]*ProductResponse, error) {
	out := make([]*ProductResponse, 0, len(views))
	for _, v := range views {
		p, err := FromProductView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

type StockResponse struct {
	ProductID uuid.UUID `json:"product_id"`
	Stock     int32     `json:"stock"`
}
