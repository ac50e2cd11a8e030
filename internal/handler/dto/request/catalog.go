package request

import (
	"storefront/internal/domain/catalog"
	"storefront/internal/domain/pricing"
	"storefront/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ListProductsQuery struct {
	CategoryID *uuid.UUID `form:"category_id"`
	Search     string     `form:"q" binding:"max=100"`
	Cursor     string     `form:"cursor"`
	Limit      int        `form:"limit" binding:"omitempty,min=1,max=100"`
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Slug string `json:"slug" binding:"max=120"`
}

type ProductRequest struct {
	CategoryID          *uuid.UUID `json:"category_id,omitempty"`
	Name                string     `json:"name" binding:"required,max=200"`
	Slug                string     `json:"slug" binding:"max=220"`
	Description         string     `json:"description" binding:"max=5000"`
	PriceCents          int64      `json:"price_cents" binding:"required"`
	CompareAtPriceCents *int64     `json:"compare_at_price_cents,omitempty"`
	Stock               int32      `json:"stock" binding:"min=0"`
	ImageURL            string     `json:"image_url" binding:"omitempty,url"`
	Active              *bool      `json:"active,omitempty"`
}

func (r ProductRequest) ToParams() catalog.ProductParams {
	return catalog.ProductParams{
		CategoryID:     r.CategoryID,
		Name:           r.Name,
		Slug:           r.Slug,
		Description:    r.Description,
		Price:          pricing.NewMoney(r.PriceCents),
		CompareAtPrice: patch.Map(r.CompareAtPriceCents, pricing.NewMoney),
		Stock:          r.Stock,
		ImageURL:       r.ImageURL,
		Active:         patch.Coalesce(r.Active, true),
	}
}

type AdjustStockRequest struct {
	Delta int32 `json:"delta" binding:"required"`
}

type BundleRequest struct {
	Name           string           `json:"name" binding:"required,max=200"`
	Slug           string           `json:"slug" binding:"max=220"`
	Mode           string           `json:"mode" binding:"required,oneof=flat percentage fixed"`
	PercentOff     *decimal.Decimal `json:"percent_off,omitempty"`
	AmountOffCents *int64           `json:"amount_off_cents,omitempty"`
	ProductIDs     []uuid.UUID      `json:"product_ids" binding:"required,min=2"`
	Active         *bool            `json:"active,omitempty"`
}

func (r BundleRequest) ToParams() catalog.BundleParams {
	return catalog.BundleParams{
		Name:       r.Name,
		Slug:       r.Slug,
		Mode:       pricing.BundleMode(r.Mode),
		PercentOff: r.PercentOff,
		AmountOff:  patch.Map(r.AmountOffCents, pricing.NewMoney),
		ProductIDs: r.ProductIDs,
		Active:     patch.Coalesce(r.Active, true),
	}
}
