package catalog

import (
	"strings"
	"time"

	"storefront/internal/domain/pricing"

	"github.com/google/uuid"
)

type ProductParams struct {
	CategoryID     *uuid.UUID
	Name           string
	Slug           string
	Description    string
	Price          pricing.Money
	CompareAtPrice *pricing.Money
	Stock          int32
	ImageURL       string
	Active         bool
}

type Product struct {
	id             uuid.UUID
	categoryID     *uuid.UUID
	name           Name
	slug           Slug
	description    string
	price          pricing.Money
	compareAtPrice *pricing.Money
	stock          int32
	imageURL       string
	active         bool
	createdAt      time.Time
	updatedAt      time.Time
}

func NewProduct(id uuid.UUID, p ProductParams, now time.Time) (*Product, error) {
	if id == uuid.Nil {
		id = uuid.New()
	}
	prod := &Product{id: id, createdAt: now}
	if err := prod.apply(p, now); err != nil {
		return nil, err
	}
	return prod, nil
}

func ReconstructProduct(id uuid.UUID, p ProductParams, createdAt, updatedAt time.Time) *Product {
	return &Product{
		id:             id,
		categoryID:     p.CategoryID,
		name:           Name(p.Name),
		slug:           Slug(p.Slug),
		description:    p.Description,
		price:          p.Price,
		compareAtPrice: p.CompareAtPrice,
		stock:          p.Stock,
		imageURL:       p.ImageURL,
		active:         p.Active,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (p *Product) Update(params ProductParams, now time.Time) error {
	next := *p
	if err := next.apply(params, now); err != nil {
		return err
	}
	*p = next
	return nil
}

func (p *Product) apply(params ProductParams, now time.Time) error {
	name, err := NewName(params.Name)
	if err != nil {
		return err
	}
	slug, err := slugOrDerive(params.Slug, name)
	if err != nil {
		return err
	}
	if !params.Price.IsPositive() {
		return ErrInvalidPrice
	}
	if params.CompareAtPrice != nil && !params.CompareAtPrice.GreaterOrEqual(params.Price.Add(pricing.NewMoney(1))) {
		return ErrInvalidCompareAt
	}
	if params.Stock < 0 {
		return ErrNegativeStock
	}
	desc := strings.TrimSpace(params.Description)
	if len(desc) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}

	p.categoryID = params.CategoryID
	p.name = name
	p.slug = slug
	p.description = desc
	p.price = params.Price
	p.compareAtPrice = params.CompareAtPrice
	p.stock = params.Stock
	p.imageURL = strings.TrimSpace(params.ImageURL)
	p.active = params.Active
	p.updatedAt = now
	return nil
}

// AdjustStock applies a signed delta, refusing to go negative.
func (p *Product) AdjustStock(delta int32, now time.Time) error {
	if p.stock+delta < 0 {
		return ErrInsufficientStock
	}
	p.stock += delta
	p.updatedAt = now
	return nil
}

func (p *Product) InStock(qty int) bool {
	return p.active && int(p.stock) >= qty
}

func (p *Product) ID() uuid.UUID                  { return p.id }
func (p *Product) CategoryID() *uuid.UUID         { return p.categoryID }
func (p *Product) Name() Name                     { return p.name }
func (p *Product) Slug() Slug                     { return p.slug }
func (p *Product) Description() string            { return p.description }
func (p *Product) Price() pricing.Money           { return p.price }
func (p *Product) CompareAtPrice() *pricing.Money { return p.compareAtPrice }
func (p *Product) Stock() int32                   { return p.stock }
func (p *Product) ImageURL() string               { return p.imageURL }
func (p *Product) Active() bool                   { return p.active }
func (p *Product) CreatedAt() time.Time           { return p.createdAt }
func (p *Product) UpdatedAt() time.Time           { return p.updatedAt }
