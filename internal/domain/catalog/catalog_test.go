//go:build unit

package catalog_test

import (
	"testing"
	"time"

	"storefront/internal/domain/catalog"
	"storefront/internal/domain/pricing"
	"storefront/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

func TestSlug(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
	}{
		{"cotton-tee", true},
		{"tee2", true},
		{"a", true},
		{"Cotton-Tee", false},
		{"-tee", false},
		{"tee-", false},
		{"tee--shirt", false},
		{"tee shirt", false},
		{"", false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			_, err := catalog.NewSlug(tc.in)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, catalog.ErrInvalidSlug)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "summer-sale-2025", catalog.Slugify("  Summer Sale -- 2025! "))
	assert.Equal(t, "tee", catalog.Slugify("Tee"))
}

func TestNewCategory_DerivesSlug(t *testing.T) {
	c, err := catalog.NewCategory(uuid.Nil, "Home & Living", "", now)
	require.NoError(t, err)
	assert.Equal(t, "home-living", c.Slug().String())
}

func productParams() catalog.ProductParams {
	return catalog.ProductParams{
		Name:   "Cotton Tee",
		Slug:   "cotton-tee",
		Price:  pricing.NewMoney(79900),
		Stock:  10,
		Active: true,
	}
}

func TestNewProduct(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(p *catalog.ProductParams)
		errIs  error
	}{
		{name: "valid", mutate: func(p *catalog.ProductParams) {}},
		{name: "zero price", mutate: func(p *catalog.ProductParams) { p.Price = pricing.Zero() }, errIs: catalog.ErrInvalidPrice},
		{name: "negative stock", mutate: func(p *catalog.ProductParams) { p.Stock = -1 }, errIs: catalog.ErrNegativeStock},
		{name: "blank name", mutate: func(p *catalog.ProductParams) { p.Name = " " }, errIs: catalog.ErrInvalidName},
		{name: "bad slug", mutate: func(p *catalog.ProductParams) { p.Slug = "Bad Slug" }, errIs: catalog.ErrInvalidSlug},
		{
			name:   "compare-at equal to price",
			mutate: func(p *catalog.ProductParams) { p.CompareAtPrice = ptr.To(pricing.NewMoney(79900)) },
			errIs:  catalog.ErrInvalidCompareAt,
		},
		{
			name:   "compare-at above price",
			mutate: func(p *catalog.ProductParams) { p.CompareAtPrice = ptr.To(pricing.NewMoney(99900)) },
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := productParams()
			tc.mutate(&p)
			prod, err := catalog.NewProduct(uuid.Nil, p, now)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				require.Nil(t, prod)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, prod.ID())
		})
	}
}

func TestProduct_AdjustStock(t *testing.T) {
	prod, err := catalog.NewProduct(uuid.Nil, productParams(), now)
	require.NoError(t, err)

	require.NoError(t, prod.AdjustStock(-10, now))
	assert.Equal(t, int32(0), prod.Stock())
	assert.False(t, prod.InStock(1))

	require.ErrorIs(t, prod.AdjustStock(-1, now), catalog.ErrInsufficientStock)
	assert.Equal(t, int32(0), prod.Stock())

	require.NoError(t, prod.AdjustStock(5, now))
	assert.True(t, prod.InStock(5))
}

func TestNewBundle(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	cases := []struct {
		name   string
		params catalog.BundleParams
		errIs  error
	}{
		{
			name:   "percentage",
			params: catalog.BundleParams{Name: "Duo", Mode: pricing.BundleModePercentage, PercentOff: ptr.To(decimal.NewFromInt(15)), ProductIDs: []uuid.UUID{a, b}},
		},
		{
			name:   "flat ignores values",
			params: catalog.BundleParams{Name: "Duo", Mode: pricing.BundleModeFlat, ProductIDs: []uuid.UUID{a, b}},
		},
		{
			name:   "percentage missing",
			params: catalog.BundleParams{Name: "Duo", Mode: pricing.BundleModePercentage, ProductIDs: []uuid.UUID{a, b}},
			errIs:  catalog.ErrInvalidPercent,
		},
		{
			name:   "fixed negative",
			params: catalog.BundleParams{Name: "Duo", Mode: pricing.BundleModeFixed, AmountOff: ptr.To(pricing.NewMoney(-1)), ProductIDs: []uuid.UUID{a, b}},
			errIs:  catalog.ErrInvalidAmount,
		},
		{
			name:   "duplicate products do not count twice",
			params: catalog.BundleParams{Name: "Duo", Mode: pricing.BundleModeFlat, ProductIDs: []uuid.UUID{a, a}},
			errIs:  catalog.ErrBundleTooSmall,
		},
		{
			name:   "unknown mode",
			params: catalog.BundleParams{Name: "Duo", Mode: "bogo", ProductIDs: []uuid.UUID{a, b}},
			errIs:  catalog.ErrInvalidBundleMode,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bundle, err := catalog.NewBundle(uuid.Nil, tc.params, now)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "duo", bundle.Slug().String())
			assert.True(t, bundle.Contains(a))
		})
	}
}

func TestBundle_Rule(t *testing.T) {
	bundle, err := catalog.NewBundle(uuid.Nil, catalog.BundleParams{
		Name:       "Gift Set",
		Mode:       pricing.BundleModeFixed,
		AmountOff:  ptr.To(pricing.NewMoney(10000)),
		ProductIDs: []uuid.UUID{uuid.New(), uuid.New()},
	}, now)
	require.NoError(t, err)

	rule := bundle.Rule()
	assert.Equal(t, bundle.ID(), rule.ID)
	assert.Equal(t, pricing.BundleModeFixed, rule.Mode)
	assert.Equal(t, int64(10000), rule.AmountOff.Cents())
	assert.True(t, rule.PercentOff.IsZero())
}
