//go:build unit

package cart_test

import (
	"testing"
	"time"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/catalog"
	"storefront/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(t *testing.T, name string, price int64, active bool) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(uuid.New(), catalog.ProductParams{
		Name: name, Price: pricing.NewMoney(price), Stock: 10, Active: active,
	}, time.Now())
	require.NoError(t, err)
	return p
}

func TestCart_Lines(t *testing.T) {
	mug := newProduct(t, "Mug", 500, true)
	tee := newProduct(t, "Tee", 900, true)
	retired := newProduct(t, "Old Poster", 300, false)
	pair := newBundle(t, true, mug.ID(), tee.ID())
	pairID := pair.ID()
	gone := uuid.New()

	c := cart.New(uuid.New(), []cart.Item{
		{ProductID: mug.ID(), Quantity: 2},
		{ProductID: mug.ID(), BundleID: &pairID, Quantity: 1},
		{ProductID: tee.ID(), BundleID: &pairID, Quantity: 1},
		{ProductID: retired.ID(), Quantity: 1},
		{ProductID: gone, Quantity: 1},
	})
	cat := cart.Catalog{
		Products: map[uuid.UUID]*catalog.Product{mug.ID(): mug, tee.ID(): tee, retired.ID(): retired},
		Bundles:  map[uuid.UUID]*catalog.Bundle{pairID: pair},
	}

	lines, rules, unavailable := c.Lines(cat)

	require.Len(t, lines, 3)
	assert.Equal(t, pricing.NewMoney(500), lines[0].UnitPrice)
	assert.Nil(t, lines[0].BundleID)
	assert.Contains(t, rules, pairID)
	require.Len(t, unavailable, 2)
	assert.Equal(t, cart.ReasonProductInactive, unavailable[0].Reason)
	assert.Equal(t, cart.ReasonProductMissing, unavailable[1].Reason)
	assert.ElementsMatch(t, []uuid.UUID{mug.ID(), tee.ID(), retired.ID(), gone}, c.ProductIDs())
	assert.Equal(t, []uuid.UUID{pairID}, c.BundleIDs())
}

func TestCart_LinesInactiveBundle(t *testing.T) {
	mug := newProduct(t, "Mug", 500, true)
	tee := newProduct(t, "Tee", 900, true)
	pair := newBundle(t, false, mug.ID(), tee.ID())
	pairID := pair.ID()

	c := cart.New(uuid.New(), []cart.Item{{ProductID: mug.ID(), BundleID: &pairID, Quantity: 1}})
	lines, rules, unavailable := c.Lines(cart.Catalog{
		Products: map[uuid.UUID]*catalog.Product{mug.ID(): mug},
		Bundles:  map[uuid.UUID]*catalog.Bundle{pairID: pair},
	})

	assert.Empty(t, lines)
	assert.Empty(t, rules)
	require.Len(t, unavailable, 1)
	assert.Equal(t, cart.ReasonBundleInactive, unavailable[0].Reason)
}
