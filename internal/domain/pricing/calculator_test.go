//go:build unit

package pricing_test

import (
	"math/rand/v2"
	"testing"

	"storefront/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	catA = uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	catB = uuid.MustParse("00000000-0000-0000-0000-00000000000b")

	p1 = uuid.MustParse("10000000-0000-0000-0000-000000000001")
	p2 = uuid.MustParse("10000000-0000-0000-0000-000000000002")
	p3 = uuid.MustParse("10000000-0000-0000-0000-000000000003")

	bundleID = uuid.MustParse("20000000-0000-0000-0000-000000000001")
)

func policy() pricing.ShippingPolicy {
	return pricing.ShippingPolicy{
		FlatFee:       pricing.NewMoney(4900),
		FreeThreshold: pricing.NewMoney(99900),
	}
}

func line(product uuid.UUID, category uuid.UUID, price int64, qty int) pricing.Line {
	c := category
	return pricing.Line{ProductID: product, CategoryID: &c, UnitPrice: pricing.NewMoney(price), Quantity: qty}
}

func bundled(l pricing.Line, id uuid.UUID) pricing.Line {
	b := id
	l.BundleID = &b
	return l
}

func pct(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func rules(r ...pricing.BundleRule) map[uuid.UUID]pricing.BundleRule {
	m := make(map[uuid.UUID]pricing.BundleRule, len(r))
	for _, rule := range r {
		m[rule.ID] = rule
	}
	return m
}

type expected struct {
	subtotal, shipping, eligible, discount, total int64
	reason                                        pricing.FreeShippingReason
}

type quoteCase struct {
	name    string
	lines   []pricing.Line
	bundles map[uuid.UUID]pricing.BundleRule
	coupon  *pricing.CouponTerms
	want    expected
	errIs   error
}

func runQuoteCases(t *testing.T, cases []quoteCase) {
	t.Helper()
	calc := pricing.NewCalculator(policy())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := calc.Quote(tc.lines, tc.bundles, tc.coupon)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want.subtotal, q.Subtotal.Cents(), "subtotal")
			assert.Equal(t, tc.want.shipping, q.Shipping.Cents(), "shipping")
			assert.Equal(t, tc.want.eligible, q.EligibleAmount.Cents(), "eligible")
			assert.Equal(t, tc.want.discount, q.Discount.Cents(), "discount")
			assert.Equal(t, tc.want.total, q.Total.Cents(), "total")
			assert.Equal(t, tc.want.reason, q.FreeShippingReason, "free shipping reason")
		})
	}
}

func TestQuote_SubtotalAndShipping(t *testing.T) {
	runQuoteCases(t, []quoteCase{
		{
			name: "empty cart has no shipping",
			want: expected{},
		},
		{
			name:  "standalone lines pay flat shipping",
			lines: []pricing.Line{line(p1, catA, 20000, 2)},
			want:  expected{subtotal: 40000, shipping: 4900, total: 44900},
		},
		{
			name:  "threshold reached waives shipping",
			lines: []pricing.Line{line(p1, catA, 20000, 5)},
			want:  expected{subtotal: 100000, shipping: 0, total: 100000, reason: pricing.FreeShippingThreshold},
		},
		{
			name:  "one paisa below threshold still pays",
			lines: []pricing.Line{line(p1, catA, 99899, 1)},
			want:  expected{subtotal: 99899, shipping: 4900, total: 104799},
		},
		{
			name:  "exactly at threshold is free",
			lines: []pricing.Line{line(p1, catA, 99900, 1)},
			want:  expected{subtotal: 99900, shipping: 0, total: 99900, reason: pricing.FreeShippingThreshold},
		},
		{
			name:  "zero quantity rejected",
			lines: []pricing.Line{line(p1, catA, 20000, 0)},
			errIs: pricing.ErrInvalidQuantity,
		},
		{
			name:  "negative price rejected",
			lines: []pricing.Line{line(p1, catA, -1, 1)},
			errIs: pricing.ErrNegativePrice,
		},
	})
}

func TestQuote_Bundles(t *testing.T) {
	members := []pricing.Line{
		bundled(line(p2, catB, 15000, 1), bundleID),
		bundled(line(p3, catA, 30000, 1), bundleID),
	}

	runQuoteCases(t, []quoteCase{
		{
			name:    "flat bundle passes member prices through",
			lines:   members,
			bundles: rules(pricing.BundleRule{ID: bundleID, Mode: pricing.BundleModeFlat}),
			want:    expected{subtotal: 45000, shipping: 4900, total: 49900},
		},
		{
			name:    "percentage bundle with a standalone line",
			lines:   append([]pricing.Line{line(p1, catA, 20000, 1)}, members...),
			bundles: rules(pricing.BundleRule{ID: bundleID, Mode: pricing.BundleModePercentage, PercentOff: pct(10)}),
			want:    expected{subtotal: 60500, shipping: 4900, total: 65400},
		},
		{
			name:    "fixed bundle is floored at zero",
			lines:   members,
			bundles: rules(pricing.BundleRule{ID: bundleID, Mode: pricing.BundleModeFixed, AmountOff: pricing.NewMoney(100000)}),
			want:    expected{subtotal: 0, shipping: 4900, total: 4900},
		},
		{
			name:    "fixed bundle subtracts the amount",
			lines:   members,
			bundles: rules(pricing.BundleRule{ID: bundleID, Mode: pricing.BundleModeFixed, AmountOff: pricing.NewMoney(5000)}),
			want:    expected{subtotal: 40000, shipping: 4900, total: 44900},
		},
		{
			name:    "quantities multiply inside the group",
			lines:   []pricing.Line{bundled(line(p2, catB, 15000, 2), bundleID), bundled(line(p3, catA, 30000, 2), bundleID)},
			bundles: rules(pricing.BundleRule{ID: bundleID, Mode: pricing.BundleModePercentage, PercentOff: pct(10)}),
			want:    expected{subtotal: 81000, shipping: 4900, total: 85900},
		},
		{
			name:  "line without a bundle rule",
			lines: members,
			errIs: pricing.ErrUnknownBundle,
		},
		{
			name:    "percentage above 100 rejected",
			lines:   members,
			bundles: rules(pricing.BundleRule{ID: bundleID, Mode: pricing.BundleModePercentage, PercentOff: pct(101)}),
			errIs:   pricing.ErrInvalidBundle,
		},
	})
}

func TestQuote_Coupons(t *testing.T) {
	flatBundle := rules(pricing.BundleRule{ID: bundleID, Mode: pricing.BundleModeFlat})

	runQuoteCases(t, []quoteCase{
		{
			name:   "percentage coupon capped",
			lines:  []pricing.Line{line(p1, catA, 20000, 2)},
			coupon: &pricing.CouponTerms{Kind: pricing.CouponKindPercentage, PercentOff: pct(10), MaxDiscount: pricing.NewMoney(3000)},
			want:   expected{subtotal: 40000, shipping: 4900, eligible: 40000, discount: 3000, total: 41900},
		},
		{
			name:   "percentage coupon uncapped",
			lines:  []pricing.Line{line(p1, catA, 20000, 2)},
			coupon: &pricing.CouponTerms{Kind: pricing.CouponKindPercentage, PercentOff: pct(10)},
			want:   expected{subtotal: 40000, shipping: 4900, eligible: 40000, discount: 4000, total: 40900},
		},
		{
			name:   "percentage rounds half away from zero",
			lines:  []pricing.Line{line(p1, catA, 333, 1)},
			coupon: &pricing.CouponTerms{Kind: pricing.CouponKindPercentage, PercentOff: pct(15)},
			want:   expected{subtotal: 333, shipping: 4900, eligible: 333, discount: 50, total: 5183},
		},
		{
			name:   "hundred percent coupon leaves shipping",
			lines:  []pricing.Line{line(p1, catA, 20000, 1)},
			coupon: &pricing.CouponTerms{Kind: pricing.CouponKindPercentage, PercentOff: pct(100)},
			want:   expected{subtotal: 20000, shipping: 4900, eligible: 20000, discount: 20000, total: 4900},
		},
		{
			name:   "fixed coupon never drives total below shipping",
			lines:  []pricing.Line{line(p1, catA, 20000, 1)},
			coupon: &pricing.CouponTerms{Kind: pricing.CouponKindFixed, AmountOff: pricing.NewMoney(50000)},
			want:   expected{subtotal: 20000, shipping: 4900, eligible: 20000, discount: 20000, total: 4900},
		},
		{
			name:   "free shipping coupon waives fee only",
			lines:  []pricing.Line{line(p1, catA, 20000, 1)},
			coupon: &pricing.CouponTerms{Kind: pricing.CouponKindFreeShipping},
			want:   expected{subtotal: 20000, shipping: 0, eligible: 20000, discount: 0, total: 20000, reason: pricing.FreeShippingCoupon},
		},
		{
			name:  "product restriction counts matching lines",
			lines: []pricing.Line{line(p1, catA, 20000, 1), line(p2, catB, 15000, 1)},
			coupon: &pricing.CouponTerms{
				Kind: pricing.CouponKindPercentage, PercentOff: pct(20), ProductIDs: []uuid.UUID{p1},
			},
			want: expected{subtotal: 35000, shipping: 4900, eligible: 20000, discount: 4000, total: 35900},
		},
		{
			name: "category restriction skips bundled lines",
			lines: []pricing.Line{
				bundled(line(p3, catA, 30000, 1), bundleID),
				bundled(line(p2, catB, 15000, 1), bundleID),
				line(p1, catA, 20000, 1),
			},
			bundles: flatBundle,
			coupon: &pricing.CouponTerms{
				Kind: pricing.CouponKindFixed, AmountOff: pricing.NewMoney(5000), CategoryIDs: []uuid.UUID{catA},
			},
			want: expected{subtotal: 65000, shipping: 4900, eligible: 20000, discount: 5000, total: 64900},
		},
		{
			name:  "restricted coupon without matches gives nothing",
			lines: []pricing.Line{line(p2, catB, 15000, 1)},
			coupon: &pricing.CouponTerms{
				Kind: pricing.CouponKindPercentage, PercentOff: pct(50), ProductIDs: []uuid.UUID{p1},
			},
			want: expected{subtotal: 15000, shipping: 4900, eligible: 0, discount: 0, total: 19900},
		},
		{
			name:   "threshold uses pre-discount subtotal",
			lines:  []pricing.Line{line(p1, catA, 100000, 1)},
			coupon: &pricing.CouponTerms{Kind: pricing.CouponKindFixed, AmountOff: pricing.NewMoney(10000)},
			want:   expected{subtotal: 100000, shipping: 0, eligible: 100000, discount: 10000, total: 90000, reason: pricing.FreeShippingThreshold},
		},
		{
			name:   "unknown coupon kind rejected",
			lines:  []pricing.Line{line(p1, catA, 100, 1)},
			coupon: &pricing.CouponTerms{Kind: "bogus"},
			errIs:  pricing.ErrInvalidCouponRef,
		},
	})
}

func TestQuote_AmountToFreeShipping(t *testing.T) {
	calc := pricing.NewCalculator(policy())

	q, err := calc.Quote([]pricing.Line{line(p1, catA, 40000, 1)}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(59900), q.AmountToFreeShipping.Cents())

	q, err = calc.Quote([]pricing.Line{line(p1, catA, 200000, 1)}, nil, nil)
	require.NoError(t, err)
	assert.True(t, q.AmountToFreeShipping.IsZero())
}

func TestQuote_Invariants(t *testing.T) {
	calc := pricing.NewCalculator(policy())
	rng := rand.New(rand.NewPCG(42, 7))
	modes := []pricing.BundleMode{pricing.BundleModeFlat, pricing.BundleModePercentage, pricing.BundleModeFixed}
	kinds := []pricing.CouponKind{pricing.CouponKindPercentage, pricing.CouponKindFixed, pricing.CouponKindFreeShipping}

	for i := 0; i < 500; i++ {
		rule := pricing.BundleRule{
			ID:         bundleID,
			Mode:       modes[rng.IntN(len(modes))],
			PercentOff: pct(rng.Int64N(101)),
			AmountOff:  pricing.NewMoney(rng.Int64N(80000)),
		}
		var lines []pricing.Line
		for j := 0; j < 1+rng.IntN(4); j++ {
			l := line(uuid.New(), catA, rng.Int64N(50000), 1+rng.IntN(3))
			if rng.IntN(2) == 0 {
				l = bundled(l, bundleID)
			}
			lines = append(lines, l)
		}
		terms := &pricing.CouponTerms{
			Kind:        kinds[rng.IntN(len(kinds))],
			PercentOff:  pct(rng.Int64N(101)),
			AmountOff:   pricing.NewMoney(rng.Int64N(100000)),
			MaxDiscount: pricing.NewMoney(rng.Int64N(20000)),
		}
		if rng.IntN(2) == 0 {
			terms.CategoryIDs = []uuid.UUID{catA}
		}

		q, err := calc.Quote(lines, rules(rule), terms)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, q.Total.Cents(), int64(0))
		assert.LessOrEqual(t, q.Discount.Cents(), q.EligibleAmount.Cents())
		assert.LessOrEqual(t, q.EligibleAmount.Cents(), q.Subtotal.Cents())
		for _, b := range q.Bundles {
			assert.GreaterOrEqual(t, b.Total.Cents(), int64(0))
			assert.LessOrEqual(t, b.Total.Cents(), b.BaseTotal.Cents())
		}
		if terms.Kind == pricing.CouponKindFixed {
			assert.GreaterOrEqual(t, q.Total.Cents(), q.Shipping.Cents())
		}
	}
}
