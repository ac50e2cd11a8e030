//go:build unit

package coupon_test

import (
	"testing"

	"storefront/internal/domain/coupon"
	"storefront/internal/domain/pricing"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	calc := pricing.NewCalculator(pricing.ShippingPolicy{FlatFee: pricing.NewMoney(4900), FreeThreshold: pricing.NewMoney(99900)})
	lines := []pricing.Line{{ProductID: uuid.New(), Name: "Kettle", UnitPrice: pricing.NewMoney(60000), Quantity: 1}}

	t.Run("クーポンなし", func(t *testing.T) {
		q, err := coupon.Apply(calc, lines, nil, nil, now, "a@example.com")
		require.NoError(t, err)
		assert.Equal(t, pricing.NewMoney(64900), q.Total)
	})

	t.Run("割引適用", func(t *testing.T) {
		c, err := coupon.NewCoupon(uuid.Nil, baseParams(), now)
		require.NoError(t, err)

		q, err := coupon.Apply(calc, lines, nil, c, now, "a@example.com")
		require.NoError(t, err)
		assert.Equal(t, pricing.NewMoney(6000), q.Discount)
		assert.Equal(t, pricing.NewMoney(58900), q.Total)
	})

	t.Run("最低金額未満は割引なしの見積を返す", func(t *testing.T) {
		c, err := coupon.NewCoupon(uuid.Nil, baseParams(), now)
		require.NoError(t, err)
		small := []pricing.Line{{ProductID: uuid.New(), Name: "Spoon", UnitPrice: pricing.NewMoney(1000), Quantity: 1}}

		q, err := coupon.Apply(calc, small, nil, c, now, "a@example.com")
		assert.True(t, errs.Is(err, coupon.ErrMinOrderNotMet))
		assert.Equal(t, coupon.MsgMinOrderNotMet, coupon.MessageCode(err))
		assert.True(t, q.Discount.IsZero())
		assert.Equal(t, pricing.NewMoney(1000), q.Subtotal)
	})

	t.Run("対象商品なし", func(t *testing.T) {
		p := baseParams()
		p.ProductIDs = []uuid.UUID{uuid.New()}
		c, err := coupon.NewCoupon(uuid.Nil, p, now)
		require.NoError(t, err)

		_, err = coupon.Apply(calc, lines, nil, c, now, "a@example.com")
		assert.True(t, errs.Is(err, coupon.ErrCouponNotApplicable))
	})
}
