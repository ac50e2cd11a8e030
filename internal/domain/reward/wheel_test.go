//go:build unit

package reward_test

import (
	"testing"
	"time"

	"storefront/internal/domain/pricing"
	"storefront/internal/domain/reward"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted returns queued values modulo n, then zeros.
type scripted struct{ values []int }

func (s *scripted) IntN(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v % n
}

var now = time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)

func segments() []reward.Segment {
	return []reward.Segment{
		{Label: "10% OFF", Kind: string(pricing.CouponKindPercentage), PercentOff: decimal.NewFromInt(10), MaxDiscount: pricing.NewMoney(20000), ValidityDays: 7, Weight: 3},
		{Label: "Try again", Kind: reward.KindNone, Weight: 1},
		{Label: "FREE SHIPPING", Kind: string(pricing.CouponKindFreeShipping), ValidityDays: 2, Weight: 6},
	}
}

func TestNewWheel(t *testing.T) {
	_, err := reward.NewWheel(nil, time.Hour, nil)
	assert.ErrorIs(t, err, reward.ErrEmptyWheel)

	_, err = reward.NewWheel([]reward.Segment{{Label: "x", Kind: "bogus", ValidityDays: 1, Weight: 1}}, time.Hour, nil)
	assert.ErrorIs(t, err, reward.ErrInvalidSegment)

	_, err = reward.NewWheel([]reward.Segment{{Label: "x", Kind: "fixed", Weight: 1}}, time.Hour, nil)
	assert.ErrorIs(t, err, reward.ErrInvalidSegment)
}

func TestWheel_Pick(t *testing.T) {
	cases := []struct {
		draw int
		want int
	}{
		{0, 0}, {2, 0}, {3, 1}, {4, 2}, {9, 2},
	}
	for _, tc := range cases {
		w, err := reward.NewWheel(segments(), time.Hour, &scripted{values: []int{tc.draw}})
		require.NoError(t, err)
		assert.Equalf(t, tc.want, w.Pick(), "draw %d", tc.draw)
	}
}

func TestWheel_PickDistribution(t *testing.T) {
	w, err := reward.NewWheel(segments(), time.Hour, nil)
	require.NoError(t, err)

	counts := make([]int, 3)
	for i := 0; i < 10000; i++ {
		counts[w.Pick()]++
	}
	assert.InDelta(t, 3000, counts[0], 400)
	assert.InDelta(t, 1000, counts[1], 300)
	assert.InDelta(t, 6000, counts[2], 400)
}

func TestWheel_Spin(t *testing.T) {
	userID := uuid.New()

	t.Run("prize mints a personal single-use coupon", func(t *testing.T) {
		// 0 picks the first segment; the rest spell the code.
		w, err := reward.NewWheel(segments(), 24*time.Hour, &scripted{values: []int{0, 0, 1, 2, 3, 26, 27, 28, 35}})
		require.NoError(t, err)

		out, err := w.Spin(userID, "Shopper@Example.com", nil, now)
		require.NoError(t, err)
		require.NotNil(t, out.Coupon)

		assert.Equal(t, "SPINABCD0129", out.Coupon.Code().String())
		assert.Equal(t, []string{"shopper@example.com"}, out.Coupon.AllowedEmails())
		require.NotNil(t, out.Coupon.UsageLimit())
		assert.Equal(t, int32(1), *out.Coupon.UsageLimit())
		assert.Equal(t, now.Add(7*24*time.Hour), *out.Coupon.ValidTo())
		assert.Equal(t, pricing.CouponKindPercentage, out.Coupon.Kind())

		assert.True(t, out.Reward.IsPrize())
		assert.Equal(t, out.Coupon.ID(), *out.Reward.CouponID())
		assert.Equal(t, "10% OFF", out.Reward.Label())
		assert.False(t, out.Reward.IsExpired(now.Add(6*24*time.Hour)))
		assert.True(t, out.Reward.IsExpired(now.Add(8*24*time.Hour)))
	})

	t.Run("none segment records a reward without coupon", func(t *testing.T) {
		w, err := reward.NewWheel(segments(), 24*time.Hour, &scripted{values: []int{3}})
		require.NoError(t, err)

		out, err := w.Spin(userID, "a@example.com", nil, now)
		require.NoError(t, err)
		assert.Nil(t, out.Coupon)
		assert.False(t, out.Reward.IsPrize())
		assert.Nil(t, out.Reward.ExpiresAt())
	})

	t.Run("cooldown blocks until it elapses", func(t *testing.T) {
		w, err := reward.NewWheel(segments(), 24*time.Hour, &scripted{values: []int{3, 3}})
		require.NoError(t, err)

		last := now.Add(-23 * time.Hour)
		_, err = w.Spin(userID, "a@example.com", &last, now)
		require.ErrorIs(t, err, reward.ErrSpinCooldown)
		assert.Equal(t, last.Add(24*time.Hour), w.NextSpinAt(&last, now))

		last = now.Add(-24 * time.Hour)
		_, err = w.Spin(userID, "a@example.com", &last, now)
		require.NoError(t, err)
		assert.True(t, w.NextSpinAt(&last, now).IsZero())
	})
}
