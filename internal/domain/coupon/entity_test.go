//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"storefront/internal/domain/coupon"
	"storefront/internal/domain/pricing"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func baseParams() coupon.Params {
	return coupon.Params{
		Code:        "save10",
		Kind:        pricing.CouponKindPercentage,
		PercentOff:  decimal.NewFromInt(10),
		MaxDiscount: pricing.NewMoney(20000),
		MinOrder:    pricing.NewMoney(50000),
		UsageLimit:  ptr.To(int32(100)),
		ValidFrom:   ptr.To(now.Add(-24 * time.Hour)),
		ValidTo:     ptr.To(now.Add(24 * time.Hour)),
		Active:      true,
	}
}

type createCase struct {
	name   string
	mutate func(p *coupon.Params)
	errIs  error
}

func TestNewCoupon(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		c, err := coupon.NewCoupon(uuid.Nil, baseParams(), now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, c.ID())
		assert.Equal(t, "SAVE10", c.Code().String())
		assert.True(t, c.Active())
		assert.Equal(t, int32(0), c.UsedCount())
	})

	runCreateCases(t, []createCase{
		{name: "コード短すぎNG", mutate: func(p *coupon.Params) { p.Code = "AB" }, errIs: coupon.ErrInvalidCouponCode},
		{name: "コード記号NG", mutate: func(p *coupon.Params) { p.Code = "SAVE-10" }, errIs: coupon.ErrInvalidCouponCode},
		{name: "種別不正NG", mutate: func(p *coupon.Params) { p.Kind = "bogus" }, errIs: coupon.ErrInvalidKind},
		{name: "割合0NG", mutate: func(p *coupon.Params) { p.PercentOff = decimal.Zero }, errIs: coupon.ErrInvalidPercent},
		{name: "割合100OK", mutate: func(p *coupon.Params) { p.PercentOff = decimal.NewFromInt(100) }},
		{name: "割合100超NG", mutate: func(p *coupon.Params) { p.PercentOff = decimal.NewFromInt(101) }, errIs: coupon.ErrInvalidPercent},
		{
			name:   "定額0NG",
			mutate: func(p *coupon.Params) { p.Kind = pricing.CouponKindFixed; p.AmountOff = pricing.Zero() },
			errIs:  coupon.ErrInvalidAmount,
		},
		{
			name:   "送料無料は値不要OK",
			mutate: func(p *coupon.Params) { p.Kind = pricing.CouponKindFreeShipping; p.PercentOff = decimal.Zero },
		},
		{name: "最低注文額マイナスNG", mutate: func(p *coupon.Params) { p.MinOrder = pricing.NewMoney(-1) }, errIs: coupon.ErrNegativeAmount},
		{name: "利用上限0NG", mutate: func(p *coupon.Params) { p.UsageLimit = ptr.To(int32(0)) }, errIs: coupon.ErrInvalidUsageLimit},
		{name: "利用上限なしOK", mutate: func(p *coupon.Params) { p.UsageLimit = nil }},
		{name: "期間逆転NG", mutate: func(p *coupon.Params) { p.ValidTo = ptr.To(now.Add(-48 * time.Hour)) }, errIs: coupon.ErrInvalidValidity},
		{name: "許可メール不正NG", mutate: func(p *coupon.Params) { p.AllowedEmails = []string{"not-an-email"} }, errIs: coupon.ErrInvalidAllowedEmail},
	})

	t.Run("バリデーションエラーはカテゴリでマークされる", func(t *testing.T) {
		p := baseParams()
		p.Code = "x"
		_, err := coupon.NewCoupon(uuid.Nil, p, now)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func runCreateCases(t *testing.T, cases []createCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := baseParams()
			c.mutate(&p)
			actual, err := coupon.NewCoupon(uuid.Nil, p, now)
			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
				return
			}
			require.Nil(t, actual)
			require.ErrorIs(t, err, c.errIs)
		})
	}
}

func TestCoupon_Validate(t *testing.T) {
	type validateCase struct {
		name     string
		mutate   func(p *coupon.Params)
		used     int32
		at       time.Time
		email    string
		subtotal int64
		errIs    error
		code     string
	}

	cases := []validateCase{
		{name: "有効", subtotal: 50000},
		{name: "無効化済み", mutate: func(p *coupon.Params) { p.Active = false }, subtotal: 50000, errIs: coupon.ErrCouponInactive, code: coupon.MsgCouponInactive},
		{name: "開始前", at: now.Add(-48 * time.Hour), subtotal: 50000, errIs: coupon.ErrCouponNotYetValid, code: coupon.MsgCouponNotYetValid},
		{name: "期限切れ", at: now.Add(48 * time.Hour), subtotal: 50000, errIs: coupon.ErrCouponExpired, code: coupon.MsgCouponExpired},
		{name: "上限到達", used: 100, subtotal: 50000, errIs: coupon.ErrCouponLimitReached, code: coupon.MsgUsageLimitReached},
		{
			name:     "許可されていないメール",
			mutate:   func(p *coupon.Params) { p.AllowedEmails = []string{"vip@example.com"} },
			email:    "other@example.com",
			subtotal: 50000,
			errIs:    coupon.ErrCouponNotAllowed,
			code:     coupon.MsgCouponNotAllowed,
		},
		{
			name:     "許可メールは大文字小文字を区別しない",
			mutate:   func(p *coupon.Params) { p.AllowedEmails = []string{"VIP@example.com"} },
			email:    " vip@EXAMPLE.com",
			subtotal: 50000,
		},
		{name: "最低注文額未満", subtotal: 49999, errIs: coupon.ErrMinOrderNotMet, code: coupon.MsgMinOrderNotMet},
		{
			name:     "無効化と期限切れは無効化が優先",
			mutate:   func(p *coupon.Params) { p.Active = false },
			at:       now.Add(48 * time.Hour),
			subtotal: 50000,
			errIs:    coupon.ErrCouponInactive,
		},
		{
			name:     "期限切れと上限到達は期限切れが優先",
			at:       now.Add(48 * time.Hour),
			used:     100,
			subtotal: 50000,
			errIs:    coupon.ErrCouponExpired,
		},
		{
			name:     "上限到達と金額不足は上限が優先",
			used:     100,
			subtotal: 1,
			errIs:    coupon.ErrCouponLimitReached,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := baseParams()
			if tc.mutate != nil {
				tc.mutate(&p)
			}
			c := coupon.ReconstructCoupon(uuid.New(), p, tc.used, now, now)

			at := tc.at
			if at.IsZero() {
				at = now
			}
			err := c.Validate(at, tc.email, pricing.NewMoney(tc.subtotal))
			if tc.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.errIs)
			if tc.code != "" {
				assert.Equal(t, tc.code, coupon.MessageCode(err))
			}
		})
	}
}

func TestCoupon_CheckApplicable(t *testing.T) {
	productID := uuid.New()

	t.Run("制限なしは常に適用可", func(t *testing.T) {
		c := coupon.ReconstructCoupon(uuid.New(), baseParams(), 0, now, now)
		require.NoError(t, c.CheckApplicable(pricing.Quote{}))
	})

	t.Run("制限付きで対象なしはNG", func(t *testing.T) {
		p := baseParams()
		p.ProductIDs = []uuid.UUID{productID}
		c := coupon.ReconstructCoupon(uuid.New(), p, 0, now, now)

		err := c.CheckApplicable(pricing.Quote{Subtotal: pricing.NewMoney(1000)})
		require.ErrorIs(t, err, coupon.ErrCouponNotApplicable)
		assert.Equal(t, coupon.MsgCouponNotApplicable, coupon.MessageCode(err))
	})

	t.Run("制限付きで対象ありはOK", func(t *testing.T) {
		p := baseParams()
		p.CategoryIDs = []uuid.UUID{uuid.New()}
		c := coupon.ReconstructCoupon(uuid.New(), p, 0, now, now)

		require.NoError(t, c.CheckApplicable(pricing.Quote{EligibleAmount: pricing.NewMoney(1)}))
	})
}

func TestCoupon_Terms(t *testing.T) {
	p := baseParams()
	productID := uuid.New()
	p.ProductIDs = []uuid.UUID{productID, productID}
	c, err := coupon.NewCoupon(uuid.Nil, p, now)
	require.NoError(t, err)

	terms := c.Terms()
	assert.Equal(t, "SAVE10", terms.Code)
	assert.Equal(t, pricing.CouponKindPercentage, terms.Kind)
	assert.True(t, terms.PercentOff.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, int64(20000), terms.MaxDiscount.Cents())
	assert.Equal(t, []uuid.UUID{productID}, terms.ProductIDs)
}

func TestCoupon_Update(t *testing.T) {
	c, err := coupon.NewCoupon(uuid.Nil, baseParams(), now)
	require.NoError(t, err)

	t.Run("不正な更新は元の状態を保つ", func(t *testing.T) {
		p := baseParams()
		p.PercentOff = decimal.NewFromInt(150)
		require.ErrorIs(t, c.Update(p, now), coupon.ErrInvalidPercent)
		assert.True(t, c.PercentOff().Equal(decimal.NewFromInt(10)))
	})

	t.Run("定額へ変更すると上限額はクリアされる", func(t *testing.T) {
		p := baseParams()
		p.Kind = pricing.CouponKindFixed
		p.AmountOff = pricing.NewMoney(5000)
		require.NoError(t, c.Update(p, now.Add(time.Minute)))
		assert.Equal(t, int64(5000), c.AmountOff().Cents())
		assert.True(t, c.MaxDiscount().IsZero())
		assert.True(t, c.PercentOff().IsZero())
		assert.Equal(t, now.Add(time.Minute), c.UpdatedAt())
	})
}

func TestCoupon_AllowsEmail(t *testing.T) {
	p := baseParams()
	p.AllowedEmails = []string{"VIP@Example.com", " owner@example.com "}
	c := coupon.ReconstructCoupon(uuid.New(), p, 0, now, now)

	tests := []struct {
		email string
		want  bool
	}{
		{"vip@example.com", true},
		{"VIP@EXAMPLE.COM", true},
		{"  owner@Example.com", true},
		{"other@example.com", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, c.AllowsEmail(tt.email))
		})
	}

	t.Run("制限なしは誰でも可", func(t *testing.T) {
		open := coupon.ReconstructCoupon(uuid.New(), baseParams(), 0, now, now)
		assert.True(t, open.AllowsEmail("anyone@example.com"))
	})
}
