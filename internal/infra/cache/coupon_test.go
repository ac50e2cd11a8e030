//go:build unit

package cache

import (
	"context"
	"testing"
	"time"

	"storefront/internal/infra"
	"storefront/internal/infra/sqlc"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCouponSource struct {
	mock.Mock
}

func (m *mockCouponSource) FindCouponByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Coupons, error) {
	args := m.Called(ctx, db, code)
	return args.Get(0).(sqlc.Coupons), args.Error(1)
}

func TestCouponCache_WithoutRedis(t *testing.T) {
	row := sqlc.Coupons{ID: uuid.New(), Code: "SAVE10", Kind: "fixed", AmountOffCents: 5000, UsedCount: 3, Active: true}

	t.Run("normalizes the code and reads through", func(t *testing.T) {
		src := new(mockCouponSource)
		src.On("FindCouponByCode", mock.Anything, mock.Anything, "SAVE10").Return(row, nil).Twice()
		c := NewCouponCache(nil, src, nil, time.Minute)

		for range 2 {
			got, err := c.FindByCode(context.Background(), "  save10 ")
			require.NoError(t, err)
			assert.Equal(t, "SAVE10", got.Code().String())
			assert.Equal(t, int32(3), got.UsedCount())
		}
		c.Invalidate(context.Background(), "SAVE10")
		src.AssertExpectations(t)
	})

	t.Run("missing code is NOT_FOUND", func(t *testing.T) {
		src := new(mockCouponSource)
		src.On("FindCouponByCode", mock.Anything, mock.Anything, "NOPE").Return(sqlc.Coupons{}, pgx.ErrNoRows)

		_, err := NewCouponCache(nil, src, nil, time.Minute).FindByCode(context.Background(), "nope")

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("source failure is a DB failure", func(t *testing.T) {
		src := new(mockCouponSource)
		src.On("FindCouponByCode", mock.Anything, mock.Anything, "SAVE10").Return(sqlc.Coupons{}, assert.AnError)

		_, err := NewCouponCache(nil, src, nil, time.Minute).FindByCode(context.Background(), "SAVE10")

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestCouponCache_RedisDownFallsBack(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	row := sqlc.Coupons{ID: uuid.New(), Code: "WELCOME", Kind: "fixed", AmountOffCents: 100, Active: true}
	src := new(mockCouponSource)
	src.On("FindCouponByCode", mock.Anything, mock.Anything, "WELCOME").Return(row, nil)

	c := NewCouponCache(client, src, nil, time.Minute)
	got, err := c.FindByCode(context.Background(), "welcome")

	require.NoError(t, err)
	assert.Equal(t, row.ID, got.ID())
	c.Invalidate(context.Background(), "WELCOME")
}

func TestCouponKey(t *testing.T) {
	assert.Equal(t, "storefront:coupon:SAVE10", couponKey(" save10"))
}
