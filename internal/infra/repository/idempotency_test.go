//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"storefront/internal/infra"
	"storefront/internal/infra/sqlc"
	"storefront/internal/pkg/pgconv"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockIdempotencyQueries struct {
	mock.Mock
}

func (m *MockIdempotencyQueries) TryInsertIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.TryInsertIdempotencyKeyParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIdempotencyQueries) GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.IdempotencyKeys), args.Error(1)
}

func (m *MockIdempotencyQueries) UpdateIdempotencyKeyCompleted(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateIdempotencyKeyCompletedParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *MockIdempotencyQueries) ClaimExpiredIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimExpiredIdempotencyKeyParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIdempotencyQueries) DeleteIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteIdempotencyKeyParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *MockIdempotencyQueries) DeleteExpiredIdempotencyKeys(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error) {
	args := m.Called(ctx, db, now)
	return args.Get(0).(int64), args.Error(1)
}

func TestIdempotencyRepository_TryInsert(t *testing.T) {
	key, userID := uuid.New(), uuid.New()
	expires := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		rows    int64
		want    bool
		wantErr bool
	}{
		{name: "first request inserts", rows: 1, want: true},
		{name: "existing key is not inserted", rows: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockIdempotencyQueries)
			q.On("TryInsertIdempotencyKey", mock.Anything, mock.Anything, sqlc.TryInsertIdempotencyKeyParams{
				Key:         key,
				UserID:      userID,
				Endpoint:    "POST /orders",
				RequestHash: "abc",
				ExpiresAt:   pgconv.TimeToPgtype(expires),
			}).Return(tt.rows, nil)

			got, err := NewIdempotencyRepository(q).TryInsert(context.Background(), new(mockDBTX), key, userID, "POST /orders", "abc", expires)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			q.AssertExpectations(t)
		})
	}
}

func TestIdempotencyRepository_Get(t *testing.T) {
	key, userID, orderID := uuid.New(), uuid.New(), uuid.New()
	expires := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	params := sqlc.GetIdempotencyKeyParams{Key: key, UserID: userID}

	t.Run("maps completed record", func(t *testing.T) {
		q := new(MockIdempotencyQueries)
		q.On("GetIdempotencyKey", mock.Anything, mock.Anything, params).Return(sqlc.IdempotencyKeys{
			Key:           key,
			UserID:        userID,
			Status:        shared.IdempotencyCompleted,
			RequestHash:   "abc",
			ResultOrderID: pgconv.UUIDToPgtype(orderID),
			ExpiresAt:     pgconv.TimeToPgtype(expires),
		}, nil)

		rec, err := NewIdempotencyRepository(q).Get(context.Background(), new(mockDBTX), key, userID)

		require.NoError(t, err)
		assert.Equal(t, shared.IdempotencyCompleted, rec.Status)
		require.NotNil(t, rec.ResultOrderID)
		assert.Equal(t, orderID, *rec.ResultOrderID)
		assert.True(t, rec.IsExpired(expires.Add(time.Second)))
	})

	t.Run("missing key is NOT_FOUND", func(t *testing.T) {
		q := new(MockIdempotencyQueries)
		q.On("GetIdempotencyKey", mock.Anything, mock.Anything, params).Return(sqlc.IdempotencyKeys{}, pgx.ErrNoRows)

		_, err := NewIdempotencyRepository(q).Get(context.Background(), new(mockDBTX), key, userID)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
