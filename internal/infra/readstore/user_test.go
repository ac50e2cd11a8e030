//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"storefront/internal/infra"
	"storefront/internal/infra/sqlc"
	"storefront/internal/usecase/queries"
	"storefront/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserReadQueries struct {
	mock.Mock
}

func (m *mockUserReadQueries) FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *mockUserReadQueries) FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func TestUserReadStore_FindByEmail(t *testing.T) {
	staff := builder.NewUserBuilder().WithEmail("ops@chai.example").AsStaff().BuildInfra()

	t.Run("lookup is case and space insensitive", func(t *testing.T) {
		q := new(mockUserReadQueries)
		q.On("FindUserByEmail", mock.Anything, mock.Anything, "ops@chai.example").Return(staff, nil)

		view, hash, err := NewUserReadStore(q, nil).FindByEmail(context.Background(), "  OPS@Chai.Example ")

		require.NoError(t, err)
		assert.Equal(t, staff.ID, view.ID)
		assert.Equal(t, "staff", view.Role)
		assert.Equal(t, staff.PasswordHash, hash)
		q.AssertExpectations(t)
	})

	t.Run("inactive users are still returned for the login check", func(t *testing.T) {
		inactive := builder.NewUserBuilder().WithEmail("gone@example.com").AsInactive().BuildInfra()
		q := new(mockUserReadQueries)
		q.On("FindUserByEmail", mock.Anything, mock.Anything, "gone@example.com").Return(inactive, nil)

		view, _, err := NewUserReadStore(q, nil).FindByEmail(context.Background(), "gone@example.com")

		require.NoError(t, err)
		assert.False(t, view.IsActive)
	})

	for name, tc := range map[string]struct {
		err  error
		kind infra.RepositoryErrorKind
	}{
		"unknown email is NOT_FOUND": {pgx.ErrNoRows, infra.KindNotFound},
		"driver error is DB_FAILURE": {assert.AnError, infra.KindDBFailure},
	} {
		t.Run(name, func(t *testing.T) {
			q := new(mockUserReadQueries)
			q.On("FindUserByEmail", mock.Anything, mock.Anything, "nobody@example.com").Return(sqlc.Users{}, tc.err)

			view, hash, err := NewUserReadStore(q, nil).FindByEmail(context.Background(), "nobody@example.com")

			assert.Nil(t, view)
			assert.Empty(t, hash)
			assert.True(t, infra.IsKind(err, tc.kind))
		})
	}
}

func TestUserReadStore_FindByID(t *testing.T) {
	customer := builder.NewUserBuilder().BuildInfra()

	t.Run("maps the row without the hash", func(t *testing.T) {
		q := new(mockUserReadQueries)
		q.On("FindUserByID", mock.Anything, mock.Anything, customer.ID).Return(customer, nil)

		view, err := NewUserReadStore(q, nil).FindByID(context.Background(), customer.ID)

		require.NoError(t, err)
		assert.Equal(t, &queries.AuthorizedUserView{
			ID:       customer.ID,
			Email:    customer.Email,
			FullName: customer.FullName,
			Role:     customer.Role,
			IsActive: customer.IsActive,
		}, view)
	})

	t.Run("missing user is NOT_FOUND", func(t *testing.T) {
		id := uuid.New()
		q := new(mockUserReadQueries)
		q.On("FindUserByID", mock.Anything, mock.Anything, id).Return(sqlc.Users{}, pgx.ErrNoRows)

		_, err := NewUserReadStore(q, nil).FindByID(context.Background(), id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestAfterParams(t *testing.T) {
	ts, id := afterParams(nil)
	assert.False(t, ts.Valid)
	assert.False(t, id.Valid)

	k := &queries.Keyset{CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), ID: uuid.New()}
	ts, id = afterParams(k)
	assert.True(t, ts.Valid)
	assert.True(t, k.CreatedAt.Equal(ts.Time))
	assert.Equal(t, [16]byte(k.ID), id.Bytes)
}
