//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/user"
	"storefront/internal/infra"
	"storefront/internal/infra/sqlc"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserQueries struct {
	mock.Mock
}

func (m *MockUserQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserQueries) FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserQueries) LockUser(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (uuid.UUID, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockUserQueries) UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error {
	args := m.Called(ctx, db, id)
	return args.Error(0)
}

func TestUserRepository_Create(t *testing.T) {
	email, err := user.NewEmail("asha@example.com")
	require.NoError(t, err)
	name, err := user.NewFullName("Asha Rao")
	require.NoError(t, err)
	u := user.NewCustomer(email, name, "hashed")
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("passes domain fields to the insert", func(t *testing.T) {
		q := new(MockUserQueries)
		q.On("CreateUser", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateUserParams) bool {
			return p.ID == u.ID() && p.Email == "asha@example.com" && p.Role == "customer"
		})).Return(sqlc.Users{ID: u.ID()}, nil)

		err := NewUserRepository(q).Create(context.Background(), new(mockDBTX), u, now)

		assert.NoError(t, err)
		q.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		q := new(MockUserQueries)
		q.On("CreateUser", mock.Anything, mock.Anything, mock.Anything).
			Return(sqlc.Users{}, uniqueViolation())

		err := NewUserRepository(q).Create(context.Background(), new(mockDBTX), u, now)

		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestUserRepository_UpdateLastLogin(t *testing.T) {
	testUserID := uuid.New()

	tests := []struct {
		name      string
		mockError error
		wantError bool
	}{
		{name: "success"},
		{name: "database error", mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockUserQueries)
			q.On("UpdateUserLastLogin", mock.Anything, mock.Anything, testUserID).Return(tt.mockError)

			err := NewUserRepository(q).UpdateLastLogin(context.Background(), new(mockDBTX), testUserID)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}
			q.AssertExpectations(t)
		})
	}
}

func TestUserRepository_FindByID(t *testing.T) {
	id := uuid.New()

	t.Run("missing user is NOT_FOUND", func(t *testing.T) {
		q := new(MockUserQueries)
		q.On("FindUserByID", mock.Anything, mock.Anything, id).Return(sqlc.Users{}, pgx.ErrNoRows)

		got, err := NewUserRepository(q).FindByID(context.Background(), new(mockDBTX), id)

		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("lock on missing user is NOT_FOUND", func(t *testing.T) {
		q := new(MockUserQueries)
		q.On("LockUser", mock.Anything, mock.Anything, id).Return(uuid.Nil, pgx.ErrNoRows)

		err := NewUserRepository(q).Lock(context.Background(), new(mockDBTX), id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
