//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/coupon"
	"storefront/internal/infra"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/queries"
	queriesmock "storefront/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CouponQueriesTestSuite struct {
	suite.Suite
	store *queriesmock.MockCouponReadStore
	sut   queries.CouponQueries
	base  time.Time
}

func TestCouponQueriesSuite(t *testing.T) {
	suite.Run(t, new(CouponQueriesTestSuite))
}

func (s *CouponQueriesTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.store = queriesmock.NewMockCouponReadStore(ctrl)
	s.sut = queries.NewCouponQueries(s.store)
	s.base = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
}

// views returns n coupons newest first, the order the read store pages in.
func (s *CouponQueriesTestSuite) views(n int) []*queries.CouponView {
	out := make([]*queries.CouponView, n)
	for i := range out {
		out[i] = &queries.CouponView{
			ID:        uuid.New(),
			Code:      "CODE" + string(rune('A'+i)),
			CreatedAt: s.base.Add(-time.Duration(i) * time.Minute),
		}
	}
	return out
}

func (s *CouponQueriesTestSuite) TestList() {
	s.Run("extra row becomes the next cursor", func() {
		rows := s.views(3)
		s.store.EXPECT().List(gomock.Any(), (*queries.Keyset)(nil), int32(3)).Return(rows, nil)

		got, next, err := s.sut.List(context.Background(), nil, 2)
		s.Require().NoError(err)
		s.Len(got, 2)
		s.Equal(rows[1].ID, got[1].ID)
		s.Require().NotNil(next)

		at, id, err := queries.DecodeAfterCursor(next.After)
		s.Require().NoError(err)
		s.Equal(rows[1].ID, id)
		s.True(rows[1].CreatedAt.Equal(at))
	})

	s.Run("cursor resumes after the last row seen", func() {
		last := s.views(2)[1]
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(last.CreatedAt, last.ID)}
		s.store.EXPECT().List(gomock.Any(), gomock.Any(), int32(3)).
			DoAndReturn(func(_ context.Context, after *queries.Keyset, _ int32) ([]*queries.CouponView, error) {
				s.Require().NotNil(after)
				s.Equal(last.ID, after.ID)
				s.True(last.CreatedAt.Equal(after.CreatedAt))
				return s.views(1), nil
			})

		got, next, err := s.sut.List(context.Background(), cursor, 2)
		s.Require().NoError(err)
		s.Len(got, 1)
		s.Nil(next)
	})

	s.Run("limit falls back to the default and is capped", func() {
		s.store.EXPECT().List(gomock.Any(), gomock.Any(), int32(21)).Return(nil, nil)
		_, _, err := s.sut.List(context.Background(), nil, 0)
		s.Require().NoError(err)

		s.store.EXPECT().List(gomock.Any(), gomock.Any(), int32(queries.MaxListLimit+1)).Return(nil, nil)
		_, _, err = s.sut.List(context.Background(), nil, 5000)
		s.Require().NoError(err)
	})

	s.Run("garbage cursor is a validation error", func() {
		_, _, err := s.sut.List(context.Background(), &queries.Cursor{After: "not-a-cursor"}, 10)
		s.True(errs.Is(err, queries.ErrInvalidCursor))
		s.True(errs.Is(err, errs.ErrValidation))
	})
}

func (s *CouponQueriesTestSuite) TestGet() {
	s.Run("found", func() {
		view := s.views(1)[0]
		s.store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := s.sut.Get(context.Background(), view.ID)
		s.Require().NoError(err)
		s.Equal(view.Code, got.Code)
	})

	s.Run("missing", func() {
		id := uuid.New()
		s.store.EXPECT().FindByID(gomock.Any(), id).Return(nil, infra.WrapRepoErr("coupon", nil, infra.KindNotFound))

		_, err := s.sut.Get(context.Background(), id)
		s.True(errs.Is(err, coupon.ErrCouponNotFound))
	})
}
