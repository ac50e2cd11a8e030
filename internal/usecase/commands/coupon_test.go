//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/coupon"
	"storefront/internal/domain/pricing"
	reqdto "storefront/internal/handler/dto/request"
	"storefront/internal/infra"
	"storefront/internal/infra/sqlc"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/shared"
	commandsmock "storefront/tests/mock/commands"
	sharedmock "storefront/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CouponCommandsTestSuite struct {
	suite.Suite
	tx      *sharedmock.MockTx
	reads   *sharedmock.MockCommandReads
	coupons *sharedmock.MockCouponRepository
	cache   *commandsmock.MockCouponCacheInvalidator
	now     time.Time
	sut     commands.CouponCommands
}

func TestCouponCommandsSuite(t *testing.T) {
	suite.Run(t, new(CouponCommandsTestSuite))
}

func (s *CouponCommandsTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	s.tx = sharedmock.NewMockTx(ctrl)
	s.reads = sharedmock.NewMockCommandReads(ctrl)
	s.coupons = sharedmock.NewMockCouponRepository(ctrl)
	s.cache = commandsmock.NewMockCouponCacheInvalidator(ctrl)
	s.now = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Coupons().Return(s.coupons).AnyTimes()

	s.sut = commands.NewCouponCommands(uow, s.cache, clock.NewMockClock(s.now))
}

func percentRequest(code string) reqdto.CouponRequest {
	return reqdto.CouponRequest{
		Code:             code,
		Kind:             string(pricing.CouponKindPercentage),
		PercentOff:       decimal.NewFromInt(10),
		MaxDiscountCents: 50000,
	}
}

func (s *CouponCommandsTestSuite) stored(code string) *coupon.Coupon {
	return coupon.ReconstructCoupon(uuid.New(), coupon.Params{
		Code:       code,
		Kind:       pricing.CouponKindPercentage,
		PercentOff: decimal.NewFromInt(10),
		Active:     true,
	}, 3, s.now.Add(-time.Hour), s.now.Add(-time.Hour))
}

func (s *CouponCommandsTestSuite) TestCreate() {
	s.Run("stores the normalized code and drops a cached miss", func() {
		var saved *coupon.Coupon
		s.coupons.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, c *coupon.Coupon) error {
				saved = c
				return nil
			})
		s.cache.EXPECT().Invalidate(gomock.Any(), "WELCOME10")

		id, err := s.sut.Create(context.Background(), percentRequest(" welcome10 "))
		s.Require().NoError(err)
		s.Require().NotNil(saved)
		s.Equal(saved.ID(), id)
		s.Equal("WELCOME10", saved.Code().String())
		s.True(saved.Active())
	})

	s.Run("taken code conflicts", func() {
		s.coupons.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("insert coupon", errs.New("unique"), infra.KindDuplicateKey))

		_, err := s.sut.Create(context.Background(), percentRequest("WELCOME10"))
		s.True(errs.Is(err, commands.ErrCouponCodeTaken))
		s.True(errs.Is(err, errs.ErrConflict))
	})

	s.Run("invalid terms never reach the store", func() {
		req := percentRequest("WELCOME10")
		req.PercentOff = decimal.NewFromInt(120)

		_, err := s.sut.Create(context.Background(), req)
		s.True(errs.Is(err, coupon.ErrInvalidPercent))
	})
}

func (s *CouponCommandsTestSuite) TestUpdate() {
	s.Run("renaming invalidates both codes", func() {
		cp := s.stored("OLDCODE")
		s.reads.EXPECT().CouponByID(gomock.Any(), cp.ID()).Return(cp, nil)
		s.coupons.EXPECT().Update(gomock.Any(), gomock.Any(), cp).Return(nil)
		gomock.InOrder(
			s.cache.EXPECT().Invalidate(gomock.Any(), "OLDCODE"),
			s.cache.EXPECT().Invalidate(gomock.Any(), "NEWCODE"),
		)

		s.Require().NoError(s.sut.Update(context.Background(), cp.ID(), percentRequest("newcode")))
		s.Equal("NEWCODE", cp.Code().String())
		s.Equal(int32(3), cp.UsedCount())
	})

	s.Run("unknown coupon", func() {
		id := uuid.New()
		s.reads.EXPECT().CouponByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("coupon", nil, infra.KindNotFound))

		err := s.sut.Update(context.Background(), id, percentRequest("NEWCODE"))
		s.True(errs.Is(err, coupon.ErrCouponNotFound))
	})
}

func (s *CouponCommandsTestSuite) TestDeactivate() {
	cp := s.stored("SUMMER")
	s.reads.EXPECT().CouponByID(gomock.Any(), cp.ID()).Return(cp, nil)
	s.coupons.EXPECT().Update(gomock.Any(), gomock.Any(), cp).Return(nil)
	s.cache.EXPECT().Invalidate(gomock.Any(), "SUMMER")

	s.Require().NoError(s.sut.Deactivate(context.Background(), cp.ID()))
	s.False(cp.Active())
	s.Equal(s.now, cp.UpdatedAt())
}

func (s *CouponCommandsTestSuite) TestDelete() {
	s.Run("unused coupon is removed", func() {
		cp := s.stored("SUMMER")
		s.reads.EXPECT().CouponByID(gomock.Any(), cp.ID()).Return(cp, nil)
		s.coupons.EXPECT().Delete(gomock.Any(), gomock.Any(), cp.ID()).Return(nil)
		s.cache.EXPECT().Invalidate(gomock.Any(), "SUMMER")

		s.NoError(s.sut.Delete(context.Background(), cp.ID()))
	})

	s.Run("coupon referenced by orders stays", func() {
		cp := s.stored("SUMMER")
		s.reads.EXPECT().CouponByID(gomock.Any(), cp.ID()).Return(cp, nil)
		s.coupons.EXPECT().Delete(gomock.Any(), gomock.Any(), cp.ID()).
			Return(infra.WrapRepoErr("delete coupon", errs.New("fk"), infra.KindForeignKeyViolated))

		err := s.sut.Delete(context.Background(), cp.ID())
		s.True(errs.Is(err, commands.ErrStillReferenced))
		s.Equal("record is still referenced", errs.UnwrapAll(err).Error())
	})
}
