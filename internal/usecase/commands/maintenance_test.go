//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/shared"
	sharedmock "storefront/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MaintenanceTestSuite struct {
	suite.Suite
	tx      *sharedmock.MockTx
	keys    *sharedmock.MockIdempotencyRepository
	coupons *sharedmock.MockCouponRepository
	content *sharedmock.MockContentRepository
	now     time.Time
	sut     commands.MaintenanceCommands
}

func TestMaintenanceSuite(t *testing.T) {
	suite.Run(t, new(MaintenanceTestSuite))
}

func (s *MaintenanceTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	s.tx = sharedmock.NewMockTx(ctrl)
	s.keys = sharedmock.NewMockIdempotencyRepository(ctrl)
	s.coupons = sharedmock.NewMockCouponRepository(ctrl)
	s.content = sharedmock.NewMockContentRepository(ctrl)
	s.now = time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()
	s.tx.EXPECT().Idempotency().Return(s.keys).AnyTimes()
	s.tx.EXPECT().Coupons().Return(s.coupons).AnyTimes()
	s.tx.EXPECT().Content().Return(s.content).AnyTimes()

	s.sut = commands.NewMaintenanceCommands(uow, clock.NewMockClock(s.now))
}

func (s *MaintenanceTestSuite) TestSweeps() {
	s.keys.EXPECT().DeleteExpired(gomock.Any(), gomock.Any(), s.now).Return(int64(4), nil)
	s.coupons.EXPECT().DeactivateExpiredRewards(gomock.Any(), gomock.Any(), s.now).Return(int64(2), nil)
	s.content.EXPECT().MarkBroadcastsSent(gomock.Any(), gomock.Any(), s.now).Return(int64(0), nil)

	n, err := s.sut.PurgeExpiredKeys(context.Background())
	s.Require().NoError(err)
	s.Equal(int64(4), n)

	n, err = s.sut.ExpireRewardCoupons(context.Background())
	s.Require().NoError(err)
	s.Equal(int64(2), n)

	n, err = s.sut.CompleteBroadcasts(context.Background())
	s.Require().NoError(err)
	s.Zero(n)
}

func (s *MaintenanceTestSuite) TestSweepFailureReportsNothing() {
	s.keys.EXPECT().DeleteExpired(gomock.Any(), gomock.Any(), s.now).
		Return(int64(0), infra.WrapRepoErr("failed to purge keys", errs.New("conn reset")))

	n, err := s.sut.PurgeExpiredKeys(context.Background())
	s.Error(err)
	s.True(errs.Is(err, commands.ErrDatabaseOperationFailed))
	s.Zero(n)
}
