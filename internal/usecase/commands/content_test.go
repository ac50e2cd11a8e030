//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/content"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/shared"
	sharedmock "storefront/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BroadcastTestSuite struct {
	suite.Suite
	tx      *sharedmock.MockTx
	reads   *sharedmock.MockCommandReads
	content *sharedmock.MockContentRepository
	jobs    *sharedmock.MockNotificationRepository
	now     time.Time
	sut     commands.ContentCommands
}

func TestBroadcastSuite(t *testing.T) {
	suite.Run(t, new(BroadcastTestSuite))
}

func (s *BroadcastTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	s.tx = sharedmock.NewMockTx(ctrl)
	s.reads = sharedmock.NewMockCommandReads(ctrl)
	s.content = sharedmock.NewMockContentRepository(ctrl)
	s.jobs = sharedmock.NewMockNotificationRepository(ctrl)
	s.now = time.Date(2026, 6, 1, 8, 30, 0, 0, time.UTC)

	uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Content().Return(s.content).AnyTimes()
	s.tx.EXPECT().Notifications().Return(s.jobs).AnyTimes()

	s.sut = commands.NewContentCommands(uow, clock.NewMockClock(s.now))
}

func (s *BroadcastTestSuite) broadcast(status content.BroadcastStatus) *content.Broadcast {
	created := s.now.Add(-24 * time.Hour)
	return content.ReconstructBroadcast(uuid.New(), content.BroadcastState{
		Subject:   "Monsoon sale",
		Body:      "Everything is 20% off this week.",
		Status:    status,
		CreatedBy: uuid.New(),
		CreatedAt: created,
		UpdatedAt: created,
	})
}

func (s *BroadcastTestSuite) TestSendBroadcast() {
	s.Run("fans out one job per customer and queues the draft", func() {
		b := s.broadcast(content.BroadcastDraft)
		s.reads.EXPECT().BroadcastByID(gomock.Any(), b.ID(), true).Return(b, nil)
		gomock.InOrder(
			s.jobs.EXPECT().CreateBroadcastJobs(gomock.Any(), gomock.Any(), b, s.now).Return(int64(42), nil),
			s.content.EXPECT().SaveBroadcast(gomock.Any(), gomock.Any(), b).Return(nil),
		)

		n, err := s.sut.SendBroadcast(context.Background(), b.ID())
		s.Require().NoError(err)
		s.Equal(42, n)
		s.Equal(content.BroadcastQueued, b.Status())
		s.Equal(int32(42), b.RecipientCount())
		s.Require().NotNil(b.QueuedAt())
		s.Equal(s.now, *b.QueuedAt())
	})

	s.Run("already queued broadcast is not sent twice", func() {
		b := s.broadcast(content.BroadcastQueued)
		s.reads.EXPECT().BroadcastByID(gomock.Any(), b.ID(), true).Return(b, nil)

		_, err := s.sut.SendBroadcast(context.Background(), b.ID())
		s.True(errs.Is(err, content.ErrBroadcastNotDraft))
	})

	s.Run("no active customers leaves the draft", func() {
		b := s.broadcast(content.BroadcastDraft)
		s.reads.EXPECT().BroadcastByID(gomock.Any(), b.ID(), true).Return(b, nil)
		s.jobs.EXPECT().CreateBroadcastJobs(gomock.Any(), gomock.Any(), b, s.now).Return(int64(0), nil)

		_, err := s.sut.SendBroadcast(context.Background(), b.ID())
		s.True(errs.Is(err, content.ErrNoRecipients))
		s.Equal(content.BroadcastDraft, b.Status())
	})

	s.Run("unknown broadcast", func() {
		id := uuid.New()
		s.reads.EXPECT().BroadcastByID(gomock.Any(), id, true).
			Return(nil, infra.WrapRepoErr("broadcast", nil, infra.KindNotFound))

		_, err := s.sut.SendBroadcast(context.Background(), id)
		s.True(errs.Is(err, commands.ErrBroadcastNotFound))
	})
}
