//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"storefront/internal/domain/notification"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"
	"storefront/internal/usecase/shared"
	commandsmock "storefront/tests/mock/commands"
	queriesmock "storefront/tests/mock/queries"
	sharedmock "storefront/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NotificationDispatcherTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	jobs      *sharedmock.MockNotificationRepository
	publisher *commandsmock.MockMessagePublisher
	now       time.Time
	sut       commands.NotificationDispatcher
}

func TestNotificationDispatcherSuite(t *testing.T) {
	suite.Run(t, new(NotificationDispatcherTestSuite))
}

func (s *NotificationDispatcherTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.jobs = sharedmock.NewMockNotificationRepository(s.ctrl)
	s.publisher = commandsmock.NewMockMessagePublisher(s.ctrl)
	s.now = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().Notifications().Return(s.jobs).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()

	s.sut = commands.NewNotificationDispatcher(s.uow, s.publisher, clock.NewMockClock(s.now), 10)
}

func (s *NotificationDispatcherTestSuite) job(attempts int32) shared.NotificationJob {
	payload, err := json.Marshal(notification.EmailPayload{To: "shopper@example.com", OrderNumber: "SF-1"})
	s.Require().NoError(err)
	return shared.NotificationJob{
		ID:       uuid.New(),
		Kind:     notification.KindEmail,
		Topic:    notification.TopicOrderPaid.String(),
		Payload:  payload,
		Attempts: attempts,
		RunAt:    s.now,
	}
}

func (s *NotificationDispatcherTestSuite) TestDispatch() {
	s.Run("success: published jobs are marked sent", func() {
		j := s.job(0)
		s.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), s.now, int32(10)).Return([]shared.NotificationJob{j}, nil)
		s.publisher.EXPECT().Publish(gomock.Any(), j.Topic, j.ID.String(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, body []byte) error {
				var msg notification.Message
				s.Require().NoError(json.Unmarshal(body, &msg))
				s.Equal(j.ID, msg.JobID)
				s.Equal("shopper@example.com", msg.Payload.To)
				return nil
			})
		s.jobs.EXPECT().MarkSent(gomock.Any(), gomock.Any(), j.ID, s.now).Return(nil)

		sent, err := s.sut.Dispatch(context.Background())
		s.Require().NoError(err)
		s.Equal(1, sent)
	})

	s.Run("broker failure reschedules with backoff", func() {
		j := s.job(1)
		s.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), s.now, int32(10)).Return([]shared.NotificationJob{j}, nil)
		s.publisher.EXPECT().Publish(gomock.Any(), j.Topic, j.ID.String(), gomock.Any()).Return(errors.New("channel closed"))
		s.jobs.EXPECT().Reschedule(gomock.Any(), gomock.Any(), j.ID, string(notification.JobQueued), int32(2), s.now.Add(2*time.Minute), "channel closed").Return(nil)

		sent, err := s.sut.Dispatch(context.Background())
		s.Require().NoError(err)
		s.Zero(sent)
	})

	s.Run("last attempt marks the job failed", func() {
		j := s.job(notification.MaxAttempts - 1)
		s.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), s.now, int32(10)).Return([]shared.NotificationJob{j}, nil)
		s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("channel closed"))
		s.jobs.EXPECT().Reschedule(gomock.Any(), gomock.Any(), j.ID, string(notification.JobFailed), int32(notification.MaxAttempts), s.now, gomock.Any()).Return(nil)

		_, err := s.sut.Dispatch(context.Background())
		s.Require().NoError(err)
	})

	s.Run("corrupt payload never reaches the broker", func() {
		j := s.job(0)
		j.Payload = []byte("{")
		s.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), s.now, int32(10)).Return([]shared.NotificationJob{j}, nil)
		s.jobs.EXPECT().Reschedule(gomock.Any(), gomock.Any(), j.ID, string(notification.JobQueued), int32(1), gomock.Any(), gomock.Any()).Return(nil)

		sent, err := s.sut.Dispatch(context.Background())
		s.Require().NoError(err)
		s.Zero(sent)
	})

	s.Run("claim failure surfaces", func() {
		s.jobs.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), s.now, int32(10)).
			Return(nil, infra.WrapRepoErr("claim", errors.New("db down")))

		_, err := s.sut.Dispatch(context.Background())
		s.Error(err)
	})
}

type EmailDeliveryTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	orders   *queriesmock.MockOrderReadStore
	invoices *queriesmock.MockInvoiceRenderer
	composer *commandsmock.MockEmailComposer
	sender   *commandsmock.MockMailSender
	sut      commands.EmailDelivery
}

func TestEmailDeliverySuite(t *testing.T) {
	suite.Run(t, new(EmailDeliveryTestSuite))
}

func (s *EmailDeliveryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.orders = queriesmock.NewMockOrderReadStore(s.ctrl)
	s.invoices = queriesmock.NewMockInvoiceRenderer(s.ctrl)
	s.composer = commandsmock.NewMockEmailComposer(s.ctrl)
	s.sender = commandsmock.NewMockMailSender(s.ctrl)
	s.sut = commands.NewEmailDelivery(s.orders, s.invoices, s.composer, s.sender)
}

func encode(s *EmailDeliveryTestSuite, msg notification.Message) []byte {
	b, err := json.Marshal(msg)
	s.Require().NoError(err)
	return b
}

func (s *EmailDeliveryTestSuite) TestDeliver() {
	orderID := uuid.New()
	view := &queries.OrderView{ID: orderID, Number: "SF-42"}

	s.Run("invoice mail carries the rendered attachment", func() {
		msg := notification.Message{JobID: uuid.New(), Topic: notification.TopicInvoice,
			Payload: notification.EmailPayload{To: "shopper@example.com", OrderID: &orderID}}

		s.orders.EXPECT().FindByID(gomock.Any(), orderID).Return(view, nil)
		s.composer.EXPECT().Compose(notification.TopicInvoice, msg.Payload, view).Return("Your invoice", "<p>hi</p>", nil)
		s.invoices.EXPECT().Render(view).Return([]byte("<html>invoice</html>"), nil)
		s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m notification.Email) error {
			s.Equal("shopper@example.com", m.To)
			s.Equal("Your invoice", m.Subject)
			s.Require().Len(m.Attachments, 1)
			s.Equal("invoice-SF-42.html", m.Attachments[0].Filename)
			return nil
		})

		s.NoError(s.sut.Deliver(context.Background(), encode(s, msg)))
	})

	s.Run("broadcast needs no order", func() {
		msg := notification.Message{JobID: uuid.New(), Topic: notification.TopicBroadcast,
			Payload: notification.EmailPayload{To: "shopper@example.com", Subject: "Sale", Body: "50% off"}}

		s.composer.EXPECT().Compose(notification.TopicBroadcast, msg.Payload, (*queries.OrderView)(nil)).Return("Sale", "50% off", nil)
		s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

		s.NoError(s.sut.Deliver(context.Background(), encode(s, msg)))
	})

	s.Run("garbage body is undeliverable", func() {
		err := s.sut.Deliver(context.Background(), []byte("not json"))
		s.True(errs.Is(err, commands.ErrUndeliverable))
	})

	s.Run("unknown topic is undeliverable", func() {
		msg := notification.Message{JobID: uuid.New(), Topic: "sms", Payload: notification.EmailPayload{To: "a@b.c"}}
		err := s.sut.Deliver(context.Background(), encode(s, msg))
		s.True(errs.Is(err, commands.ErrUndeliverable))
	})

	s.Run("deleted order is undeliverable", func() {
		msg := notification.Message{JobID: uuid.New(), Topic: notification.TopicOrderPaid,
			Payload: notification.EmailPayload{To: "shopper@example.com", OrderID: &orderID}}
		s.orders.EXPECT().FindByID(gomock.Any(), orderID).Return(nil, infra.WrapRepoErr("order", errors.New("no rows"), infra.KindNotFound))

		err := s.sut.Deliver(context.Background(), encode(s, msg))
		s.True(errs.Is(err, commands.ErrUndeliverable))
	})

	s.Run("smtp failure stays retryable", func() {
		msg := notification.Message{JobID: uuid.New(), Topic: notification.TopicBroadcast,
			Payload: notification.EmailPayload{To: "shopper@example.com", Subject: "Sale", Body: "x"}}
		s.composer.EXPECT().Compose(gomock.Any(), gomock.Any(), gomock.Any()).Return("Sale", "x", nil)
		s.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("421 try later"))

		err := s.sut.Deliver(context.Background(), encode(s, msg))
		s.Require().Error(err)
		s.False(errs.Is(err, commands.ErrUndeliverable))
	})
}
