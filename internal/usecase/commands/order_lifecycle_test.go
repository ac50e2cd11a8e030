//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/notification"
	"storefront/internal/domain/order"
	"storefront/internal/domain/payment"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/user"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/metrics"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/shared"
	"storefront/tests/common/builder"
	commandsmock "storefront/tests/mock/commands"
	sharedmock "storefront/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const webhookSecret = "whsec_test"

type OrderLifecycleTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	orders   *sharedmock.MockOrderRepository
	catalog  *sharedmock.MockCatalogRepository
	coupons  *sharedmock.MockCouponRepository
	jobs     *sharedmock.MockNotificationRepository
	cache    *commandsmock.MockCouponCacheInvalidator
	gateway  *commandsmock.MockPaymentGateway
	now      time.Time
	owner    shared.Actor
	sut      commands.OrderCommands
	product  uuid.UUID
	couponID uuid.UUID
}

func TestOrderLifecycleSuite(t *testing.T) {
	suite.Run(t, new(OrderLifecycleTestSuite))
}

func (s *OrderLifecycleTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.orders = sharedmock.NewMockOrderRepository(s.ctrl)
	s.catalog = sharedmock.NewMockCatalogRepository(s.ctrl)
	s.coupons = sharedmock.NewMockCouponRepository(s.ctrl)
	s.jobs = sharedmock.NewMockNotificationRepository(s.ctrl)
	s.cache = commandsmock.NewMockCouponCacheInvalidator(s.ctrl)
	s.gateway = commandsmock.NewMockPaymentGateway(s.ctrl)
	s.now = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s.owner = shared.Actor{ID: uuid.New(), Email: "shopper@example.com", Role: user.RoleCustomer}
	s.product = uuid.New()
	s.couponID = uuid.New()

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Orders().Return(s.orders).AnyTimes()
	s.tx.EXPECT().Catalog().Return(s.catalog).AnyTimes()
	s.tx.EXPECT().Coupons().Return(s.coupons).AnyTimes()
	s.tx.EXPECT().Notifications().Return(s.jobs).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()

	s.sut = commands.NewOrderCommands(
		s.uow,
		pricing.NewCalculator(pricing.ShippingPolicy{FlatFee: pricing.NewMoney(4900), FreeThreshold: pricing.NewMoney(99900)}),
		s.gateway,
		s.cache,
		clock.NewMockClock(s.now),
		commands.OrderSettings{Currency: "INR", PendingOrderTTL: 30 * time.Minute, BatchSize: 10, WebhookSecret: webhookSecret},
	)
}

func (s *OrderLifecycleTestSuite) orderWith(status order.Status) *order.Order {
	code := "SAVE10"
	couponID := s.couponID
	return order.Reconstruct(order.ReconstructParams{
		ID:     uuid.New(),
		UserID: s.owner.ID,
		Number: "SF-260301-ABCDEF12",
		Status: status,
		Items: []order.Item{
			{ProductID: s.product, Name: "Tea", UnitPrice: pricing.NewMoney(45000), Quantity: 3, LineTotal: pricing.NewMoney(135000)},
		},
		Subtotal:   pricing.NewMoney(135000),
		Discount:   pricing.NewMoney(13500),
		Total:      pricing.NewMoney(121500),
		Currency:   "INR",
		CouponID:   &couponID,
		CouponCode: &code,
		CreatedAt:  s.now.Add(-time.Hour),
		UpdatedAt:  s.now.Add(-time.Hour),
	})
}

func (s *OrderLifecycleTestSuite) ownerUser() *user.User {
	u, err := builder.NewUserBuilder().WithEmail(s.owner.Email).BuildDomain()
	s.Require().NoError(err)
	return u
}

func (s *OrderLifecycleTestSuite) TestCancel() {
	s.Run("owner cancels a pending order and reservations come back", func() {
		ord := s.orderWith(order.StatusPending)
		s.reads.EXPECT().OrderByID(gomock.Any(), ord.ID(), true).Return(ord, nil)
		s.catalog.EXPECT().AdjustStock(gomock.Any(), gomock.Any(), s.product, int32(3)).Return(int32(10), nil)
		s.coupons.EXPECT().ReleaseUsage(gomock.Any(), gomock.Any(), s.couponID).Return(nil)
		s.orders.EXPECT().SaveState(gomock.Any(), gomock.Any(), ord).Return(nil)
		s.cache.EXPECT().Invalidate(gomock.Any(), "SAVE10")

		err := s.sut.Cancel(context.Background(), s.owner, ord.ID(), "changed my mind")
		s.Require().NoError(err)
		s.Equal(order.StatusCancelled, ord.Status())
		s.Require().NotNil(ord.CancelReason())
		s.Equal("changed my mind", *ord.CancelReason())
	})

	s.Run("owner cannot cancel once paid", func() {
		ord := s.orderWith(order.StatusPaid)
		s.reads.EXPECT().OrderByID(gomock.Any(), ord.ID(), true).Return(ord, nil)

		err := s.sut.Cancel(context.Background(), s.owner, ord.ID(), "")
		s.True(errs.Is(err, order.ErrNotCancellable))
		s.Equal(order.StatusPaid, ord.Status())
	})

	s.Run("staff cancels a paid order and the customer is mailed", func() {
		staff := shared.Actor{ID: uuid.New(), Email: "staff@example.com", Role: user.RoleStaff}
		ord := s.orderWith(order.StatusPaid)
		s.reads.EXPECT().OrderByID(gomock.Any(), ord.ID(), true).Return(ord, nil)
		s.catalog.EXPECT().AdjustStock(gomock.Any(), gomock.Any(), s.product, int32(3)).Return(int32(10), nil)
		s.coupons.EXPECT().ReleaseUsage(gomock.Any(), gomock.Any(), s.couponID).Return(nil)
		s.orders.EXPECT().SaveState(gomock.Any(), gomock.Any(), ord).Return(nil)
		s.reads.EXPECT().UserByID(gomock.Any(), s.owner.ID).Return(s.ownerUser(), nil)
		s.jobs.EXPECT().CreateJob(gomock.Any(), gomock.Any(), notification.KindEmail, notification.TopicOrderCancelled.String(), gomock.Any(), s.now).Return(nil)
		s.cache.EXPECT().Invalidate(gomock.Any(), "SAVE10")

		s.Require().NoError(s.sut.Cancel(context.Background(), staff, ord.ID(), "out of stock"))
		s.Equal(order.StatusCancelled, ord.Status())
	})

	s.Run("failed payment holds nothing to release", func() {
		staff := shared.Actor{ID: uuid.New(), Role: user.RoleAdmin}
		ord := s.orderWith(order.StatusPaymentFailed)
		s.reads.EXPECT().OrderByID(gomock.Any(), ord.ID(), true).Return(ord, nil)

		err := s.sut.Cancel(context.Background(), staff, ord.ID(), "")
		s.True(errs.Is(err, order.ErrNotCancellable))
	})

	s.Run("other customers see not found", func() {
		stranger := shared.Actor{ID: uuid.New(), Role: user.RoleCustomer}
		ord := s.orderWith(order.StatusPending)
		s.reads.EXPECT().OrderByID(gomock.Any(), ord.ID(), true).Return(ord, nil)

		err := s.sut.Cancel(context.Background(), stranger, ord.ID(), "")
		s.True(errs.Is(err, commands.ErrOrderNotFound))
		s.Equal(order.StatusPending, ord.Status())
	})
}

func (s *OrderLifecycleTestSuite) TestExpireStale() {
	s.Run("pending orders past the window are cancelled", func() {
		stale := s.orderWith(order.StatusPending)
		paidMeanwhile := s.orderWith(order.StatusPaid)

		s.orders.EXPECT().StalePendingIDs(gomock.Any(), gomock.Any(), s.now.Add(-30*time.Minute), int32(10)).
			Return([]uuid.UUID{stale.ID(), paidMeanwhile.ID()}, nil)
		s.reads.EXPECT().OrderByID(gomock.Any(), stale.ID(), true).Return(stale, nil)
		s.reads.EXPECT().OrderByID(gomock.Any(), paidMeanwhile.ID(), true).Return(paidMeanwhile, nil)
		s.catalog.EXPECT().AdjustStock(gomock.Any(), gomock.Any(), s.product, int32(3)).Return(int32(3), nil)
		s.coupons.EXPECT().ReleaseUsage(gomock.Any(), gomock.Any(), s.couponID).Return(nil)
		s.orders.EXPECT().SaveState(gomock.Any(), gomock.Any(), stale).Return(nil)
		s.cache.EXPECT().Invalidate(gomock.Any(), "SAVE10")

		n, err := s.sut.ExpireStale(context.Background())
		s.Require().NoError(err)
		s.Equal(1, n)
		s.Equal(order.StatusCancelled, stale.Status())
		s.Equal(order.StatusPaid, paidMeanwhile.Status())
	})
}

func (s *OrderLifecycleTestSuite) webhook(ev payment.WebhookEvent) error {
	body := []byte(`{"event":"` + ev.Event + `"}`)
	s.gateway.EXPECT().ParseWebhook(body).Return(ev, nil)
	return s.sut.HandleWebhook(context.Background(), body, payment.Sign(webhookSecret, body))
}

func (s *OrderLifecycleTestSuite) captured(paymentID string) payment.WebhookEvent {
	return payment.WebhookEvent{
		Event:           payment.EventPaymentCaptured,
		ProviderOrderID: "order_gw_1",
		PaymentID:       paymentID,
		AmountCents:     121500,
		Currency:        "INR",
	}
}

func (s *OrderLifecycleTestSuite) TestHandleWebhook() {
	s.Run("capture settles a pending order and queues its mails", func() {
		ord := s.orderWith(order.StatusPending)
		s.reads.EXPECT().OrderByProviderOrderID(gomock.Any(), "order_gw_1").Return(ord, nil)
		s.orders.EXPECT().SaveState(gomock.Any(), gomock.Any(), ord).Return(nil)
		s.reads.EXPECT().UserByID(gomock.Any(), s.owner.ID).Return(s.ownerUser(), nil).Times(2)
		s.jobs.EXPECT().CreateJob(gomock.Any(), gomock.Any(), notification.KindEmail, notification.TopicOrderPaid.String(), gomock.Any(), s.now).Return(nil)
		s.jobs.EXPECT().CreateJob(gomock.Any(), gomock.Any(), notification.KindEmail, notification.TopicInvoice.String(), gomock.Any(), s.now).Return(nil)

		s.Require().NoError(s.webhook(s.captured("pay_1")))
		s.Equal(order.StatusPaid, ord.Status())
		s.Require().NotNil(ord.PaymentID())
		s.Equal("pay_1", *ord.PaymentID())
	})

	s.Run("capture after expiry is recorded for refund and acknowledged", func() {
		ord := s.orderWith(order.StatusCancelled)
		s.reads.EXPECT().OrderByProviderOrderID(gomock.Any(), "order_gw_1").Return(ord, nil)
		s.orders.EXPECT().SaveState(gomock.Any(), gomock.Any(), ord).Return(nil)

		s.Require().NoError(s.webhook(s.captured("pay_late")))
		s.Equal(order.StatusCancelled, ord.Status())
		s.Require().NotNil(ord.PaymentID())
		s.Equal("pay_late", *ord.PaymentID())

		n, err := testutil.GatherAndCount(metrics.Registry, "storefront_payments_refunds_due_total")
		s.Require().NoError(err)
		s.GreaterOrEqual(n, 1)
	})

	s.Run("redelivered late capture changes nothing", func() {
		ord := s.orderWith(order.StatusPaymentFailed)
		_, err := ord.RecordLateCapture("pay_late", s.now)
		s.Require().NoError(err)
		s.reads.EXPECT().OrderByProviderOrderID(gomock.Any(), "order_gw_1").Return(ord, nil)

		s.Require().NoError(s.webhook(s.captured("pay_late")))
		s.Equal(order.StatusPaymentFailed, ord.Status())
	})

	s.Run("second capture on a paid order is acknowledged", func() {
		ord := s.orderWith(order.StatusPending)
		_, err := ord.MarkPaid("pay_first", s.now)
		s.Require().NoError(err)
		s.reads.EXPECT().OrderByProviderOrderID(gomock.Any(), "order_gw_1").Return(ord, nil)

		s.Require().NoError(s.webhook(s.captured("pay_second")))
		s.Equal("pay_first", *ord.PaymentID())
	})

	s.Run("failure releases the reservations of a pending order", func() {
		ord := s.orderWith(order.StatusPending)
		s.reads.EXPECT().OrderByProviderOrderID(gomock.Any(), "order_gw_1").Return(ord, nil)
		s.catalog.EXPECT().AdjustStock(gomock.Any(), gomock.Any(), s.product, int32(3)).Return(int32(3), nil)
		s.coupons.EXPECT().ReleaseUsage(gomock.Any(), gomock.Any(), s.couponID).Return(nil)
		s.orders.EXPECT().SaveState(gomock.Any(), gomock.Any(), ord).Return(nil)
		s.cache.EXPECT().Invalidate(gomock.Any(), "SAVE10")

		err := s.webhook(payment.WebhookEvent{Event: payment.EventPaymentFailed, ProviderOrderID: "order_gw_1", ErrorReason: "card declined"})
		s.Require().NoError(err)
		s.Equal(order.StatusPaymentFailed, ord.Status())
	})

	s.Run("bad signature is rejected before parsing", func() {
		err := s.sut.HandleWebhook(context.Background(), []byte(`{}`), payment.Sign("other", []byte(`{}`)))
		s.True(errs.Is(err, payment.ErrInvalidSignature))
	})
}

func (s *OrderLifecycleTestSuite) TestUpdateStatus() {
	staff := shared.Actor{ID: uuid.New(), Email: "staff@example.com", Role: user.RoleStaff}

	s.Run("shipping mails the customer", func() {
		ord := s.orderWith(order.StatusProcessing)
		s.reads.EXPECT().OrderByID(gomock.Any(), ord.ID(), true).Return(ord, nil)
		s.orders.EXPECT().SaveState(gomock.Any(), gomock.Any(), ord).Return(nil)
		s.reads.EXPECT().UserByID(gomock.Any(), s.owner.ID).Return(s.ownerUser(), nil)
		s.jobs.EXPECT().CreateJob(gomock.Any(), gomock.Any(), notification.KindEmail, notification.TopicOrderShipped.String(), gomock.Any(), s.now).Return(nil)

		s.Require().NoError(s.sut.UpdateStatus(context.Background(), staff, ord.ID(), "shipped"))
		s.Equal(order.StatusShipped, ord.Status())
	})

	s.Run("processing sends no mail", func() {
		ord := s.orderWith(order.StatusPaid)
		s.reads.EXPECT().OrderByID(gomock.Any(), ord.ID(), true).Return(ord, nil)
		s.orders.EXPECT().SaveState(gomock.Any(), gomock.Any(), ord).Return(nil)

		s.Require().NoError(s.sut.UpdateStatus(context.Background(), staff, ord.ID(), "processing"))
		s.Equal(order.StatusProcessing, ord.Status())
	})

	s.Run("skipping ahead is refused", func() {
		ord := s.orderWith(order.StatusPending)
		s.reads.EXPECT().OrderByID(gomock.Any(), ord.ID(), true).Return(ord, nil)

		err := s.sut.UpdateStatus(context.Background(), staff, ord.ID(), "shipped")
		s.True(errs.Is(err, order.ErrInvalidTransition))
		s.Equal(order.StatusPending, ord.Status())
	})

	s.Run("unknown status is a validation error", func() {
		err := s.sut.UpdateStatus(context.Background(), staff, uuid.New(), "lost")
		s.True(errs.Is(err, errs.ErrValidation))
	})
}
