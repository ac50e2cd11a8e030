package commands

import (
	"context"
	"log/slog"

	"storefront/internal/domain/notification"
	"storefront/internal/domain/order"
	"storefront/internal/domain/payment"
	reqdto "storefront/internal/handler/dto/request"
	"storefront/internal/infra"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/metrics"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

func (o *orderCommandsImpl) ConfirmPayment(ctx context.Context, actor shared.Actor, orderID uuid.UUID, req reqdto.VerifyPaymentRequest) error {
	return o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ord, err := tx.Reads().OrderByID(ctx, orderID, true)
		if err != nil {
			return repoErr(err, ErrOrderNotFound)
		}
		if !actor.CanAccess(ord.UserID()) {
			return ErrOrderNotFound
		}

		providerID := ord.ProviderOrderID()
		if providerID == nil {
			return order.ErrMissingProviderRef
		}
		if *providerID != req.ProviderOrderID {
			return payment.ErrInvalidSignature
		}
		if err := payment.VerifyCheckout(o.settings.KeySecret, *providerID, req.PaymentID, req.Signature); err != nil {
			slog.Warn("payment signature rejected", "order_id", orderID, "payment_id", req.PaymentID)
			return err
		}

		_, err = o.markPaid(ctx, tx, ord, req.PaymentID)
		return err
	})
}

func (o *orderCommandsImpl) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	if err := payment.VerifyWebhook(o.settings.WebhookSecret, body, signature); err != nil {
		return err
	}
	ev, err := o.gateway.ParseWebhook(body)
	if err != nil {
		return err
	}

	switch ev.Event {
	case payment.EventPaymentCaptured, payment.EventPaymentFailed:
	default:
		slog.Info("Ignoring payment webhook", "event", ev.Event)
		return nil
	}

	var released *string
	err = o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ord, err := tx.Reads().OrderByProviderOrderID(ctx, ev.ProviderOrderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// Gateway orders opened outside this store are not ours to settle.
				slog.Warn("webhook for unknown order", "provider_order_id", ev.ProviderOrderID, "event", ev.Event)
				return nil
			}
			return repoErr(err, nil)
		}

		if ev.Event == payment.EventPaymentFailed {
			if ord.Status() != order.StatusPending {
				return nil
			}
			if err := ord.MarkPaymentFailed(ev.ErrorReason, o.clock.Now()); err != nil {
				return err
			}
			if err := o.release(ctx, tx, ord); err != nil {
				return err
			}
			metrics.OrderTransitioned(ord.Status().String())
			slog.Info("Payment failed", "order_id", ord.ID(), "reason", ev.ErrorReason)
			released = ord.CouponCode()
			return repoErr(tx.Orders().SaveState(ctx, tx.DB(), ord), ErrOrderNotFound)
		}

		if !ord.Status().HoldsReservation() {
			return o.recordLateCapture(ctx, tx, ord, ev.PaymentID)
		}
		if ev.AmountCents != ord.Total().Cents() {
			slog.Error("captured amount does not match order total",
				"order_id", ord.ID(), "captured", ev.AmountCents, "total", ord.Total().Cents())
			return nil
		}
		_, err = o.markPaid(ctx, tx, ord, ev.PaymentID)
		if errs.Is(err, order.ErrPaymentMismatch) {
			metrics.RefundDue("duplicate_capture")
			slog.Error("Second payment captured for a paid order, refund required",
				"order_id", ord.ID(), "payment_id", ev.PaymentID, "kept_payment_id", *ord.PaymentID())
			return nil
		}
		return err
	})
	if err == nil && released != nil {
		o.coupons.Invalidate(ctx, *released)
	}
	return err
}

// markPaid settles a locked order and enqueues its confirmation and invoice mails.
func (o *orderCommandsImpl) markPaid(ctx context.Context, tx shared.Tx, ord *order.Order, paymentID string) (bool, error) {
	replayed, err := ord.MarkPaid(paymentID, o.clock.Now())
	if err != nil || replayed {
		return replayed, err
	}
	if err := tx.Orders().SaveState(ctx, tx.DB(), ord); err != nil {
		return false, repoErr(err, ErrOrderNotFound)
	}
	for _, topic := range []notification.Topic{notification.TopicOrderPaid, notification.TopicInvoice} {
		if err := enqueueOrderEmail(ctx, tx, ord, topic, "", o.clock.Now()); err != nil {
			return false, err
		}
	}
	metrics.OrderTransitioned(order.StatusPaid.String())
	slog.Info("Order paid", "order_id", ord.ID(), "payment_id", paymentID)
	return false, nil
}

// recordLateCapture flags a payment captured for an order that already gave
// up its reservation. Acknowledging it stops the gateway from redelivering.
func (o *orderCommandsImpl) recordLateCapture(ctx context.Context, tx shared.Tx, ord *order.Order, paymentID string) error {
	recorded, err := ord.RecordLateCapture(paymentID, o.clock.Now())
	switch {
	case errs.Is(err, order.ErrPaymentMismatch):
		// another late capture already holds the payment slot
	case err != nil:
		return err
	case !recorded:
		return nil
	}

	metrics.RefundDue(ord.Status().String())
	slog.Error("Payment captured for a closed order, refund required",
		"order_id", ord.ID(), "status", ord.Status(), "payment_id", paymentID)
	if !recorded {
		return nil
	}
	return repoErr(tx.Orders().SaveState(ctx, tx.DB(), ord), ErrOrderNotFound)
}

// release returns reserved stock and coupon usage for an order leaving the reserved states.
func (o *orderCommandsImpl) release(ctx context.Context, tx shared.Tx, ord *order.Order) error {
	for productID, qty := range ord.ItemQuantities() {
		if _, err := tx.Catalog().AdjustStock(ctx, tx.DB(), productID, int32(qty)); err != nil {
			// a product deleted since checkout has no stock to restore
			if infra.IsKind(err, infra.KindConflict) {
				continue
			}
			return repoErr(err, nil)
		}
	}
	if id := ord.CouponID(); id != nil {
		if err := tx.Coupons().ReleaseUsage(ctx, tx.DB(), *id); err != nil {
			return repoErr(err, nil)
		}
	}
	return nil
}
