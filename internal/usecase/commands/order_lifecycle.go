package commands

import (
	"context"
	"log/slog"

	"storefront/internal/domain/notification"
	"storefront/internal/domain/order"
	"storefront/internal/pkg/metrics"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

const expiredReason = "payment window expired"

func (o *orderCommandsImpl) Cancel(ctx context.Context, actor shared.Actor, orderID uuid.UUID, reason string) error {
	var released *string
	err := o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ord, err := tx.Reads().OrderByID(ctx, orderID, true)
		if err != nil {
			return repoErr(err, ErrOrderNotFound)
		}
		if !actor.CanAccess(ord.UserID()) {
			return ErrOrderNotFound
		}
		released, err = o.cancel(ctx, tx, ord, reason, actor.IsStaff(), !ord.IsOwnedBy(actor.ID))
		return err
	})
	if err == nil && released != nil {
		o.coupons.Invalidate(ctx, *released)
	}
	return err
}

// cancel moves a locked order to cancelled, releasing its reservations.
// It returns the coupon code whose usage was released, if any.
func (o *orderCommandsImpl) cancel(ctx context.Context, tx shared.Tx, ord *order.Order, reason string, privileged, notify bool) (*string, error) {
	prev := ord.Status()
	if err := ord.Cancel(reason, privileged, o.clock.Now()); err != nil {
		return nil, err
	}
	var released *string
	if prev.HoldsReservation() {
		if err := o.release(ctx, tx, ord); err != nil {
			return nil, err
		}
		released = ord.CouponCode()
	}
	if err := tx.Orders().SaveState(ctx, tx.DB(), ord); err != nil {
		return nil, repoErr(err, ErrOrderNotFound)
	}
	// Paid orders always hear about it; an unpaid order is only mailed when staff cancelled it.
	if notify || prev != order.StatusPending {
		if err := enqueueOrderEmail(ctx, tx, ord, notification.TopicOrderCancelled, reason, o.clock.Now()); err != nil {
			return nil, err
		}
	}
	metrics.OrderTransitioned(order.StatusCancelled.String())
	slog.Info("Order cancelled", "order_id", ord.ID(), "from", prev, "reason", reason)
	return released, nil
}

func (o *orderCommandsImpl) UpdateStatus(ctx context.Context, actor shared.Actor, orderID uuid.UUID, status string) error {
	next, err := order.NewStatus(status)
	if err != nil {
		return err
	}
	if next == order.StatusCancelled {
		return o.Cancel(ctx, actor, orderID, "cancelled by store")
	}

	return o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ord, err := tx.Reads().OrderByID(ctx, orderID, true)
		if err != nil {
			return repoErr(err, ErrOrderNotFound)
		}

		if next == order.StatusPaid {
			// offline settlement recorded by staff
			_, err := o.markPaid(ctx, tx, ord, "manual:"+actor.ID.String())
			return err
		}

		if err := ord.Transition(next, o.clock.Now()); err != nil {
			return err
		}
		if err := tx.Orders().SaveState(ctx, tx.DB(), ord); err != nil {
			return repoErr(err, ErrOrderNotFound)
		}
		if next == order.StatusShipped {
			if err := enqueueOrderEmail(ctx, tx, ord, notification.TopicOrderShipped, "", o.clock.Now()); err != nil {
				return err
			}
		}
		metrics.OrderTransitioned(next.String())
		slog.Info("Order status updated", "order_id", ord.ID(), "status", next, "by", actor.ID)
		return nil
	})
}

func (o *orderCommandsImpl) ExpireStale(ctx context.Context) (int, error) {
	cutoff := o.clock.Now().Add(-o.settings.PendingOrderTTL)

	var ids []uuid.UUID
	err := o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		ids, err = tx.Orders().StalePendingIDs(ctx, tx.DB(), cutoff, o.settings.BatchSize)
		return repoErr(err, nil)
	})
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, id := range ids {
		var released *string
		err := o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			ord, err := tx.Reads().OrderByID(ctx, id, true)
			if err != nil {
				return repoErr(err, ErrOrderNotFound)
			}
			// paid or cancelled since the scan
			if ord.Status() != order.StatusPending {
				return nil
			}
			released, err = o.cancel(ctx, tx, ord, expiredReason, true, false)
			if err == nil {
				expired++
			}
			return err
		})
		if err != nil {
			slog.Error("failed to expire order", "order_id", id, "error", err.Error())
			continue
		}
		if released != nil {
			o.coupons.Invalidate(ctx, *released)
		}
	}
	return expired, nil
}
