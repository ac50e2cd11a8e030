package commands

import (
	"context"
	"encoding/json"
	"time"

	"storefront/internal/domain/notification"
	"storefront/internal/domain/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"
)

// enqueueOrderEmail writes an outbox job addressed to the order's owner in the caller's transaction.
func enqueueOrderEmail(ctx context.Context, tx shared.Tx, ord *order.Order, topic notification.Topic, reason string, now time.Time) error {
	owner, err := tx.Reads().UserByID(ctx, ord.UserID())
	if err != nil {
		return repoErr(err, ErrUserNotFound)
	}
	id := ord.ID()
	return enqueueEmail(ctx, tx, topic, notification.EmailPayload{
		To:          owner.Email().Value(),
		Name:        owner.FullName().String(),
		OrderID:     &id,
		OrderNumber: ord.Number(),
		Reason:      reason,
	}, now)
}

func enqueueEmail(ctx context.Context, tx shared.Tx, topic notification.Topic, payload notification.EmailPayload, now time.Time) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to encode notification payload")
	}
	return repoErr(tx.Notifications().CreateJob(ctx, tx.DB(), notification.KindEmail, topic.String(), data, now), nil)
}
