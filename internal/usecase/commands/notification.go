package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storefront/internal/domain/notification"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/metrics"
	"storefront/internal/usecase/queries"
	"storefront/internal/usecase/shared"
)

// ErrUndeliverable marks messages that will never succeed and must not be retried.
var ErrUndeliverable = errs.New("message is undeliverable")

const publishTimeout = 5 * time.Second

//go:generate mockgen -source=notification.go -destination=../../../tests/mock/commands/notification.go -package=commandsmock

type MessagePublisher interface {
	Publish(ctx context.Context, routingKey, messageID string, body []byte) error
}

type EmailComposer interface {
	Compose(topic notification.Topic, payload notification.EmailPayload, order *queries.OrderView) (subject, html string, err error)
}

type MailSender interface {
	Send(ctx context.Context, msg notification.Email) error
}

// NotificationDispatcher relays due outbox jobs to the broker.
type NotificationDispatcher interface {
	// Dispatch publishes one batch and returns how many jobs were handed off.
	Dispatch(ctx context.Context) (int, error)
}

type notificationDispatcherImpl struct {
	uow       shared.UnitOfWork
	publisher MessagePublisher
	clock     clock.Clock
	batchSize int32
}

func NewNotificationDispatcher(uow shared.UnitOfWork, publisher MessagePublisher, clk clock.Clock, batchSize int32) NotificationDispatcher {
	return &notificationDispatcherImpl{uow: uow, publisher: publisher, clock: clk, batchSize: batchSize}
}

// Dispatch holds the claimed rows locked while publishing so a concurrent dispatcher skips them.
func (d *notificationDispatcherImpl) Dispatch(ctx context.Context) (int, error) {
	sent := 0
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		now := d.clock.Now()
		jobs, err := tx.Notifications().ClaimDue(ctx, tx.DB(), now, d.batchSize)
		if err != nil {
			return repoErr(err, nil)
		}

		for _, job := range jobs {
			pubErr := d.publish(ctx, job)
			metrics.NotificationDispatched(job.Topic, pubErr == nil)
			if pubErr == nil {
				if err := tx.Notifications().MarkSent(ctx, tx.DB(), job.ID, now); err != nil {
					return repoErr(err, nil)
				}
				sent++
				continue
			}

			attempts := job.Attempts + 1
			status := notification.JobQueued
			runAt, ok := notification.NextRunAt(attempts, now)
			if !ok {
				status = notification.JobFailed
				runAt = now
			}
			slog.Warn("Failed to publish notification",
				"job_id", job.ID, "topic", job.Topic, "attempts", attempts, "status", status, "error", pubErr.Error())
			if err := tx.Notifications().Reschedule(ctx, tx.DB(), job.ID, string(status), attempts, runAt, pubErr.Error()); err != nil {
				return repoErr(err, nil)
			}
		}
		return nil
	})
	return sent, err
}

func (d *notificationDispatcherImpl) publish(ctx context.Context, job shared.NotificationJob) error {
	var payload notification.EmailPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return errs.Wrap(err, "corrupt notification payload")
	}
	body, err := json.Marshal(notification.Message{JobID: job.ID, Topic: notification.Topic(job.Topic), Payload: payload})
	if err != nil {
		return errs.Wrap(err, "failed to encode message")
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	return d.publisher.Publish(ctx, job.Topic, job.ID.String(), body)
}

// EmailDelivery renders and sends messages consumed from the broker.
type EmailDelivery interface {
	Deliver(ctx context.Context, body []byte) error
}

type emailDeliveryImpl struct {
	orders   queries.OrderReadStore
	invoices queries.InvoiceRenderer
	composer EmailComposer
	sender   MailSender
}

func NewEmailDelivery(orders queries.OrderReadStore, invoices queries.InvoiceRenderer, composer EmailComposer, sender MailSender) EmailDelivery {
	return &emailDeliveryImpl{orders: orders, invoices: invoices, composer: composer, sender: sender}
}

func (e *emailDeliveryImpl) Deliver(ctx context.Context, body []byte) error {
	var msg notification.Message
	if err := json.Unmarshal(body, &msg); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to decode message"), ErrUndeliverable)
	}
	if !msg.Topic.IsValid() || msg.Payload.To == "" {
		return errs.Wrapf(ErrUndeliverable, "job %s topic %q", msg.JobID, msg.Topic)
	}

	var order *queries.OrderView
	if msg.Payload.OrderID != nil {
		var err error
		order, err = e.orders.FindByID(ctx, *msg.Payload.OrderID)
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrUndeliverable)
		}
		if err != nil {
			return err
		}
	}

	subject, html, err := e.composer.Compose(msg.Topic, msg.Payload, order)
	if err != nil {
		return errs.Mark(err, ErrUndeliverable)
	}
	out := notification.Email{To: msg.Payload.To, Subject: subject, HTML: html}

	if msg.Topic == notification.TopicInvoice {
		if order == nil {
			return errs.Wrapf(ErrUndeliverable, "invoice job %s has no order", msg.JobID)
		}
		doc, err := e.invoices.Render(order)
		if err != nil {
			return errs.Mark(err, ErrUndeliverable)
		}
		out.Attachments = append(out.Attachments, notification.Attachment{
			Filename:    "invoice-" + order.Number + ".html",
			ContentType: "text/html; charset=utf-8",
			Data:        doc,
		})
	}

	if err := e.sender.Send(ctx, out); err != nil {
		return errs.Wrapf(err, "failed to send %s email", msg.Topic)
	}
	slog.Info("Email sent", "job_id", msg.JobID, "topic", msg.Topic)
	return nil
}
