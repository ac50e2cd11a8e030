package broker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ErrPermanent marks handler failures that must not be redelivered.
var ErrPermanent = errs.New("permanent message failure")

// Dial connects and declares the durable topic exchange notifications flow through.
func Dial(cfg config.AMQPConfig) (*amqp.Connection, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errs.Wrap(err, "failed to connect to rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "failed to open channel")
	}
	defer ch.Close()
	if err := ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, errs.Wrapf(err, "failed to declare exchange %s", cfg.Exchange)
	}
	return conn, nil
}

// Publisher sends persistent JSON messages with publisher confirms.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func NewPublisher(conn *amqp.Connection, cfg config.AMQPConfig) *Publisher {
	return &Publisher{conn: conn, exchange: cfg.Exchange}
}

func (p *Publisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	ch, err := p.conn.Channel()
	if err != nil {
		return nil, errs.Wrap(err, "failed to open publish channel")
	}
	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		return nil, errs.Wrap(err, "failed to enable publisher confirms")
	}
	p.ch = ch
	return ch, nil
}

func (p *Publisher) Publish(ctx context.Context, routingKey, messageID string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}
	confirm, err := ch.PublishWithDeferredConfirmWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    messageID,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		return errs.Wrapf(err, "failed to publish %s", routingKey)
	}
	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return errs.Wrapf(err, "failed to confirm %s", routingKey)
	}
	if !acked {
		return errs.Newf("broker nacked %s", routingKey)
	}
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch == nil {
		return nil
	}
	return p.ch.Close()
}

// Handler processes one delivery body. Wrap failures with ErrPermanent to drop the message.
type Handler func(ctx context.Context, routingKey string, body []byte) error

type Consumer struct {
	conn     *amqp.Connection
	exchange string
	queue    string
	prefetch int
}

func NewConsumer(conn *amqp.Connection, cfg config.AMQPConfig) *Consumer {
	return &Consumer{conn: conn, exchange: cfg.Exchange, queue: cfg.Queue, prefetch: cfg.Prefetch}
}

// Run consumes until ctx is done or the channel closes.
func (c *Consumer) Run(ctx context.Context, handle Handler) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return errs.Wrap(err, "failed to open consume channel")
	}
	defer ch.Close()

	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		return errs.Wrap(err, "failed to set qos")
	}
	if _, err := ch.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return errs.Wrapf(err, "failed to declare queue %s", c.queue)
	}
	if err := ch.QueueBind(c.queue, "#", c.exchange, false, nil); err != nil {
		return errs.Wrapf(err, "failed to bind queue %s", c.queue)
	}

	msgs, err := ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return errs.Wrapf(err, "failed to consume queue %s", c.queue)
	}

	slog.Info("Consumer started", "queue", c.queue, "exchange", c.exchange)
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return errs.New("delivery channel closed")
			}
			c.dispatch(ctx, msg, handle)
		}
	}
}

func (c *Consumer) dispatch(ctx context.Context, msg amqp.Delivery, handle Handler) {
	start := time.Now()
	err := handle(ctx, msg.RoutingKey, msg.Body)
	switch {
	case err == nil:
		if ackErr := msg.Ack(false); ackErr != nil {
			slog.Error("failed to ack message", "message_id", msg.MessageId, "error", ackErr)
		}
		slog.Info("Message processed", "routing_key", msg.RoutingKey, "message_id", msg.MessageId, "duration_ms", time.Since(start).Milliseconds())
	case errs.Is(err, ErrPermanent):
		slog.Error("Message dropped", "routing_key", msg.RoutingKey, "message_id", msg.MessageId, "error", err)
		_ = msg.Nack(false, false)
	default:
		slog.Warn("Message requeued", "routing_key", msg.RoutingKey, "message_id", msg.MessageId, "error", err)
		_ = msg.Nack(false, true)
	}
}
