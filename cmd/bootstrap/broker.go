package bootstrap

import (
	"context"

	"storefront/internal/infra/broker"
	"storefront/internal/pkg/config"
	"storefront/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewAMQPConnection,
		fx.Annotate(
			NewPublisher,
			fx.As(new(commands.MessagePublisher)),
		),
	),
)

func NewAMQPConnection(lc fx.Lifecycle, cfg config.Config) (*amqp.Connection, error) {
	conn, err := broker.Dial(cfg.AMQP)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return conn.Close()
		},
	})
	return conn, nil
}

func NewPublisher(lc fx.Lifecycle, conn *amqp.Connection, cfg config.Config) *broker.Publisher {
	p := broker.NewPublisher(conn, cfg.AMQP)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p
}
