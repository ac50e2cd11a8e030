// Command mailer consumes notification messages from the broker and sends them over SMTP.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"storefront/cmd/bootstrap"
	"storefront/cmd/bootstrap/components"
	"storefront/internal/infra/broker"
	"storefront/internal/infra/mail"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

func newTemplates(cfg config.Config) (*mail.Templates, error) {
	return mail.NewTemplates(cfg.Store.Name)
}

func newSMTPSender(cfg config.Config) (*mail.SMTPSender, error) {
	return mail.NewSMTPSender(cfg.Mail, cfg.Store.Name)
}

func newEmailDelivery(orders queries.OrderReadStore, invoices queries.InvoiceRenderer, t *mail.Templates, s *mail.SMTPSender) commands.EmailDelivery {
	return commands.NewEmailDelivery(orders, invoices, t, s)
}

func runConsumer(lc fx.Lifecycle, sd fx.Shutdowner, conn *amqp.Connection, cfg config.Config, delivery commands.EmailDelivery) {
	consumer := broker.NewConsumer(conn, cfg.AMQP)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				err := consumer.Run(ctx, func(ctx context.Context, _ string, body []byte) error {
					err := delivery.Deliver(ctx, body)
					if errs.Is(err, commands.ErrUndeliverable) {
						return errs.Mark(err, broker.ErrPermanent)
					}
					return err
				})
				if err != nil {
					slog.Error("Consumer stopped", "error", err)
					_ = sd.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.ConfigModule,
		bootstrap.LoggerModule,
		bootstrap.DBModule,
		bootstrap.IntegrationModule,
		fx.Provide(bootstrap.NewAMQPConnection),
		components.PersistenceModule,
		fx.Provide(
			newTemplates,
			newSMTPSender,
			newEmailDelivery,
		),
		fx.Invoke(runConsumer),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("Mailer failed to start", "error", err)
		os.Exit(1)
	}

	sig := <-app.Wait()

	stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		slog.Error("Mailer failed to stop cleanly", "error", err)
	}
	os.Exit(sig.ExitCode)
}
