package bootstrap

import (
	"storefront/internal/handler/middleware"
	"storefront/internal/infra/invoice"
	"storefront/internal/infra/payment"
	"storefront/internal/pkg/config"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"go.uber.org/fx"
)

var IntegrationModule = fx.Module("integration",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			NewInvoiceRenderer,
			fx.As(new(queries.InvoiceRenderer)),
		),
	),
)

func NewPaymentGateway(cfg config.Config) *payment.Gateway {
	return payment.NewGateway(cfg.Payment)
}

// Invoices print dates in the same zone as the logs.
func NewInvoiceRenderer(cfg config.Config, logger *middleware.Logger) (*invoice.Renderer, error) {
	return invoice.NewRenderer(cfg.Store.Name, logger.Location())
}
