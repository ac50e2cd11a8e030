package components

import (
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/reward"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/jwt"
	"storefront/internal/usecase"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"
	"storefront/internal/usecase/shared"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		NewPricingCalculator,
		fx.As(new(pricing.Calculator)),
	),
	NewRewardWheel,
	NewOrderSettings,
	func(s *jwt.Service) commands.TokenIssuer { return s },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCartCommands,
		commands.NewOrderCommands,
		commands.NewCatalogCommands,
		commands.NewCouponCommands,
		commands.NewAddressCommands,
		commands.NewRewardCommands,
		commands.NewContentCommands,
		commands.NewMaintenanceCommands,
		NewNotificationDispatcher,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCatalogQueries,
		queries.NewCouponQueries,
		queries.NewOrderQueries,
		queries.NewAddressQueries,
		queries.NewRewardQueries,
		queries.NewContentQueries,
		NewCheckoutQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewPricingCalculator(settings config.StoreSettings) *pricing.DefaultCalculator {
	return pricing.NewCalculator(pricing.ShippingPolicy{
		FlatFee:       pricing.NewMoney(settings.Shipping.FlatFeeCents),
		FreeThreshold: pricing.NewMoney(settings.Shipping.FreeThresholdCents),
	})
}

func NewRewardWheel(cfg config.Config, settings config.StoreSettings) (*reward.Wheel, error) {
	segments := make([]reward.Segment, 0, len(settings.Wheel))
	for _, s := range settings.Wheel {
		segments = append(segments, reward.Segment{
			Label:        s.Label,
			Kind:         s.Kind,
			PercentOff:   decimal.NewFromFloat(s.PercentOff),
			AmountOff:    pricing.NewMoney(s.AmountOffCents),
			MaxDiscount:  pricing.NewMoney(s.MaxDiscountCents),
			MinOrder:     pricing.NewMoney(s.MinOrderCents),
			ValidityDays: s.ValidityDays,
			Weight:       s.Weight,
		})
	}
	return reward.NewWheel(segments, cfg.Store.SpinCooldown, reward.DefaultRand())
}

func NewOrderSettings(cfg config.Config, settings config.StoreSettings) commands.OrderSettings {
	return commands.OrderSettings{
		Currency:        settings.Currency,
		PendingOrderTTL: cfg.Store.PendingOrderTTL,
		IdempotencyTTL:  cfg.Store.IdempotencyTTL,
		KeySecret:       cfg.Payment.KeySecret,
		WebhookSecret:   cfg.Payment.WebhookSecret,
		BatchSize:       cfg.Jobs.BatchSize,
	}
}

func NewCheckoutQueries(
	uow shared.UnitOfWork,
	coupons queries.CouponLookup,
	calc pricing.Calculator,
	clk clock.Clock,
	settings config.StoreSettings,
) queries.CheckoutQueries {
	return queries.NewCheckoutQueries(uow, coupons, calc, clk, settings.Currency)
}

func NewNotificationDispatcher(
	uow shared.UnitOfWork,
	publisher commands.MessagePublisher,
	clk clock.Clock,
	cfg config.Config,
) commands.NotificationDispatcher {
	return commands.NewNotificationDispatcher(uow, publisher, clk, cfg.Jobs.BatchSize)
}
