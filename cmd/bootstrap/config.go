package bootstrap

import (
	"storefront/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewConfig,
		NewStoreSettings,
	),
)

// NewConfig reads .env when present; real environment variables win.
func NewConfig() (config.Config, error) {
	config.LoadDotEnv()
	return config.LoadConfig()
}

func NewStoreSettings(cfg config.Config) (config.StoreSettings, error) {
	return config.LoadStoreSettings(cfg.Store.SettingsFile)
}
