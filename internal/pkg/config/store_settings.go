package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// StoreSettings holds merchandising knobs that change more often than deploys.
type StoreSettings struct {
	Currency string           `yaml:"currency"`
	Shipping ShippingSettings `yaml:"shipping"`
	Wheel    []WheelSegment   `yaml:"wheel"`
}

type ShippingSettings struct {
	FlatFeeCents       int64 `yaml:"flat_fee_cents"`
	FreeThresholdCents int64 `yaml:"free_threshold_cents"`
}

type WheelSegment struct {
	Label            string  `yaml:"label"`
	Kind             string  `yaml:"kind"` // percentage | fixed | free_shipping | none
	PercentOff       float64 `yaml:"percent_off"`
	AmountOffCents   int64   `yaml:"amount_off_cents"`
	MaxDiscountCents int64   `yaml:"max_discount_cents"`
	MinOrderCents    int64   `yaml:"min_order_cents"`
	ValidityDays     int     `yaml:"validity_days"`
	Weight           int     `yaml:"weight"`
}

func DefaultStoreSettings() StoreSettings {
	return StoreSettings{
		Currency: "INR",
		Shipping: ShippingSettings{
			FlatFeeCents:       4900,
			FreeThresholdCents: 99900,
		},
		Wheel: []WheelSegment{
			{Label: "10% OFF", Kind: "percentage", PercentOff: 10, MaxDiscountCents: 20000, ValidityDays: 7, Weight: 30},
			{Label: "₹50 OFF", Kind: "fixed", AmountOffCents: 5000, MinOrderCents: 49900, ValidityDays: 7, Weight: 25},
			{Label: "FREE SHIPPING", Kind: "free_shipping", ValidityDays: 7, Weight: 20},
			{Label: "20% OFF", Kind: "percentage", PercentOff: 20, MaxDiscountCents: 30000, ValidityDays: 3, Weight: 5},
			{Label: "Better luck next time", Kind: "none", Weight: 20},
		},
	}
}

// LoadStoreSettings falls back to DefaultStoreSettings when path is empty or missing.
func LoadStoreSettings(path string) (StoreSettings, error) {
	settings := DefaultStoreSettings()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return StoreSettings{}, fmt.Errorf("failed to read store settings %s: %w", path, err)
	}

	var fromFile StoreSettings
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return StoreSettings{}, fmt.Errorf("failed to parse store settings %s: %w", path, err)
	}

	if fromFile.Currency != "" {
		settings.Currency = fromFile.Currency
	}
	if fromFile.Shipping != (ShippingSettings{}) {
		settings.Shipping = fromFile.Shipping
	}
	if len(fromFile.Wheel) > 0 {
		settings.Wheel = fromFile.Wheel
	}
	return settings, nil
}
