package cmd

import (
	"strconv"
	"time"

	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
)

// Config carries all environment-driven settings. Fee knobs are optional
// strings; empty values fall back to the standard marketplace rates.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	ScanTimeoutSeconds string

	PlatformRate   string
	ProcessingRate string
	TierAFee       string
	TierBFee       string
	TierCFee       string
}

// ScanTimeout parses the scan wait timeout. Unset or unparsable values
// resolve to zero, which the listener replaces with its default.
func (c Config) ScanTimeout() time.Duration {
	seconds, err := strconv.Atoi(c.ScanTimeoutSeconds)
	if err != nil || seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

// PricingConfig builds the fee schedule, overriding defaults with any
// rates and tier amounts set in the environment.
func (c Config) PricingConfig() pricing.Config {
	config := pricing.DefaultConfig()

	if rate, err := decimal.NewFromString(c.PlatformRate); c.PlatformRate != "" && err == nil {
		config.PlatformRate = rate
	}
	if rate, err := decimal.NewFromString(c.ProcessingRate); c.ProcessingRate != "" && err == nil {
		config.ProcessingRate = rate
	}
	if fee, ok := parseFee(c.TierAFee); ok {
		config.TierAFee = fee
	}
	if fee, ok := parseFee(c.TierBFee); ok {
		config.TierBFee = fee
	}
	if fee, ok := parseFee(c.TierCFee); ok {
		config.TierCFee = fee
	}

	return config
}

func parseFee(raw string) (kernel.Money, bool) {
	if raw == "" {
		return kernel.Money{}, false
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return kernel.Money{}, false
	}
	fee, err := kernel.NewMoneyFromFloat(amount)
	if err != nil {
		return kernel.Money{}, false
	}
	return fee, true
}
