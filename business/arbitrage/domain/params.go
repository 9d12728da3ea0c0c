// Package domain contains the core domain types for the arbitrage context.
package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TradeParameters holds the fixed parameters of the simulated round trip.
// AmountIn is in whole units of the input token; GasCostEstimate and
// ProfitThreshold are in whole units of the output token.
type TradeParameters struct {
	AmountIn        decimal.Decimal
	GasCostEstimate decimal.Decimal
	ProfitThreshold decimal.Decimal
	PollInterval    time.Duration
}

// Validate checks the parameters are internally consistent.
func (p TradeParameters) Validate() error {
	if !p.AmountIn.IsPositive() {
		return fmt.Errorf("trade amount must be positive, got %s", p.AmountIn)
	}
	if p.GasCostEstimate.IsNegative() {
		return fmt.Errorf("gas cost estimate cannot be negative, got %s", p.GasCostEstimate)
	}
	if p.PollInterval < time.Second {
		return fmt.Errorf("poll interval must be at least 1s, got %s", p.PollInterval)
	}
	return nil
}
