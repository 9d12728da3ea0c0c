package domain

import (
	"time"

	"github.com/shopspring/decimal"

	pricingDomain "github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/pricing/domain"
)

// Opportunity is a detected arbitrage opportunity: one direction whose
// simulated net profit cleared the configured threshold.
type Opportunity struct {
	Timestamp time.Time
	Pair      pricingDomain.TokenPair
	Direction Direction
	AmountIn  decimal.Decimal

	BuyRate  decimal.Decimal
	SellRate decimal.Decimal

	GrossProceeds decimal.Decimal
	CostBasis     decimal.Decimal
	GasCost       decimal.Decimal
	NetProfit     decimal.Decimal
	Threshold     decimal.Decimal
}

// NewOpportunity builds an Opportunity from a winning profit computation.
func NewOpportunity(pair pricingDomain.TokenPair, p Profit, amountIn, threshold decimal.Decimal, ts time.Time) Opportunity {
	return Opportunity{
		Timestamp:     ts,
		Pair:          pair,
		Direction:     p.Direction(),
		AmountIn:      amountIn,
		BuyRate:       p.Buy.Rate.Price.Rate(),
		SellRate:      p.Sell.Rate.Price.Rate(),
		GrossProceeds: p.GrossProceeds,
		CostBasis:     p.CostBasis,
		GasCost:       p.GasCost,
		NetProfit:     p.NetProfit,
		Threshold:     threshold,
	}
}
