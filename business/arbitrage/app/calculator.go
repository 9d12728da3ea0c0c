package app

import (
	"github.com/shopspring/decimal"

	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/arbitrage/domain"
	pricingDomain "github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/pricing/domain"
)

// ProfitCalculator simulates the round trip for one direction.
type ProfitCalculator struct {
	amountIn decimal.Decimal
	gasCost  decimal.Decimal
}

// NewProfitCalculator creates a calculator for a fixed trade size and gas estimate.
func NewProfitCalculator(amountIn, gasCost decimal.Decimal) *ProfitCalculator {
	return &ProfitCalculator{
		amountIn: amountIn,
		gasCost:  gasCost,
	}
}

// Calculate simulates buying amountIn at the buy venue and selling it at the
// sell venue. All figures are in the output token:
//
//	cost basis     = amountIn * buy rate
//	gross proceeds = amountIn * sell rate
//	net profit     = gross proceeds - cost basis - gas cost
func (c *ProfitCalculator) Calculate(buy, sell pricingDomain.Rate) domain.Profit {
	costBasis := c.amountIn.Mul(buy.Price.Rate())
	grossProceeds := c.amountIn.Mul(sell.Price.Rate())
	netProfit := grossProceeds.Sub(costBasis).Sub(c.gasCost)

	return domain.Profit{
		Buy:           domain.Leg{Venue: buy.Venue, Rate: buy},
		Sell:          domain.Leg{Venue: sell.Venue, Rate: sell},
		GrossProceeds: grossProceeds,
		CostBasis:     costBasis,
		GasCost:       c.gasCost,
		NetProfit:     netProfit,
	}
}

// AmountIn returns the fixed simulated trade size.
func (c *ProfitCalculator) AmountIn() decimal.Decimal {
	return c.amountIn
}
