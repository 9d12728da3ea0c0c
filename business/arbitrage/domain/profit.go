package domain

import (
	"github.com/shopspring/decimal"

	pricingDomain "github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/pricing/domain"
)

// Leg binds a venue to the rate it quoted for the pair.
type Leg struct {
	Venue pricingDomain.Venue
	Rate  pricingDomain.Rate
}

// Usable reports whether the leg's venue quoted a nonzero rate.
func (l Leg) Usable() bool {
	return l.Rate.IsUsable()
}

// Profit is the simulated round-trip result for one direction, denominated
// in the output token.
type Profit struct {
	Buy  Leg
	Sell Leg

	// GrossProceeds is what selling AmountIn at the sell venue returns.
	GrossProceeds decimal.Decimal
	// CostBasis is what buying AmountIn at the buy venue costs.
	CostBasis decimal.Decimal
	// GasCost is the flat per-round-trip estimate.
	GasCost decimal.Decimal
	// NetProfit is GrossProceeds - CostBasis - GasCost.
	NetProfit decimal.Decimal
}

// Direction returns this profit's trade direction.
func (p Profit) Direction() Direction {
	return Direction{
		BuyVenue:  p.Buy.Venue.Name,
		SellVenue: p.Sell.Venue.Name,
	}
}

// Usable reports whether both legs carried a nonzero rate.
func (p Profit) Usable() bool {
	return p.Buy.Usable() && p.Sell.Usable()
}
