package app

import (
	"github.com/shopspring/decimal"

	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/arbitrage/domain"
	pricingDomain "github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/pricing/domain"
)

// Evaluator compares venue rates and decides whether any direction clears
// the profit threshold.
type Evaluator struct {
	calculator *ProfitCalculator
	threshold  decimal.Decimal
}

// NewEvaluator creates an Evaluator with the given calculator and threshold.
func NewEvaluator(calculator *ProfitCalculator, threshold decimal.Decimal) *Evaluator {
	return &Evaluator{
		calculator: calculator,
		threshold:  threshold,
	}
}

// Evaluate simulates every direction between distinct usable venues and
// returns the best one that clears the threshold. Rates quoting zero are
// excluded from comparison. On an exact profit tie the direction declared
// first wins, so results are deterministic for identical inputs.
func (e *Evaluator) Evaluate(rates []pricingDomain.Rate) (domain.Opportunity, bool) {
	var best domain.Profit
	found := false

	for i, buy := range rates {
		if !buy.IsUsable() {
			continue
		}
		for j, sell := range rates {
			if i == j || !sell.IsUsable() {
				continue
			}

			p := e.calculator.Calculate(buy, sell)
			if !e.clears(p.NetProfit) {
				continue
			}
			if !found || p.NetProfit.GreaterThan(best.NetProfit) {
				best = p
				found = true
			}
		}
	}

	if !found {
		return domain.Opportunity{}, false
	}

	pair := pricingDomain.TokenPair{
		In:  best.Buy.Rate.Price.Base(),
		Out: best.Buy.Rate.Price.Quote(),
	}

	return domain.NewOpportunity(pair, best, e.calculator.AmountIn(), e.threshold, best.Sell.Rate.Price.Timestamp()), true
}

// clears applies the alert rule: net profit must be positive and at or
// above the threshold.
func (e *Evaluator) clears(netProfit decimal.Decimal) bool {
	return netProfit.IsPositive() && netProfit.GreaterThanOrEqual(e.threshold)
}
