package app

import (
	"testing"

	"github.com/shopspring/decimal"

	pricingDomain "github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/pricing/domain"
)

func newTestEvaluator(amountIn, gasCost, threshold string) *Evaluator {
	return NewEvaluator(
		NewProfitCalculator(
			decimal.RequireFromString(amountIn),
			decimal.RequireFromString(gasCost),
		),
		decimal.RequireFromString(threshold),
	)
}

func TestEvaluator_DetectsClearingDirection(t *testing.T) {
	// 1000 * (1.02 - 1.00) - 2 = 18, threshold 5.
	e := newTestEvaluator("1000", "2.0", "5.0")

	opp, found := e.Evaluate([]pricingDomain.Rate{
		makeRate("quickswap", "1.00"),
		makeRate("sushiswap", "1.02"),
	})
	if !found {
		t.Fatal("expected an opportunity")
	}

	if opp.Direction.BuyVenue != "quickswap" || opp.Direction.SellVenue != "sushiswap" {
		t.Errorf("direction = %+v, want buy quickswap sell sushiswap", opp.Direction)
	}
	if !opp.NetProfit.Equal(decimal.RequireFromString("18")) {
		t.Errorf("net = %s, want 18", opp.NetProfit)
	}
}

func TestEvaluator_NoOpportunityBelowThreshold(t *testing.T) {
	// 1000 * 0.001 - 2 = -1.
	e := newTestEvaluator("1000", "2.0", "5.0")

	_, found := e.Evaluate([]pricingDomain.Rate{
		makeRate("quickswap", "1.000"),
		makeRate("sushiswap", "1.001"),
	})
	if found {
		t.Error("spread below gas cost should not produce an opportunity")
	}
}

func TestEvaluator_PositiveButUnderThreshold(t *testing.T) {
	// Net is 18 but threshold is 20.
	e := newTestEvaluator("1000", "2.0", "20.0")

	_, found := e.Evaluate([]pricingDomain.Rate{
		makeRate("quickswap", "1.00"),
		makeRate("sushiswap", "1.02"),
	})
	if found {
		t.Error("net below threshold should not produce an opportunity")
	}
}

func TestEvaluator_ExactThresholdClears(t *testing.T) {
	// Net is exactly 18 and threshold is 18.
	e := newTestEvaluator("1000", "2.0", "18.0")

	opp, found := e.Evaluate([]pricingDomain.Rate{
		makeRate("quickswap", "1.00"),
		makeRate("sushiswap", "1.02"),
	})
	if !found {
		t.Fatal("net at threshold should produce an opportunity")
	}
	if !opp.NetProfit.Equal(opp.Threshold) {
		t.Errorf("net %s should equal threshold %s", opp.NetProfit, opp.Threshold)
	}
}

func TestEvaluator_ExactTieIsDeterministic(t *testing.T) {
	// Identical rates make both directions tie at net = -gas; nothing clears.
	// With zero gas and zero threshold the rule still needs positive net,
	// so a perfect tie produces no opportunity either way.
	e := newTestEvaluator("1000", "0", "0")

	rates := []pricingDomain.Rate{
		makeRate("quickswap", "1.00"),
		makeRate("sushiswap", "1.00"),
	}

	for range 10 {
		if _, found := e.Evaluate(rates); found {
			t.Fatal("zero-spread tie must not alert")
		}
	}
}

func TestEvaluator_TiedDirectionsPickFirstDeclared(t *testing.T) {
	// Three venues where two distinct directions yield the same net profit:
	// buy at 1.00 on either cheap venue, sell at 1.02. The direction using
	// the earlier-listed buy venue must win every time.
	e := newTestEvaluator("1000", "0", "0")

	rates := []pricingDomain.Rate{
		makeRate("quickswap", "1.00"),
		makeRate("dfyn", "1.00"),
		makeRate("sushiswap", "1.02"),
	}

	for range 10 {
		opp, found := e.Evaluate(rates)
		if !found {
			t.Fatal("expected an opportunity")
		}
		if opp.Direction.BuyVenue != "quickswap" {
			t.Fatalf("tie broke to %s, want first-declared quickswap", opp.Direction.BuyVenue)
		}
	}
}

func TestEvaluator_ZeroRateVenueExcluded(t *testing.T) {
	// A zero rate would otherwise look like an infinitely cheap buy.
	e := newTestEvaluator("1000", "0", "0")

	_, found := e.Evaluate([]pricingDomain.Rate{
		makeRate("quickswap", "0"),
		makeRate("sushiswap", "1.02"),
	})
	if found {
		t.Error("venue with zero rate must be excluded from comparison")
	}
}

func TestEvaluator_SingleUsableVenue(t *testing.T) {
	e := newTestEvaluator("1000", "0", "0")

	_, found := e.Evaluate([]pricingDomain.Rate{
		makeRate("quickswap", "1.00"),
	})
	if found {
		t.Error("one venue cannot form a round trip")
	}
}

func TestEvaluator_PicksBestDirection(t *testing.T) {
	// Buy dfyn (0.98), sell sushiswap (1.02) beats any other combination.
	e := newTestEvaluator("1000", "2.0", "5.0")

	opp, found := e.Evaluate([]pricingDomain.Rate{
		makeRate("quickswap", "1.00"),
		makeRate("dfyn", "0.98"),
		makeRate("sushiswap", "1.02"),
	})
	if !found {
		t.Fatal("expected an opportunity")
	}
	if opp.Direction.BuyVenue != "dfyn" || opp.Direction.SellVenue != "sushiswap" {
		t.Errorf("direction = %+v, want buy dfyn sell sushiswap", opp.Direction)
	}
	// 1000*(1.02-0.98) - 2 = 38
	if !opp.NetProfit.Equal(decimal.RequireFromString("38")) {
		t.Errorf("net = %s, want 38", opp.NetProfit)
	}
}
