package app

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	pricingDomain "github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/pricing/domain"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/asset"
)

var (
	calcWETH = asset.MustNewToken(asset.ChainIDPolygon, asset.AddrWETHPolygon, "WETH", "Wrapped Ether", 18)
	calcUSDC = asset.MustNewToken(asset.ChainIDPolygon, asset.AddrUSDCPolygon, "USDC", "USD Coin", 6)
)

// makeRate builds a venue rate from a decimal rate string.
func makeRate(venue, rate string) pricingDomain.Rate {
	return pricingDomain.Rate{
		Venue: pricingDomain.Venue{Name: venue, Protocol: pricingDomain.ProtocolUniswapV2},
		Price: asset.NewPrice(calcWETH, calcUSDC, decimal.RequireFromString(rate), time.Now()),
	}
}

func TestProfitCalculator_Calculate(t *testing.T) {
	tests := []struct {
		name      string
		amountIn  string
		gasCost   string
		buyRate   string
		sellRate  string
		wantGross string
		wantCost  string
		wantNet   string
	}{
		{
			name:      "clear_spread",
			amountIn:  "1000",
			gasCost:   "2.0",
			buyRate:   "1.00",
			sellRate:  "1.02",
			wantGross: "1020",
			wantCost:  "1000",
			wantNet:   "18", // 1000*(1.02-1.00) - 2
		},
		{
			name:      "spread_eaten_by_gas",
			amountIn:  "1000",
			gasCost:   "2.0",
			buyRate:   "1.000",
			sellRate:  "1.001",
			wantGross: "1001",
			wantCost:  "1000",
			wantNet:   "-1", // 1000*0.001 - 2
		},
		{
			name:      "equal_rates_lose_gas",
			amountIn:  "500",
			gasCost:   "3.5",
			buyRate:   "2000",
			sellRate:  "2000",
			wantGross: "1000000",
			wantCost:  "1000000",
			wantNet:   "-3.5",
		},
		{
			name:      "zero_gas",
			amountIn:  "10",
			gasCost:   "0",
			buyRate:   "1999.5",
			sellRate:  "2000",
			wantGross: "20000",
			wantCost:  "19995",
			wantNet:   "5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := NewProfitCalculator(
				decimal.RequireFromString(tt.amountIn),
				decimal.RequireFromString(tt.gasCost),
			)

			p := calc.Calculate(makeRate("quickswap", tt.buyRate), makeRate("sushiswap", tt.sellRate))

			if !p.GrossProceeds.Equal(decimal.RequireFromString(tt.wantGross)) {
				t.Errorf("gross = %s, want %s", p.GrossProceeds, tt.wantGross)
			}
			if !p.CostBasis.Equal(decimal.RequireFromString(tt.wantCost)) {
				t.Errorf("cost = %s, want %s", p.CostBasis, tt.wantCost)
			}
			if !p.NetProfit.Equal(decimal.RequireFromString(tt.wantNet)) {
				t.Errorf("net = %s, want %s", p.NetProfit, tt.wantNet)
			}
		})
	}
}

func TestProfitCalculator_DirectionAntisymmetry(t *testing.T) {
	calc := NewProfitCalculator(decimal.NewFromInt(1000), decimal.Zero)

	a := makeRate("quickswap", "1.00")
	b := makeRate("sushiswap", "1.02")

	forward := calc.Calculate(a, b)
	reverse := calc.Calculate(b, a)

	// With zero gas the two directions mirror each other.
	if !forward.NetProfit.Equal(reverse.NetProfit.Neg()) {
		t.Errorf("forward net %s should equal -reverse net %s", forward.NetProfit, reverse.NetProfit)
	}
}

func TestProfit_Direction(t *testing.T) {
	calc := NewProfitCalculator(decimal.NewFromInt(1), decimal.Zero)
	p := calc.Calculate(makeRate("quickswap", "1"), makeRate("sushiswap", "2"))

	d := p.Direction()
	if d.BuyVenue != "quickswap" || d.SellVenue != "sushiswap" {
		t.Errorf("direction = %+v, want buy quickswap sell sushiswap", d)
	}
}
