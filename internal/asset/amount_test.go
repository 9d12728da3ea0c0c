package asset_test

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/asset"
)

func TestAmount_Basic(t *testing.T) {
	// 1 WETH = 1e18 wei
	oneWETH := asset.NewAmount(asset.WETH, big.NewInt(1e18))

	if oneWETH.IsZero() {
		t.Error("expected non-zero amount")
	}

	// ToDecimal should return 1.0
	d := oneWETH.ToDecimal()
	if !d.Equal(decimal.NewFromInt(1)) {
		t.Errorf("expected 1, got %s", d.String())
	}

	if oneWETH.String() != "1 WETH" {
		t.Errorf("expected '1 WETH', got '%s'", oneWETH.String())
	}
}

func TestAmount_Add(t *testing.T) {
	one := asset.NewAmount(asset.WETH, big.NewInt(1e18))
	two := asset.NewAmount(asset.WETH, big.NewInt(2e18))

	sum, err := one.Add(two)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !sum.ToDecimal().Equal(decimal.NewFromInt(3)) {
		t.Errorf("expected 3, got %s", sum.ToDecimal().String())
	}
}

func TestAmount_CannotAddDifferentAssets(t *testing.T) {
	oneWETH := asset.NewAmount(asset.WETH, big.NewInt(1e18))
	oneUSDC := asset.NewAmount(asset.USDC, big.NewInt(1e6))

	if _, err := oneWETH.Add(oneUSDC); err == nil {
		t.Error("expected error when adding different assets")
	}
}

func TestAmount_Sub(t *testing.T) {
	three := asset.NewAmount(asset.WETH, big.NewInt(3e18))
	one := asset.NewAmount(asset.WETH, big.NewInt(1e18))

	diff, err := three.Sub(one)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !diff.ToDecimal().Equal(decimal.NewFromInt(2)) {
		t.Errorf("expected 2, got %s", diff.ToDecimal().String())
	}
}

func TestAmount_SubNegativeError(t *testing.T) {
	one := asset.NewAmount(asset.WETH, big.NewInt(1e18))
	two := asset.NewAmount(asset.WETH, big.NewInt(2e18))

	if _, err := one.Sub(two); err == nil {
		t.Error("expected error for negative result")
	}
}

func TestParseDecimal(t *testing.T) {
	// Parse "1.5" WETH
	amount, err := asset.ParseDecimal(asset.WETH, decimal.NewFromFloat(1.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should be 1.5e18 wei
	expected := new(big.Int)
	expected.SetString("1500000000000000000", 10)

	if amount.Raw().Cmp(expected) != 0 {
		t.Errorf("expected %s, got %s", expected.String(), amount.Raw().String())
	}
}

func TestParseDecimal_TooManyDecimals(t *testing.T) {
	// USDC has 6 decimals, try to parse 1.1234567 (7 decimals)
	if _, err := asset.ParseDecimal(asset.USDC, decimal.NewFromFloat(1.1234567)); err == nil {
		t.Error("expected error for too many decimals")
	}
}

func TestPrice_Convert(t *testing.T) {
	// WETH/USDC price = 2000
	price := asset.NewPriceNow(asset.WETH, asset.USDC, decimal.NewFromInt(2000))

	oneWETH := asset.NewAmount(asset.WETH, big.NewInt(1e18))

	usdc, err := price.Convert(oneWETH)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 2000 USDC in smallest units = 2000 * 1e6
	expected := big.NewInt(2_000_000_000)
	if usdc.Raw().Cmp(expected) != 0 {
		t.Errorf("expected %s, got %s", expected.String(), usdc.Raw().String())
	}
}

func TestPrice_IsZero(t *testing.T) {
	zero := asset.NewPriceNow(asset.WETH, asset.USDC, decimal.Zero)
	if !zero.IsZero() {
		t.Error("expected zero price")
	}

	nonZero := asset.NewPriceNow(asset.WETH, asset.USDC, decimal.NewFromInt(1))
	if nonZero.IsZero() {
		t.Error("expected non-zero price")
	}
}
