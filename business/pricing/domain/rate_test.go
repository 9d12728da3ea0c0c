package domain

import (
	"math/big"
	"testing"
	"time"

	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/asset"
)

var (
	testWETH = asset.MustNewToken(asset.ChainIDPolygon, asset.AddrWETHPolygon, "WETH", "Wrapped Ether", 18)
	testUSDC = asset.MustNewToken(asset.ChainIDPolygon, asset.AddrUSDCPolygon, "USDC", "USD Coin", 6)
)

func testVenue(name string) Venue {
	return Venue{Name: name, Protocol: ProtocolUniswapV2}
}

func mustPair(t *testing.T, in, out *asset.Asset) TokenPair {
	t.Helper()
	p, err := NewTokenPair(in, out)
	if err != nil {
		t.Fatalf("NewTokenPair: %v", err)
	}
	return p
}

func mustQuote(t *testing.T, pair TokenPair, inRaw, outRaw *big.Int) Quote {
	t.Helper()
	q, err := NewQuote(
		testVenue("quickswap"),
		pair,
		asset.NewAmount(pair.In, inRaw),
		asset.NewAmount(pair.Out, outRaw),
		time.Now(),
	)
	if err != nil {
		t.Fatalf("NewQuote: %v", err)
	}
	return q
}

func TestNormalize_MixedDecimals(t *testing.T) {
	pair := mustPair(t, testWETH, testUSDC)

	// 1 WETH (18 decimals) -> 2000 USDC (6 decimals) is a rate of 2000.
	q := mustQuote(t, pair,
		new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil),
		big.NewInt(2_000_000_000),
	)

	r, err := Normalize(q)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	got := r.Price.Rate()
	if got.String() != "2000" {
		t.Errorf("rate = %s, want 2000", got)
	}
}

func TestNormalize_SameDecimalsIdentity(t *testing.T) {
	testDAI := asset.MustNewToken(asset.ChainIDPolygon, asset.AddrDAIPolygon, "DAI", "Dai", 18)
	pair := mustPair(t, testWETH, testDAI)

	one := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	q := mustQuote(t, pair, one, new(big.Int).Set(one))

	r, err := Normalize(q)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if r.Price.Rate().String() != "1" {
		t.Errorf("rate = %s, want 1", r.Price.Rate())
	}
}

func TestNormalize_ZeroOutputIsUnusable(t *testing.T) {
	pair := mustPair(t, testWETH, testUSDC)
	q := mustQuote(t, pair,
		new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil),
		big.NewInt(0),
	)

	r, err := Normalize(q)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if r.IsUsable() {
		t.Error("zero output rate should be unusable")
	}
	if !r.Price.IsZero() {
		t.Error("zero output should normalize to a zero rate")
	}
}

func TestNormalize_TruncatesTowardZero(t *testing.T) {
	pair := mustPair(t, testWETH, testUSDC)

	// 3 base units in, 1 quote unit out: the fixed-point division leaves a
	// remainder that must be dropped, never rounded up.
	inRaw := new(big.Int).Mul(big.NewInt(3), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))
	q := mustQuote(t, pair, inRaw, big.NewInt(1_000_000))

	r, err := Normalize(q)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	want := "333333333333333333" // 1/3 at 18 decimals, truncated
	if r.Price.RateRaw().String() != want {
		t.Errorf("raw rate = %s, want %s", r.Price.RateRaw(), want)
	}
}

func TestNormalize_MonotonicInOutput(t *testing.T) {
	pair := mustPair(t, testWETH, testUSDC)
	inRaw := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

	prev := big.NewInt(-1)
	for _, outRaw := range []int64{1_000_000, 2_000_000, 3_500_000} {
		q := mustQuote(t, pair, inRaw, big.NewInt(outRaw))
		r, err := Normalize(q)
		if err != nil {
			t.Fatalf("Normalize: %v", err)
		}
		if r.Price.RateRaw().Cmp(prev) <= 0 {
			t.Errorf("rate not strictly increasing at out=%d", outRaw)
		}
		prev = r.Price.RateRaw()
	}
}

func TestNewQuote_RejectsMismatchedAssets(t *testing.T) {
	pair := mustPair(t, testWETH, testUSDC)

	_, err := NewQuote(
		testVenue("quickswap"),
		pair,
		asset.NewAmount(testUSDC, big.NewInt(1)),
		asset.NewAmount(testUSDC, big.NewInt(1)),
		time.Now(),
	)
	if err == nil {
		t.Error("expected error for input amount in wrong asset")
	}
}

func TestParseProtocol(t *testing.T) {
	if _, err := ParseProtocol("univ2"); err != nil {
		t.Errorf("univ2 should parse: %v", err)
	}
	if _, err := ParseProtocol("univ3"); err == nil {
		t.Error("univ3 should be rejected")
	}
}
