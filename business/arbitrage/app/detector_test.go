package app

import (
	"context"
	"io"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/arbitrage/domain"
	pricingApp "github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/pricing/app"
	pricingDomain "github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/pricing/domain"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/apperror"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/asset"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/logger"
)

type stubSource struct {
	venue  pricingDomain.Venue
	outRaw *big.Int
	err    error
}

func (s *stubSource) Venue() pricingDomain.Venue { return s.venue }

func (s *stubSource) GetQuote(_ context.Context, pair pricingDomain.TokenPair, amountIn *big.Int) (pricingDomain.Quote, error) {
	if s.err != nil {
		return pricingDomain.Quote{}, s.err
	}
	return pricingDomain.NewQuote(s.venue, pair,
		asset.NewAmount(pair.In, amountIn),
		asset.NewAmount(pair.Out, s.outRaw),
		time.Now())
}

type recordingReporter struct {
	mu       sync.Mutex
	started  bool
	stopped  bool
	reported []domain.Opportunity
	cycles   []CycleResult
}

func (r *recordingReporter) Start(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = true
	return nil
}

func (r *recordingReporter) Report(opp domain.Opportunity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reported = append(r.reported, opp)
}

func (r *recordingReporter) CycleCompleted(result CycleResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cycles = append(r.cycles, result)
}

func (r *recordingReporter) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopped = true
	return nil
}

func (r *recordingReporter) snapshot() ([]domain.Opportunity, []CycleResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Opportunity(nil), r.reported...), append([]CycleResult(nil), r.cycles...)
}

// usdcOut converts a whole-unit USDC amount to raw base units.
func usdcOut(units int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(units), big.NewInt(1_000_000))
}

func newTestDetector(t *testing.T, reporter Reporter, threshold string, sources ...pricingApp.QuoteSource) *Detector {
	t.Helper()

	weth := asset.MustNewToken(asset.ChainIDPolygon, asset.AddrWETHPolygon, "WETH", "Wrapped Ether", 18)
	usdc := asset.MustNewToken(asset.ChainIDPolygon, asset.AddrUSDCPolygon, "USDC", "USD Coin", 6)
	pair, err := pricingDomain.NewTokenPair(weth, usdc)
	if err != nil {
		t.Fatalf("NewTokenPair: %v", err)
	}

	log := logger.New(io.Discard, logger.LevelError, "test", nil)
	pricing := pricingApp.NewPricingService(sources, log)

	params := domain.TradeParameters{
		AmountIn:        decimal.NewFromInt(1),
		GasCostEstimate: decimal.RequireFromString("2.0"),
		ProfitThreshold: decimal.RequireFromString(threshold),
		PollInterval:    time.Second,
	}

	evaluator := NewEvaluator(
		NewProfitCalculator(params.AmountIn, params.GasCostEstimate),
		params.ProfitThreshold,
	)

	d, err := NewDetector(pricing, evaluator, reporter, pair, params, log)
	if err != nil {
		t.Fatalf("NewDetector: %v", err)
	}
	return d
}

func TestDetector_CycleReportsOpportunity(t *testing.T) {
	reporter := &recordingReporter{}

	// 1 WETH: buy at 2000, sell at 2010, gas 2 -> net 8, threshold 5.
	d := newTestDetector(t, reporter, "5.0",
		&stubSource{venue: pricingDomain.Venue{Name: "quickswap"}, outRaw: usdcOut(2000)},
		&stubSource{venue: pricingDomain.Venue{Name: "sushiswap"}, outRaw: usdcOut(2010)},
	)

	d.runCycle(context.Background(), 1)

	reported, cycles := reporter.snapshot()
	if len(reported) != 1 {
		t.Fatalf("got %d reports, want 1", len(reported))
	}
	if !reported[0].NetProfit.Equal(decimal.RequireFromString("8")) {
		t.Errorf("net = %s, want 8", reported[0].NetProfit)
	}
	if reported[0].Direction.BuyVenue != "quickswap" || reported[0].Direction.SellVenue != "sushiswap" {
		t.Errorf("direction = %+v", reported[0].Direction)
	}

	if len(cycles) != 1 || cycles[0].Status != CycleStatusOpportunity {
		t.Errorf("cycles = %+v, want one opportunity cycle", cycles)
	}
}

func TestDetector_CycleNoOpportunity(t *testing.T) {
	reporter := &recordingReporter{}

	// Identical rates: net is -gas, nothing to report.
	d := newTestDetector(t, reporter, "5.0",
		&stubSource{venue: pricingDomain.Venue{Name: "quickswap"}, outRaw: usdcOut(2000)},
		&stubSource{venue: pricingDomain.Venue{Name: "sushiswap"}, outRaw: usdcOut(2000)},
	)

	d.runCycle(context.Background(), 1)

	reported, cycles := reporter.snapshot()
	if len(reported) != 0 {
		t.Errorf("got %d reports, want 0", len(reported))
	}
	if len(cycles) != 1 || cycles[0].Status != CycleStatusNoOpportunity {
		t.Errorf("cycles = %+v, want one no_opportunity cycle", cycles)
	}
	if len(cycles) == 1 && len(cycles[0].Rates) != 2 {
		t.Errorf("cycle should carry both venue rates")
	}
}

func TestDetector_CycleSkippedOnFetchFailure(t *testing.T) {
	reporter := &recordingReporter{}

	d := newTestDetector(t, reporter, "5.0",
		&stubSource{venue: pricingDomain.Venue{Name: "quickswap"}, outRaw: usdcOut(2000)},
		&stubSource{venue: pricingDomain.Venue{Name: "sushiswap"}, err: apperror.New(apperror.CodeRPCTimeout)},
	)

	d.runCycle(context.Background(), 1)
	// The loop must survive a failed cycle; a second one still runs.
	d.runCycle(context.Background(), 2)

	reported, cycles := reporter.snapshot()
	if len(reported) != 0 {
		t.Errorf("skipped cycles must not report, got %d", len(reported))
	}
	if len(cycles) != 2 {
		t.Fatalf("got %d cycles, want 2", len(cycles))
	}
	for _, c := range cycles {
		if c.Status != CycleStatusSkipped {
			t.Errorf("cycle %d status = %s, want skipped", c.Number, c.Status)
		}
		if c.Err == nil {
			t.Errorf("skipped cycle %d should carry its error", c.Number)
		}
	}
}

func TestDetector_CancelledCycleProducesNoOutput(t *testing.T) {
	reporter := &recordingReporter{}

	d := newTestDetector(t, reporter, "5.0",
		&stubSource{venue: pricingDomain.Venue{Name: "quickswap"}, outRaw: usdcOut(2000)},
		&stubSource{venue: pricingDomain.Venue{Name: "sushiswap"}, outRaw: usdcOut(2010)},
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d.runCycle(ctx, 1)

	reported, cycles := reporter.snapshot()
	if len(reported) != 0 || len(cycles) != 0 {
		t.Errorf("cancelled cycle produced output: %d reports, %d cycles", len(reported), len(cycles))
	}
}

func TestDetector_RunStopsPromptly(t *testing.T) {
	reporter := &recordingReporter{}

	d := newTestDetector(t, reporter, "5.0",
		&stubSource{venue: pricingDomain.Venue{Name: "quickswap"}, outRaw: usdcOut(2000)},
		&stubSource{venue: pricingDomain.Venue{Name: "sushiswap"}, outRaw: usdcOut(2000)},
	)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	// Let the immediate first cycle finish, then cancel mid-wait.
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not stop promptly after cancellation")
	}

	reporter.mu.Lock()
	defer reporter.mu.Unlock()
	if !reporter.started || !reporter.stopped {
		t.Error("reporter lifecycle not honored on shutdown")
	}
	if len(reporter.cycles) != 1 {
		t.Errorf("got %d cycles before cancel, want 1", len(reporter.cycles))
	}
}
