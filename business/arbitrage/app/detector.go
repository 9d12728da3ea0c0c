package app

import (
	"context"
	"math/big"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/arbitrage/domain"
	pricingApp "github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/pricing/app"
	pricingDomain "github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/pricing/domain"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/apm"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/asset"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/logger"
)

const (
	detectorTracerName = "arbitrage-detector"
	detectorMeterName  = "arbitrage-detector"
)

// detectorMetrics holds OTEL metric instruments.
type detectorMetrics struct {
	cyclesTotal        metric.Int64Counter
	cyclesSkipped      metric.Int64Counter
	opportunitiesTotal metric.Int64Counter
	cycleDuration      metric.Float64Histogram
}

// Detector runs the fixed-interval detection loop: fetch quotes, normalize,
// evaluate, report.
type Detector struct {
	pricing   *pricingApp.PricingService
	evaluator *Evaluator
	reporter  Reporter
	pair      pricingDomain.TokenPair
	params    domain.TradeParameters
	logger    logger.LoggerInterface

	// amountInRaw is params.AmountIn scaled to the input token's base units.
	amountInRaw *big.Int

	tracer  apm.Tracer
	metrics *detectorMetrics
}

// NewDetector creates a Detector. The trade size is converted to the input
// token's base units once, up front.
func NewDetector(
	pricing *pricingApp.PricingService,
	evaluator *Evaluator,
	reporter Reporter,
	pair pricingDomain.TokenPair,
	params domain.TradeParameters,
	log logger.LoggerInterface,
) (*Detector, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	amountIn, err := asset.ParseDecimal(pair.In, params.AmountIn)
	if err != nil {
		return nil, err
	}

	d := &Detector{
		pricing:     pricing,
		evaluator:   evaluator,
		reporter:    reporter,
		pair:        pair,
		params:      params,
		logger:      log,
		amountInRaw: amountIn.Raw(),
		tracer:      apm.NewTracer(detectorTracerName),
	}

	if err := d.initMetrics(); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Detector) initMetrics() error {
	meter := otel.Meter(detectorMeterName)
	var err error

	d.metrics = &detectorMetrics{}

	d.metrics.cyclesTotal, err = meter.Int64Counter(
		"detector_cycles_total",
		metric.WithDescription("Total detection cycles run"),
	)
	if err != nil {
		return err
	}

	d.metrics.cyclesSkipped, err = meter.Int64Counter(
		"detector_cycles_skipped_total",
		metric.WithDescription("Detection cycles abandoned after a failure"),
	)
	if err != nil {
		return err
	}

	d.metrics.opportunitiesTotal, err = meter.Int64Counter(
		"detector_opportunities_total",
		metric.WithDescription("Opportunities that cleared the threshold"),
	)
	if err != nil {
		return err
	}

	d.metrics.cycleDuration, err = meter.Float64Histogram(
		"detector_cycle_duration_ms",
		metric.WithDescription("Detection cycle duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return err
	}

	return nil
}

// Run executes detection cycles on a fixed interval until ctx is cancelled.
// One cycle runs immediately on start. A failed cycle is logged and skipped;
// the loop keeps ticking.
func (d *Detector) Run(ctx context.Context) error {
	if err := d.reporter.Start(ctx); err != nil {
		return err
	}
	defer d.reporter.Stop()

	d.logger.Info(ctx, "Detector started",
		"pair", d.pair.String(),
		"amount_in", d.params.AmountIn.String(),
		"threshold", d.params.ProfitThreshold.String(),
		"interval", d.params.PollInterval.String())

	ticker := time.NewTicker(d.params.PollInterval)
	defer ticker.Stop()

	var cycle uint64
	for {
		cycle++
		d.runCycle(ctx, cycle)

		select {
		case <-ctx.Done():
			d.logger.Info(ctx, "Detector stopping", "reason", ctx.Err().Error(), "cycles", cycle)
			return nil
		case <-ticker.C:
		}
	}
}

func (d *Detector) runCycle(parent context.Context, number uint64) {
	ctx, span := d.tracer.StartSpanFromContext(parent, "detector.cycle",
		trace.WithAttributes(attribute.Int64("cycle", int64(number))),
	)
	defer span.End()

	start := time.Now()
	d.metrics.cyclesTotal.Add(ctx, 1)

	result := CycleResult{
		Number:    number,
		Timestamp: start,
	}

	rates, opp, found, err := d.detect(ctx)

	result.Duration = time.Since(start)
	d.metrics.cycleDuration.Record(ctx, float64(result.Duration.Milliseconds()))

	// A cancelled cycle must not produce output for a shutdown in progress.
	if parent.Err() != nil {
		span.SetStatus(codes.Error, "cancelled")
		return
	}

	switch {
	case err != nil:
		result.Status = CycleStatusSkipped
		result.Err = err
		d.metrics.cyclesSkipped.Add(ctx, 1)
		span.NoticeError(err)
		d.logger.Warn(ctx, "Cycle skipped", "cycle", number, "error", err.Error())

	case found:
		result.Status = CycleStatusOpportunity
		result.Rates = rates
		d.metrics.opportunitiesTotal.Add(ctx, 1)
		span.SetStatus(codes.Ok, "opportunity detected")
		d.logger.Info(ctx, "Arbitrage opportunity detected",
			"cycle", number,
			"direction", opp.Direction.String(),
			"net_profit", opp.NetProfit.String(),
			"threshold", opp.Threshold.String())
		d.reporter.Report(opp)

	default:
		result.Status = CycleStatusNoOpportunity
		result.Rates = rates
		span.SetStatus(codes.Ok, "no opportunity")
		d.logger.Debug(ctx, "No opportunity", "cycle", number)
	}

	d.reporter.CycleCompleted(result)
}

// detect runs one fetch-normalize-evaluate pass.
func (d *Detector) detect(ctx context.Context) ([]pricingDomain.Rate, domain.Opportunity, bool, error) {
	quotes, err := d.pricing.FetchQuotes(ctx, d.pair, d.amountInRaw)
	if err != nil {
		return nil, domain.Opportunity{}, false, err
	}

	rates, err := d.pricing.NormalizeAll(quotes)
	if err != nil {
		return nil, domain.Opportunity{}, false, err
	}

	opp, found := d.evaluator.Evaluate(rates)
	return rates, opp, found, nil
}
