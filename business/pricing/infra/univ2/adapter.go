// Package univ2 implements the QuoteSource interface for Uniswap-V2-style routers.
package univ2

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	blockchainapp "github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/blockchain/app"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/pricing/app"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/pricing/domain"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/apperror"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/apm"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/asset"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/logger"
)

const (
	tracerName = "univ2"
	meterName  = "univ2"
)

// Ensure Adapter implements QuoteSource.
var _ app.QuoteSource = (*Adapter)(nil)

// adapterMetrics holds OTEL metric instruments.
type adapterMetrics struct {
	quotesTotal  metric.Int64Counter
	quoteLatency metric.Float64Histogram
	quoteErrors  metric.Int64Counter
}

// Adapter quotes a single V2 router through the shared contract caller.
type Adapter struct {
	caller    blockchainapp.ContractCaller
	venue     domain.Venue
	routerABI abi.ABI
	logger    logger.LoggerInterface

	tracer  apm.Tracer
	metrics *adapterMetrics
}

// NewAdapter creates a quote source for one V2-compatible router.
func NewAdapter(caller blockchainapp.ContractCaller, venue domain.Venue, log logger.LoggerInterface) (*Adapter, error) {
	parsedABI, err := abi.JSON(strings.NewReader(RouterV2ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse router ABI: %w", err)
	}

	a := &Adapter{
		caller:    caller,
		venue:     venue,
		routerABI: parsedABI,
		logger:    log,
		tracer:    apm.NewTracer(tracerName),
	}

	if err := a.initMetrics(); err != nil {
		return nil, fmt.Errorf("failed to init metrics: %w", err)
	}

	return a, nil
}

func (a *Adapter) initMetrics() error {
	meter := otel.Meter(meterName)
	var err error

	a.metrics = &adapterMetrics{}

	a.metrics.quotesTotal, err = meter.Int64Counter(
		"univ2_quotes_total",
		metric.WithDescription("Total quote requests"),
	)
	if err != nil {
		return err
	}

	a.metrics.quoteLatency, err = meter.Float64Histogram(
		"univ2_quote_latency_ms",
		metric.WithDescription("Quote request latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return err
	}

	a.metrics.quoteErrors, err = meter.Int64Counter(
		"univ2_quote_errors_total",
		metric.WithDescription("Total quote errors"),
	)
	if err != nil {
		return err
	}

	return nil
}

// Venue identifies the router this adapter quotes from.
func (a *Adapter) Venue() domain.Venue {
	return a.venue
}

// GetQuote calls getAmountsOut on the router for the direct In->Out path.
func (a *Adapter) GetQuote(ctx context.Context, pair domain.TokenPair, amountIn *big.Int) (domain.Quote, error) {
	ctx, span := a.tracer.StartSpanFromContext(ctx, "univ2.get_quote",
		trace.WithAttributes(
			attribute.String("venue", a.venue.Name),
			attribute.String("pair", pair.String()),
			attribute.String("amount_in", amountIn.String()),
		),
	)
	defer span.End()

	start := time.Now()
	a.metrics.quotesTotal.Add(ctx, 1)

	if amountIn == nil || amountIn.Sign() <= 0 {
		a.metrics.quoteErrors.Add(ctx, 1)
		err := apperror.New(apperror.CodeInvalidTradeSize,
			apperror.WithContext(a.venue.Name))
		span.NoticeError(err)
		return domain.Quote{}, err
	}

	path := []common.Address{pair.In.Address(), pair.Out.Address()}

	callData, err := a.routerABI.Pack("getAmountsOut", amountIn, path)
	if err != nil {
		a.metrics.quoteErrors.Add(ctx, 1)
		span.NoticeError(err)
		return domain.Quote{}, apperror.New(apperror.CodeQuoteFailed,
			apperror.WithCause(err),
			apperror.WithContext("failed to encode getAmountsOut call"))
	}

	result, err := a.caller.CallContract(ctx, a.venue.Router, callData)

	latency := float64(time.Since(start).Milliseconds())
	a.metrics.quoteLatency.Record(ctx, latency)

	if err != nil {
		a.metrics.quoteErrors.Add(ctx, 1)
		span.NoticeError(err)
		return domain.Quote{}, err
	}

	amountOut, err := a.decodeAmountsOut(result, len(path))
	if err != nil {
		a.metrics.quoteErrors.Add(ctx, 1)
		span.NoticeError(err)
		return domain.Quote{}, err
	}

	quote, err := domain.NewQuote(
		a.venue,
		pair,
		asset.NewAmount(pair.In, amountIn),
		asset.NewAmount(pair.Out, amountOut),
		time.Now(),
	)
	if err != nil {
		a.metrics.quoteErrors.Add(ctx, 1)
		span.NoticeError(err)
		return domain.Quote{}, apperror.New(apperror.CodeQuoteDecodeFailed,
			apperror.WithCause(err),
			apperror.WithContext(a.venue.Name))
	}

	span.SetAttributes(attribute.String("amount_out", amountOut.String()))
	span.SetStatus(codes.Ok, "quote received")

	a.logger.Debug(ctx, "univ2 quote",
		"venue", a.venue.Name,
		"pair", pair.String(),
		"amount_in", amountIn.String(),
		"amount_out", amountOut.String(),
	)

	return quote, nil
}

// decodeAmountsOut unpacks the uint256[] return value and extracts the final
// hop. The router echoes the input as element zero, so a well-formed answer
// has exactly one amount per path element.
func (a *Adapter) decodeAmountsOut(result []byte, pathLen int) (*big.Int, error) {
	outputs, err := a.routerABI.Unpack("getAmountsOut", result)
	if err != nil {
		return nil, apperror.New(apperror.CodeQuoteDecodeFailed,
			apperror.WithCause(err),
			apperror.WithContext(a.venue.Name))
	}

	if len(outputs) != 1 {
		return nil, apperror.New(apperror.CodeQuoteDecodeFailed,
			apperror.WithContext(fmt.Sprintf("%s: unexpected output count %d", a.venue.Name, len(outputs))))
	}

	amounts, ok := outputs[0].([]*big.Int)
	if !ok {
		return nil, apperror.New(apperror.CodeQuoteDecodeFailed,
			apperror.WithContext(fmt.Sprintf("%s: unexpected output type %T", a.venue.Name, outputs[0])))
	}

	if len(amounts) != pathLen {
		return nil, apperror.New(apperror.CodeQuoteDecodeFailed,
			apperror.WithContext(fmt.Sprintf("%s: expected %d amounts, got %d", a.venue.Name, pathLen, len(amounts))))
	}

	out := amounts[len(amounts)-1]
	if out == nil {
		return nil, apperror.New(apperror.CodeQuoteDecodeFailed,
			apperror.WithContext(a.venue.Name))
	}
	return out, nil
}
