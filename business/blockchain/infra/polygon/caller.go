// Package polygon implements the ContractCaller port against a Polygon JSON-RPC node.
package polygon

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/blockchain/app"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/apperror"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/apm"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/circuitbreaker"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/config"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/logger"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/ratelimit"
)

const (
	tracerName = "polygon-rpc"
	meterName  = "polygon-rpc"
)

// Ensure Caller implements ContractCaller.
var _ app.ContractCaller = (*Caller)(nil)

// callerMetrics holds OTEL metric instruments.
type callerMetrics struct {
	callsTotal  metric.Int64Counter
	callLatency metric.Float64Histogram
	callErrors  metric.Int64Counter
}

// Caller wraps ethclient with a per-call timeout, a rate limiter and a
// circuit breaker.
type Caller struct {
	client      *ethclient.Client
	chainID     uint64
	callTimeout time.Duration

	limiter *ratelimit.Limiter
	cb      *circuitbreaker.CircuitBreaker[[]byte]
	logger  logger.LoggerInterface

	tracer  apm.Tracer
	metrics *callerMetrics
}

// NewCaller creates a Caller on top of an existing ethclient connection.
func NewCaller(client *ethclient.Client, cfg config.RPCConfig, log logger.LoggerInterface) (*Caller, error) {
	c := &Caller{
		client:      client,
		chainID:     cfg.ChainID,
		callTimeout: cfg.CallTimeout,
		limiter:     ratelimit.New(cfg.RequestsPerMinute),
		cb:          circuitbreaker.New[[]byte](circuitbreaker.DefaultConfig("polygon-rpc")),
		logger:      log,
		tracer:      apm.NewTracer(tracerName),
	}

	if err := c.initMetrics(); err != nil {
		return nil, fmt.Errorf("failed to init metrics: %w", err)
	}

	return c, nil
}

func (c *Caller) initMetrics() error {
	meter := otel.Meter(meterName)
	var err error

	c.metrics = &callerMetrics{}

	c.metrics.callsTotal, err = meter.Int64Counter(
		"rpc_calls_total",
		metric.WithDescription("Total contract view calls"),
	)
	if err != nil {
		return err
	}

	c.metrics.callLatency, err = meter.Float64Histogram(
		"rpc_call_latency_ms",
		metric.WithDescription("Contract call latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return err
	}

	c.metrics.callErrors, err = meter.Int64Counter(
		"rpc_call_errors_total",
		metric.WithDescription("Total contract call errors"),
	)
	if err != nil {
		return err
	}

	return nil
}

// ChainID returns the configured chain ID.
func (c *Caller) ChainID() uint64 {
	return c.chainID
}

// Ping verifies node connectivity by requesting the chain ID.
func (c *Caller) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	if _, err := c.client.ChainID(ctx); err != nil {
		return apperror.New(apperror.CodeRPCConnectionFailed, apperror.WithCause(err))
	}
	return nil
}

// CallContract executes a bounded, rate-limited view call.
func (c *Caller) CallContract(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
	ctx, span := c.tracer.StartSpanFromContext(ctx, "polygon.call_contract",
		trace.WithAttributes(attribute.String("contract", to.Hex())),
	)
	defer span.End()

	start := time.Now()
	c.metrics.callsTotal.Add(ctx, 1)

	if err := c.limiter.Wait(ctx); err != nil {
		c.metrics.callErrors.Add(ctx, 1)
		span.NoticeError(err)
		return nil, apperror.New(apperror.CodeRPCNetworkError,
			apperror.WithCause(err),
			apperror.WithContext("rate limiter wait aborted"))
	}

	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	result, err := c.cb.Execute(func() ([]byte, error) {
		return c.client.CallContract(callCtx, ethereum.CallMsg{
			To:   &to,
			Data: data,
		}, nil)
	})

	latency := float64(time.Since(start).Milliseconds())
	c.metrics.callLatency.Record(ctx, latency)

	if err != nil {
		c.metrics.callErrors.Add(ctx, 1)
		appErr := c.classify(err, to)
		span.SetStatus(codes.Error, string(appErr.Code))
		return nil, appErr
	}

	span.SetStatus(codes.Ok, "call succeeded")
	return result, nil
}

// classify maps transport errors onto the fetch error taxonomy.
func (c *Caller) classify(err error, to common.Address) *apperror.AppError {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		// Breaker rejections arrive pre-classified.
		return appErr
	}

	switch {
	case isRevert(err):
		return apperror.New(apperror.CodeContractReverted,
			apperror.WithCause(err),
			apperror.WithContext(to.Hex()))
	case errors.Is(err, context.DeadlineExceeded):
		return apperror.New(apperror.CodeRPCTimeout,
			apperror.WithCause(err),
			apperror.WithContext(fmt.Sprintf("call to %s exceeded %s", to.Hex(), c.callTimeout)))
	default:
		return apperror.New(apperror.CodeRPCNetworkError,
			apperror.WithCause(err),
			apperror.WithContext(to.Hex()))
	}
}

func isRevert(err error) bool {
	// go-ethereum surfaces reverts as JSON-RPC errors whose message carries
	// "execution reverted"; there is no sentinel to errors.Is against.
	return strings.Contains(strings.ToLower(err.Error()), "execution reverted") ||
		strings.Contains(strings.ToLower(err.Error()), "revert")
}
