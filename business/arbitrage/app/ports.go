// Package app contains application services and port definitions for the arbitrage context.
package app

import (
	"context"
	"time"

	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/arbitrage/domain"
	pricingDomain "github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/pricing/domain"
)

// CycleStatus describes how a detection cycle ended.
type CycleStatus string

const (
	// CycleStatusNoOpportunity means quotes were compared and nothing cleared the threshold.
	CycleStatusNoOpportunity CycleStatus = "no_opportunity"
	// CycleStatusOpportunity means an opportunity was detected and reported.
	CycleStatusOpportunity CycleStatus = "opportunity"
	// CycleStatusSkipped means the cycle was abandoned after a fetch or decode failure.
	CycleStatusSkipped CycleStatus = "skipped"
)

// CycleResult summarizes one detection cycle for display and bookkeeping.
type CycleResult struct {
	Number    uint64
	Timestamp time.Time
	Duration  time.Duration
	Status    CycleStatus

	// Rates holds the normalized venue rates, empty when the cycle was skipped.
	Rates []pricingDomain.Rate
	// Err carries the failure when Status is skipped.
	Err error
}

// Reporter defines the interface for reporting detection output.
type Reporter interface {
	// Start initializes the reporter.
	Start(ctx context.Context) error

	// Report sends a detected arbitrage opportunity to be displayed or logged.
	Report(opp domain.Opportunity)

	// CycleCompleted notifies the reporter that a detection cycle finished.
	CycleCompleted(result CycleResult)

	// Stop gracefully shuts down the reporter.
	Stop() error
}
