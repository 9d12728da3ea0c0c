// Package ui provides the Bubble Tea TUI for the arbitrage detector.
package ui

import (
	"time"

	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/arbitrage/domain"
)

// Message types for TUI updates

// OpportunityMsg is sent when an arbitrage opportunity is detected.
type OpportunityMsg struct {
	Opportunity domain.Opportunity
}

// VenueRate is one venue's normalized rate for display.
type VenueRate struct {
	Venue string
	Rate  string
}

// CycleMsg is sent when a detection cycle completes.
type CycleMsg struct {
	Number    uint64
	Timestamp time.Time
	Duration  time.Duration
	Status    string // "no_opportunity", "opportunity", "skipped"
	Rates     []VenueRate
	Err       string
}

// TickMsg is sent periodically for UI updates.
type TickMsg struct{}
