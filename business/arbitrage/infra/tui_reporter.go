package infra

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/arbitrage/app"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/arbitrage/domain"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/pkg/ui"
)

// Ensure TUIReporter implements Reporter.
var _ app.Reporter = (*TUIReporter)(nil)

// TUIReporter forwards detector output to the Bubble Tea program as messages.
type TUIReporter struct {
	program *tea.Program
}

// NewTUIReporter creates a reporter bound to a running Bubble Tea program.
func NewTUIReporter(program *tea.Program) *TUIReporter {
	return &TUIReporter{program: program}
}

// Start is a no-op: the program lifecycle is owned by the caller.
func (r *TUIReporter) Start(ctx context.Context) error {
	return nil
}

// Report sends a detected opportunity to the TUI.
func (r *TUIReporter) Report(opp domain.Opportunity) {
	r.program.Send(ui.OpportunityMsg{Opportunity: opp})
}

// CycleCompleted sends the cycle summary to the TUI.
func (r *TUIReporter) CycleCompleted(result app.CycleResult) {
	msg := ui.CycleMsg{
		Number:    result.Number,
		Timestamp: result.Timestamp,
		Duration:  result.Duration,
		Status:    string(result.Status),
	}

	if result.Err != nil {
		msg.Err = result.Err.Error()
	}

	for _, rate := range result.Rates {
		msg.Rates = append(msg.Rates, ui.VenueRate{
			Venue: rate.Venue.Name,
			Rate:  rate.Price.Rate().StringFixed(6),
		})
	}

	r.program.Send(msg)
}

// Stop is a no-op: quitting the program is handled by the caller.
func (r *TUIReporter) Stop() error {
	return nil
}
