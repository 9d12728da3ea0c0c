// Package infra contains infrastructure adapters for the arbitrage context.
package infra

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/arbitrage/app"
	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/business/arbitrage/domain"
)

// Ensure ConsoleReporter implements Reporter.
var _ app.Reporter = (*ConsoleReporter)(nil)

// ConsoleReporter implements Reporter for CLI output.
type ConsoleReporter struct {
	out io.Writer
}

// NewConsoleReporter creates a new ConsoleReporter writing to stdout.
func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{
		out: os.Stdout,
	}
}

// NewConsoleReporterTo creates a ConsoleReporter writing to w.
func NewConsoleReporterTo(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: w}
}

// Start prints the startup banner.
func (r *ConsoleReporter) Start(ctx context.Context) error {
	fmt.Fprintln(r.out, "Polygon Arbitrage Detector Started")
	fmt.Fprintln(r.out, "==================================")
	return nil
}

// Report outputs a detected opportunity to the console.
func (r *ConsoleReporter) Report(opp domain.Opportunity) {
	outSym := opp.Pair.Out.Symbol()

	fmt.Fprintln(r.out, "")
	fmt.Fprintln(r.out, "================================================================================")
	fmt.Fprintln(r.out, "ARBITRAGE OPPORTUNITY DETECTED")
	fmt.Fprintln(r.out, "================================================================================")
	fmt.Fprintf(r.out, "Timestamp:      %s\n", opp.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(r.out, "Pair:           %s\n", opp.Pair.String())
	fmt.Fprintf(r.out, "Direction:      %s\n", opp.Direction.String())
	fmt.Fprintln(r.out, "--------------------------------------------------------------------------------")
	fmt.Fprintln(r.out, "RATES")
	fmt.Fprintf(r.out, "  Buy (%s):   %s %s\n", opp.Direction.BuyVenue, opp.BuyRate.StringFixed(6), outSym)
	fmt.Fprintf(r.out, "  Sell (%s):  %s %s\n", opp.Direction.SellVenue, opp.SellRate.StringFixed(6), outSym)
	fmt.Fprintln(r.out, "--------------------------------------------------------------------------------")
	fmt.Fprintln(r.out, "TRADE DETAILS")
	fmt.Fprintf(r.out, "  Size:           %s %s\n", opp.AmountIn.StringFixed(4), opp.Pair.In.Symbol())
	fmt.Fprintf(r.out, "  Cost Basis:     %s %s\n", opp.CostBasis.StringFixed(2), outSym)
	fmt.Fprintf(r.out, "  Gross Proceeds: %s %s\n", opp.GrossProceeds.StringFixed(2), outSym)
	fmt.Fprintf(r.out, "  Gas Estimate:   %s %s\n", opp.GasCost.StringFixed(2), outSym)
	fmt.Fprintln(r.out, "--------------------------------------------------------------------------------")
	fmt.Fprintln(r.out, "PROFIT")
	fmt.Fprintf(r.out, "  Net:            %s %s (threshold %s)\n",
		opp.NetProfit.StringFixed(2), outSym, opp.Threshold.StringFixed(2))
	fmt.Fprintln(r.out, "================================================================================")
}

// CycleCompleted prints a one-line cycle summary.
func (r *ConsoleReporter) CycleCompleted(result app.CycleResult) {
	ts := result.Timestamp.Format("15:04:05")

	switch result.Status {
	case app.CycleStatusSkipped:
		fmt.Fprintf(r.out, "[%s] cycle %d skipped: %v\n", ts, result.Number, result.Err)
	case app.CycleStatusOpportunity:
		// The opportunity banner already printed; nothing more to add.
	default:
		line := fmt.Sprintf("[%s] cycle %d: no opportunity", ts, result.Number)
		for _, rate := range result.Rates {
			line += fmt.Sprintf("  %s=%s", rate.Venue.Name, rate.Price.Rate().StringFixed(6))
		}
		fmt.Fprintln(r.out, line)
	}
}

// Stop prints the shutdown notice.
func (r *ConsoleReporter) Stop() error {
	fmt.Fprintln(r.out, "")
	fmt.Fprintln(r.out, "Polygon Arbitrage Detector Stopped")
	return nil
}
