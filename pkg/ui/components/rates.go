// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RateRow represents one venue's rate in the comparison table.
type RateRow struct {
	Venue string
	Rate  string
}

// RatesComponent renders the venue rate comparison table.
type RatesComponent struct {
	rows []RateRow
	pair string
}

// NewRatesComponent creates a new rates component.
func NewRatesComponent(pair string) *RatesComponent {
	return &RatesComponent{
		rows: make([]RateRow, 0),
		pair: pair,
	}
}

// Update replaces the rate data with the latest cycle's rates.
func (r *RatesComponent) Update(rows []RateRow) {
	r.rows = rows
}

// View renders the rates component.
func (r *RatesComponent) View() string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

	result := headerStyle.Render(fmt.Sprintf("RATES (%s)", r.pair)) + "\n\n"

	if len(r.rows) == 0 {
		result += dimStyle.Render("  Waiting for first cycle...")
		return result
	}

	result += fmt.Sprintf("  %-14s  %18s\n", "Venue", "Rate")
	result += dimStyle.Render("  "+strings.Repeat("─", 34)) + "\n"

	for _, row := range r.rows {
		result += fmt.Sprintf("  %-14s  %18s\n", row.Venue, row.Rate)
	}

	return result
}
