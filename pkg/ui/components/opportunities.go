// Package components provides reusable TUI components.
package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// OpportunityRow represents an opportunity in the list.
type OpportunityRow struct {
	Time      string
	Direction string
	NetProfit string
	Positive  bool
}

// OpportunitiesComponent renders the opportunities list.
type OpportunitiesComponent struct {
	rows    []OpportunityRow
	maxRows int
}

// NewOpportunitiesComponent creates a new opportunities component.
func NewOpportunitiesComponent(maxRows int) *OpportunitiesComponent {
	return &OpportunitiesComponent{
		rows:    make([]OpportunityRow, 0),
		maxRows: maxRows,
	}
}

// Add prepends a new opportunity to the list.
func (o *OpportunitiesComponent) Add(row OpportunityRow) {
	o.rows = append([]OpportunityRow{row}, o.rows...)
	if len(o.rows) > o.maxRows {
		o.rows = o.rows[:o.maxRows]
	}
}

// Clear clears all opportunities.
func (o *OpportunitiesComponent) Clear() {
	o.rows = make([]OpportunityRow, 0)
}

// View renders the opportunities component.
func (o *OpportunitiesComponent) View() string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	profitStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	lossStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))

	result := headerStyle.Render(fmt.Sprintf("OPPORTUNITIES (last %d)", o.maxRows)) + "\n\n"

	if len(o.rows) == 0 {
		result += dimStyle.Render("  No opportunities detected yet...")
		return result
	}

	for _, row := range o.rows {
		style := profitStyle
		if !row.Positive {
			style = lossStyle
		}
		result += fmt.Sprintf("  %s  %-36s  %s\n",
			dimStyle.Render(row.Time),
			row.Direction,
			style.Render(row.NetProfit),
		)
	}

	return result
}
