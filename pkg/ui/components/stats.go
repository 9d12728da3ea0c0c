// Package components provides reusable TUI components.
package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Stats holds detection statistics for display.
type Stats struct {
	Cycles        uint64
	Skipped       uint64
	Opportunities uint64
	LastCycleMs   int64
}

// StatsComponent renders statistics.
type StatsComponent struct {
	stats Stats
}

// NewStatsComponent creates a new stats component.
func NewStatsComponent() *StatsComponent {
	return &StatsComponent{}
}

// Update updates the statistics.
func (s *StatsComponent) Update(stats Stats) {
	s.stats = stats
}

// View renders the stats component.
func (s *StatsComponent) View() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)

	skippedDisplay := valueStyle.Render(fmt.Sprintf("%d", s.stats.Skipped))
	if s.stats.Skipped > 0 {
		skippedDisplay = errorStyle.Render(fmt.Sprintf("%d", s.stats.Skipped))
	}

	return style.Render("STATS") + "\n" +
		fmt.Sprintf("Cycles: %s  │  Opportunities: %s  │  Skipped: %s  │  Last cycle: %s",
			valueStyle.Render(fmt.Sprintf("%d", s.stats.Cycles)),
			valueStyle.Render(fmt.Sprintf("%d", s.stats.Opportunities)),
			skippedDisplay,
			valueStyle.Render(fmt.Sprintf("%dms", s.stats.LastCycleMs)),
		)
}
