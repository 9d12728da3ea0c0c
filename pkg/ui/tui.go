// Package ui provides the Bubble Tea TUI for the arbitrage detector.
package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/pkg/ui/components"
)

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	keys KeyMap

	rates         *components.RatesComponent
	opportunities *components.OpportunitiesComponent
	stats         *components.StatsComponent

	pair       string
	width      int
	height     int
	quitting   bool
	lastCycle  time.Time
	lastStatus string
	lastErr    string

	cycleCount   uint64
	skippedCount uint64
	oppCount     uint64
}

// New creates a new TUI model for the given pair label.
func New(pair string) Model {
	return Model{
		keys:          DefaultKeyMap(),
		rates:         components.NewRatesComponent(pair),
		opportunities: components.NewOpportunitiesComponent(20),
		stats:         components.NewStatsComponent(),
		pair:          pair,
	}
}

// NewProgram wraps the model in a Bubble Tea program with the alt screen.
func NewProgram(pair string) *tea.Program {
	return tea.NewProgram(New(pair), tea.WithAltScreen())
}

// Init initializes the TUI model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// tickCmd refreshes the header clock between cycles.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Clear):
			m.opportunities.Clear()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case CycleMsg:
		m.cycleCount = msg.Number
		m.lastCycle = msg.Timestamp
		m.lastStatus = msg.Status
		m.lastErr = msg.Err
		if msg.Status == "skipped" {
			m.skippedCount++
		}

		rows := make([]components.RateRow, len(msg.Rates))
		for i, r := range msg.Rates {
			rows[i] = components.RateRow{Venue: r.Venue, Rate: r.Rate}
		}
		if len(rows) > 0 {
			m.rates.Update(rows)
		}

		m.stats.Update(components.Stats{
			Cycles:        m.cycleCount,
			Skipped:       m.skippedCount,
			Opportunities: m.oppCount,
			LastCycleMs:   msg.Duration.Milliseconds(),
		})
		return m, nil

	case OpportunityMsg:
		m.oppCount++
		opp := msg.Opportunity
		m.opportunities.Add(components.OpportunityRow{
			Time:      opp.Timestamp.Format("15:04:05"),
			Direction: opp.Direction.String(),
			NetProfit: fmt.Sprintf("+%s %s", opp.NetProfit.StringFixed(2), opp.Pair.Out.Symbol()),
			Positive:  opp.NetProfit.IsPositive(),
		})
		return m, nil

	case TickMsg:
		return m, tickCmd()
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	header := TitleStyle.Render("POLYGON ARBITRAGE DETECTOR") + "  " +
		MutedValue.Render(m.pair)

	status := m.statusLine()

	body := lipgloss.JoinVertical(lipgloss.Left,
		BoxStyle.Render(m.rates.View()),
		BoxStyle.Render(m.opportunities.View()),
		BoxStyle.Render(m.stats.View()),
	)

	help := HelpStyle.Render("q quit  •  c clear  •  ? help")

	return lipgloss.JoinVertical(lipgloss.Left, header, status, body, help)
}

func (m Model) statusLine() string {
	if m.lastCycle.IsZero() {
		return MutedValue.Render("  Connecting to Polygon...")
	}

	line := fmt.Sprintf("  Last cycle: %s", m.lastCycle.Format("15:04:05"))
	switch m.lastStatus {
	case "skipped":
		line += "  " + NegativeValue.Render("SKIPPED: "+m.lastErr)
	case "opportunity":
		line += "  " + PositiveValue.Render("OPPORTUNITY")
	default:
		line += "  " + MutedValue.Render("no opportunity")
	}
	return line
}
