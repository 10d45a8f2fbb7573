package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/sprout/internal/cli"
	"github.com/charmbracelet/lipgloss"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.snapshot
	sections := []string{
		m.theme.Title.Render(cli.SproutIcon + " Smart Village Farming Dashboard"),
		m.theme.Subtitle.Render(fmt.Sprintf("%s · %d rows", snap.Source, snap.Rows)),
		"",
		cli.RenderTiles(snap.Tiles),
		cli.RenderAlerts(snap.Alerts),
		"",
		m.theme.Bold.Render(fmt.Sprintf("Soil moisture trend, rows %d–%d", snap.Window.From, snap.Window.To)),
		cli.RenderSparkline(snap.Trend),
		"",
		m.theme.Bold.Render("Real-time moisture"),
		cli.RenderGauge(snap.Gauge, 30),
	}

	// The heatmap only fits the full layout.
	if m.width >= 100 {
		sections = append(sections, "", m.theme.Bold.Render("Sensor correlation"))
		if snap.Insufficient {
			sections = append(sections, cli.FormatInfo("Not enough numeric columns for a correlation view"))
		} else {
			sections = append(sections, cli.RenderCorrelation(snap.Correlation))
		}
	}

	if len(snap.Unresolved) > 0 {
		names := make([]string, len(snap.Unresolved))
		for i, r := range snap.Unresolved {
			names[i] = string(r)
		}
		sections = append(sections, "", m.theme.StatusWarning.Render("No column for: "+strings.Join(names, ", ")))
	}

	if m.lastError != nil {
		sections = append(sections, "", m.theme.StatusError.Render("Reload failed: "+m.lastError.Error()))
	}

	sections = append(sections, "", m.help.View(m.keymap))

	return m.wrapWithBorder(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// wrapWithBorder adds a border and status bar around content.
func (m Model) wrapWithBorder(content string) string {
	fullContent := lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		m.renderStatusBar(),
	)

	return m.theme.BorderedBox.
		Width(max(m.width-2, 0)).
		Render(fullContent)
}

// renderStatusBar renders the bottom status bar.
func (m Model) renderStatusBar() string {
	total := m.snapshot.Rows
	left := fmt.Sprintf("Window %s", m.window)
	center := m.renderMiniProgressBar(20, m.window.From, m.window.To, total)
	right := fmt.Sprintf("Quality %.0f%%", m.snapshot.Quality)

	totalWidth := m.width - 6
	spacing := totalWidth - lipgloss.Width(left) - lipgloss.Width(center) - lipgloss.Width(right)
	spacing = max(spacing, 2)
	leftPad := spacing / 2
	rightPad := spacing - leftPad

	return fmt.Sprintf("%s%s%s%s%s",
		m.theme.StatusInfo.Render(left),
		strings.Repeat(" ", leftPad),
		center,
		strings.Repeat(" ", rightPad),
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render(right),
	)
}

// renderMiniProgressBar shows where the window sits within all rows.
func (m Model) renderMiniProgressBar(width, from, to, total int) string {
	if total <= 0 {
		return strings.Repeat("░", width)
	}

	start := from * width / total
	end := (to*width + total - 1) / total
	end = max(end, start+1)
	end = min(end, width)

	return lipgloss.NewStyle().Foreground(m.theme.Muted).Render(strings.Repeat("░", start)) +
		m.theme.StatusSuccess.Render(strings.Repeat("█", end-start)) +
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render(strings.Repeat("░", width-end))
}
