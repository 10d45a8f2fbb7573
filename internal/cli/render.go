package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Veraticus/sprout/internal/aggregate"
	"github.com/Veraticus/sprout/internal/dashboard"
	"github.com/Veraticus/sprout/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// RenderSnapshot renders the full dashboard as text.
func RenderSnapshot(snap dashboard.Snapshot) string {
	sections := []string{
		FormatTitle("Smart Village Farming Dashboard"),
		SubtleStyle.Render(fmt.Sprintf("%s · %d rows · window %s", snap.Source, snap.Rows, snap.Window)),
		"",
		RenderTiles(snap.Tiles),
		RenderAlerts(snap.Alerts),
		"",
		BoldStyle.Render("Soil moisture trend"),
		RenderSparkline(snap.Trend),
		"",
		BoldStyle.Render("Real-time moisture"),
		RenderGauge(snap.Gauge, 30),
		"",
		BoldStyle.Render("Sensor correlation"),
	}

	if snap.Insufficient {
		sections = append(sections, FormatInfo("Not enough numeric columns for a correlation view"))
	} else {
		sections = append(sections, RenderCorrelation(snap.Correlation))
	}

	if len(snap.Unresolved) > 0 {
		names := make([]string, len(snap.Unresolved))
		for i, r := range snap.Unresolved {
			names[i] = string(r)
		}
		sections = append(sections, "", FormatWarning("No column found for: "+strings.Join(names, ", ")))
	}

	sections = append(sections, "", SubtleStyle.Render(fmt.Sprintf("Data Quality Score: %.1f%%", snap.Quality)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// RenderTiles lays the headline metrics out side by side.
func RenderTiles(tiles []dashboard.Tile) string {
	boxes := make([]string, len(tiles))
	for i, t := range tiles {
		value, ok := t.Value.Get()
		rendered := BoldStyle.Render(value)
		if !ok {
			rendered = SubtleStyle.Render(model.NotAvailable)
		}
		boxes[i] = TileStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			SubtleStyle.Render(t.Label),
			rendered,
		))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

// RenderAlerts renders the irrigation and heat-stress counters.
func RenderAlerts(a dashboard.Alerts) string {
	irrigation := fmt.Sprintf("%s Irrigation alerts: %d", DropIcon, a.Irrigation)
	heat := fmt.Sprintf("%s Heat stress: %d", HeatIcon, a.HeatStress)
	if a.Irrigation > 0 {
		irrigation = WarningStyle.Render(irrigation)
	}
	if a.HeatStress > 0 {
		heat = ErrorStyle.Render(heat)
	}
	return irrigation + "   " + heat
}

// RenderSparkline draws trend points as block characters; missing points are
// blank.
func RenderSparkline(points []aggregate.Point) string {
	if len(points) == 0 {
		return SubtleStyle.Render(model.NotAvailable)
	}
	return InfoStyle.Render(Sparkline(points))
}

// Sparkline returns the unstyled block-character trend.
func Sparkline(points []aggregate.Point) string {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		if !plottable(p) {
			continue
		}
		lo = math.Min(lo, p.Value)
		hi = math.Max(hi, p.Value)
	}

	var b strings.Builder
	for _, p := range points {
		switch {
		case !plottable(p):
			b.WriteRune(' ')
		case hi == lo:
			b.WriteRune(sparkBlocks[len(sparkBlocks)/2])
		default:
			idx := int((p.Value - lo) / (hi - lo) * float64(len(sparkBlocks)-1))
			b.WriteRune(sparkBlocks[idx])
		}
	}
	return b.String()
}

func plottable(p aggregate.Point) bool {
	return !p.Missing && !math.IsInf(p.Value, 0)
}

// RenderGauge draws a 0–100 bar colored by band.
func RenderGauge(g aggregate.Gauge, width int) string {
	if !g.Available {
		return SubtleStyle.Render(model.NotAvailable)
	}

	filled := int(math.Round(g.Value / 100 * float64(width)))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	style := SuccessStyle
	switch g.Band {
	case aggregate.BandLow:
		style = ErrorStyle
	case aggregate.BandModerate:
		style = WarningStyle
	}
	return style.Render(bar) + fmt.Sprintf(" %.1f%% (%s)", g.Value, g.Band)
}

// RenderCorrelation renders the matrix as a heatmap table. Undefined cells
// are left blank.
func RenderCorrelation(m *model.CorrelationMatrix) string {
	if m == nil {
		return SubtleStyle.Render(model.NotAvailable)
	}

	columns := m.Columns()
	headers := append([]string{""}, columns...)

	rows := make([][]string, len(columns))
	for i, name := range columns {
		row := make([]string, 0, len(columns)+1)
		row = append(row, name)
		for j := range columns {
			if r, ok := m.At(i, j); ok {
				row = append(row, strconv.FormatFloat(r, 'f', 2, 64))
			} else {
				row = append(row, "")
			}
		}
		rows[i] = row
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(SubtleStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			if col == 0 {
				return TableHeaderStyle.Align(lipgloss.Left)
			}
			r, ok := m.At(row, col-1)
			if !ok {
				return TableCellStyle
			}
			return TableCellStyle.Foreground(heatColor(r))
		})

	return t.String()
}

// heatColor maps r in [-1, 1] onto a red-blue diverging scale.
func heatColor(r float64) lipgloss.Color {
	switch {
	case r >= 0.6:
		return lipgloss.Color("#B2182B")
	case r >= 0.2:
		return lipgloss.Color("#EF8A62")
	case r > -0.2:
		return lipgloss.Color("#F7F7F7")
	case r > -0.6:
		return lipgloss.Color("#67A9CF")
	default:
		return lipgloss.Color("#2166AC")
	}
}

// RenderBinding lists each role and its column.
func RenderBinding(b model.RoleBinding) string {
	rows := make([][]string, 0, len(model.Roles()))
	for _, role := range model.Roles() {
		col, ok := b.Column(role)
		if !ok {
			col = "-"
		}
		rows = append(rows, []string{string(role), col})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(SubtleStyle).
		Headers("role", "column").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			if col == 1 && rows[row][1] == "-" {
				return TableHeaderStyle.UnsetBold().Foreground(SubtleColor)
			}
			return TableHeaderStyle.UnsetBold()
		})

	return t.String()
}
