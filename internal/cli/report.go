package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Veraticus/sprout/internal/common"
	"github.com/Veraticus/sprout/internal/dashboard"
	"github.com/Veraticus/sprout/internal/model"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Report is the machine-readable form of a snapshot. Unavailable metrics
// carry "N/A" and available=false; undefined correlation cells are null.
type Report struct {
	Correlation  *CorrelationReport `json:"correlation,omitempty" yaml:"correlation,omitempty"`
	Gauge        *GaugeReport       `json:"gauge,omitempty" yaml:"gauge,omitempty"`
	Source       string             `json:"source" yaml:"source"`
	Metrics      []MetricReport     `json:"metrics" yaml:"metrics"`
	Trend        []*float64         `json:"trend" yaml:"trend"`
	Unresolved   []string           `json:"unresolved,omitempty" yaml:"unresolved,omitempty"`
	Window       [2]int             `json:"window" yaml:"window,flow"`
	Alerts       AlertReport        `json:"alerts" yaml:"alerts"`
	Rows         int                `json:"rows" yaml:"rows"`
	Quality      float64            `json:"quality_score" yaml:"quality_score"`
	Insufficient bool               `json:"correlation_insufficient" yaml:"correlation_insufficient"`
}

// MetricReport is one headline metric.
type MetricReport struct {
	Label     string `json:"label" yaml:"label"`
	Role      string `json:"role" yaml:"role"`
	Column    string `json:"column,omitempty" yaml:"column,omitempty"`
	Value     string `json:"value" yaml:"value"`
	Available bool   `json:"available" yaml:"available"`
}

// AlertReport counts raised flags.
type AlertReport struct {
	Irrigation int `json:"irrigation" yaml:"irrigation"`
	HeatStress int `json:"heat_stress" yaml:"heat_stress"`
}

// GaugeReport is the moisture gauge.
type GaugeReport struct {
	Band  string  `json:"band" yaml:"band"`
	Value float64 `json:"value" yaml:"value"`
}

// CorrelationReport is the correlation matrix.
type CorrelationReport struct {
	Columns      []string     `json:"columns" yaml:"columns"`
	Values       [][]*float64 `json:"values" yaml:"values"`
	Insufficient bool         `json:"insufficient,omitempty" yaml:"insufficient,omitempty"`
}

// NewCorrelationReport converts a matrix.
func NewCorrelationReport(m *model.CorrelationMatrix) CorrelationReport {
	return CorrelationReport{Columns: m.Columns(), Values: m.Rows()}
}

// NewReport converts a snapshot.
func NewReport(snap dashboard.Snapshot) Report {
	r := Report{
		Source:       snap.Source,
		Rows:         snap.Rows,
		Window:       [2]int{snap.Window.From, snap.Window.To},
		Quality:      snap.Quality,
		Insufficient: snap.Insufficient,
		Alerts: AlertReport{
			Irrigation: snap.Alerts.Irrigation,
			HeatStress: snap.Alerts.HeatStress,
		},
		Trend: make([]*float64, len(snap.Trend)),
	}

	for _, t := range snap.Tiles {
		r.Metrics = append(r.Metrics, MetricReport{
			Label:     t.Label,
			Role:      string(t.Role),
			Column:    t.Column,
			Value:     t.Value.String(),
			Available: t.Value.IsAvailable(),
		})
	}

	for i, p := range snap.Trend {
		if !p.Missing {
			v := p.Value
			r.Trend[i] = &v
		}
	}

	if snap.Gauge.Available {
		r.Gauge = &GaugeReport{Value: snap.Gauge.Value, Band: string(snap.Gauge.Band)}
	}

	if snap.Correlation != nil {
		corr := NewCorrelationReport(snap.Correlation)
		r.Correlation = &corr
	}

	for _, role := range snap.Unresolved {
		r.Unresolved = append(r.Unresolved, string(role))
	}

	return r
}

// BindingReport is the machine-readable role binding; unresolved roles map to
// an empty string.
type BindingReport struct {
	Source string            `json:"source" yaml:"source"`
	Roles  map[string]string `json:"roles" yaml:"roles"`
}

// NewBindingReport converts a binding.
func NewBindingReport(source string, b model.RoleBinding) BindingReport {
	return BindingReport{Source: source, Roles: b.Map()}
}

// Encode writes v as JSON or YAML.
func Encode(w io.Writer, format string, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: unsupported output format %q", common.ErrInvalidConfig, format)
	}
}
