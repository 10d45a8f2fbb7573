package cli

import (
	"strings"
	"testing"

	"github.com/Veraticus/sprout/internal/aggregate"
	"github.com/Veraticus/sprout/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestSparkline(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		points []aggregate.Point
	}{
		{
			name: "ramp",
			points: []aggregate.Point{
				{Value: 0}, {Value: 50}, {Value: 100},
			},
			want: "▁▄█",
		},
		{
			name: "missing keeps its slot",
			points: []aggregate.Point{
				{Value: 10}, {Missing: true}, {Value: 20},
			},
			want: "▁ █",
		},
		{
			name:   "constant",
			points: []aggregate.Point{{Value: 3}, {Value: 3}},
			want:   "▅▅",
		},
		{
			name:   "all missing",
			points: []aggregate.Point{{Missing: true}, {Missing: true}},
			want:   "  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sparkline(tt.points))
		})
	}
}

func TestRenderSparklineEmpty(t *testing.T) {
	assert.Contains(t, RenderSparkline(nil), model.NotAvailable)
}

func TestRenderGauge(t *testing.T) {
	out := RenderGauge(aggregate.Gauge{Value: 50, Band: aggregate.BandModerate, Available: true}, 10)
	assert.Equal(t, 5, strings.Count(out, "█"))
	assert.Equal(t, 5, strings.Count(out, "░"))
	assert.Contains(t, out, "50.0% (moderate)")

	assert.Contains(t, RenderGauge(aggregate.Gauge{}, 10), model.NotAvailable)
}

func TestRenderCorrelation(t *testing.T) {
	m := model.NewCorrelationMatrix([]string{"moisture", "temp", "flat"})
	m.Set(0, 1, -0.42)

	out := RenderCorrelation(m)
	assert.Contains(t, out, "moisture")
	assert.Contains(t, out, "flat")
	assert.Contains(t, out, "-0.42")
	assert.Contains(t, out, "1.00")

	assert.Contains(t, RenderCorrelation(nil), model.NotAvailable)
}

func TestRenderBinding(t *testing.T) {
	out := RenderBinding(model.NewRoleBinding(map[model.Role]string{
		model.RoleMoisture: "Soil Moisture (%)",
	}))
	assert.Contains(t, out, "Soil Moisture (%)")
	assert.Contains(t, out, "heat_stress")
	assert.Contains(t, out, "-")
}

func TestHeatColor(t *testing.T) {
	assert.Equal(t, heatColor(1), heatColor(0.7))
	assert.NotEqual(t, heatColor(1), heatColor(-1))
	assert.Equal(t, heatColor(0), heatColor(0.1))
}
