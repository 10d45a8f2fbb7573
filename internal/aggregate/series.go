package aggregate

import (
	"github.com/Veraticus/sprout/internal/model"
)

// Point is one trend sample. Missing points keep their row position.
type Point struct {
	Index   int
	Value   float64
	Missing bool
}

// Series returns role's column as trend points. Non-numeric cells are reported
// as missing. It returns false when the role has no column.
func (a *Aggregator) Series(role model.Role) ([]Point, bool) {
	values, ok := a.column(role)
	if !ok {
		return nil, false
	}

	points := make([]Point, len(values))
	for i, v := range values {
		f, isNum := v.Float()
		points[i] = Point{Index: i, Value: f, Missing: !isNum}
	}
	return points, true
}

// Band is a gauge zone.
type Band string

const (
	// BandLow is 0–30: dry, irrigate.
	BandLow Band = "low"
	// BandModerate is 30–60.
	BandModerate Band = "moderate"
	// BandOptimal is 60–100.
	BandOptimal Band = "optimal"
)

// Gauge is the real-time indicator for a percentage reading.
type Gauge struct {
	Band      Band
	Value     float64
	Available bool
}

// BandFor places a percentage in its gauge zone. Values outside [0, 100] fall
// in the nearest zone.
func BandFor(v float64) Band {
	switch {
	case v < 30:
		return BandLow
	case v < 60:
		return BandModerate
	default:
		return BandOptimal
	}
}

// Gauge returns the latest numeric reading of role on a 0–100 scale.
func (a *Aggregator) Gauge(role model.Role) Gauge {
	values, ok := a.column(role)
	if !ok {
		return Gauge{}
	}

	for i := len(values) - 1; i >= 0; i-- {
		if values[i].IsMissing() {
			continue
		}
		f, isNum := values[i].Float()
		if !isNum {
			return Gauge{}
		}
		f = min(max(f, 0), 100)
		return Gauge{Value: f, Band: BandFor(f), Available: true}
	}
	return Gauge{}
}
