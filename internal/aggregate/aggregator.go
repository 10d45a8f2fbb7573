// Package aggregate computes display values over a dataset without failing:
// every operation returns a value or a well-defined absence marker.
package aggregate

import (
	"fmt"
	"math"

	"github.com/Veraticus/sprout/internal/common"
	"github.com/Veraticus/sprout/internal/model"
)

// Aggregator computes summaries over one dataset and its role binding.
type Aggregator struct {
	ds      *model.Dataset
	binding model.RoleBinding
}

// New creates an aggregator.
func New(ds *model.Dataset, binding model.RoleBinding) *Aggregator {
	return &Aggregator{ds: ds, binding: binding}
}

func (a *Aggregator) column(role model.Role) ([]model.Value, bool) {
	if a.ds == nil {
		return nil, false
	}
	name, ok := a.binding.Column(role)
	if !ok {
		return nil, false
	}
	return a.ds.Column(name)
}

// LastValue returns the latest non-missing value of role's column passed
// through format. It is unavailable when the role is unresolved, the column is
// absent, or every value is missing.
func (a *Aggregator) LastValue(role model.Role, format Formatter) model.MetricResult {
	values, ok := a.column(role)
	if !ok {
		return model.Unavailable()
	}
	if format == nil {
		format = Text()
	}

	for i := len(values) - 1; i >= 0; i-- {
		if !values[i].IsMissing() {
			return model.Available(format(values[i]))
		}
	}
	return model.Unavailable()
}

// CountTrue counts raised flags (true or non-zero) in the named column. An
// absent column counts as zero.
func (a *Aggregator) CountTrue(column string) int {
	if a.ds == nil {
		return 0
	}
	values, ok := a.ds.Column(column)
	if !ok {
		return 0
	}

	count := 0
	for _, v := range values {
		if v.Truthy() {
			count++
		}
	}
	return count
}

// CountRole is CountTrue over the column bound to role; unresolved counts as
// zero.
func (a *Aggregator) CountRole(role model.Role) int {
	name, ok := a.binding.Column(role)
	if !ok {
		return 0
	}
	return a.CountTrue(name)
}

// Correlation returns the pairwise Pearson matrix over the dataset's numeric
// columns. Each pair uses the rows where both values are present; pairs with
// fewer than two such rows or zero variance stay undefined. With fewer than
// two numeric columns it returns common.ErrInsufficientData.
func (a *Aggregator) Correlation() (*model.CorrelationMatrix, error) {
	if a.ds == nil {
		return nil, fmt.Errorf("%w: no dataset", common.ErrInsufficientData)
	}

	numeric := a.ds.NumericColumns()
	if len(numeric) < 2 {
		return nil, fmt.Errorf("%w: %d numeric columns, need 2", common.ErrInsufficientData, len(numeric))
	}

	series := make([][]float64, len(numeric))
	present := make([][]bool, len(numeric))
	for i, name := range numeric {
		values, _ := a.ds.Column(name)
		series[i] = make([]float64, len(values))
		present[i] = make([]bool, len(values))
		for r, v := range values {
			if f, ok := v.Float(); ok {
				series[i][r] = f
				present[i][r] = true
			}
		}
	}

	m := model.NewCorrelationMatrix(numeric)
	for i := range numeric {
		for j := i + 1; j < len(numeric); j++ {
			if r, ok := pearson(series[i], series[j], present[i], present[j]); ok {
				m.Set(i, j, r)
			}
		}
	}
	return m, nil
}

// pearson computes r over the rows both columns share. A column that is
// constant over those rows has no variance, so the pair is undefined.
func pearson(x, y []float64, px, py []bool) (float64, bool) {
	var xs, ys []float64
	for k := range x {
		if px[k] && py[k] {
			xs = append(xs, x[k])
			ys = append(ys, y[k])
		}
	}
	if len(xs) < 2 || constant(xs) || constant(ys) {
		return 0, false
	}

	// r is scale invariant; scaling to [-1, 1] keeps the sums finite.
	scale(xs)
	scale(ys)

	n := float64(len(xs))
	var sumX, sumY float64
	for k := range xs {
		sumX += xs[k]
		sumY += ys[k]
	}
	meanX, meanY := sumX/n, sumY/n

	var sxx, syy, sxy float64
	for k := range xs {
		dx, dy := xs[k]-meanX, ys[k]-meanY
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}
	if sxx == 0 || syy == 0 {
		return 0, false
	}

	r := sxy / (math.Sqrt(sxx) * math.Sqrt(syy))
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}
	return math.Max(-1, math.Min(1, r)), true
}

func constant(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}

func scale(values []float64) {
	var peak float64
	for _, v := range values {
		peak = max(peak, math.Abs(v))
	}
	if peak == 0 {
		return
	}
	for i := range values {
		values[i] /= peak
	}
}
