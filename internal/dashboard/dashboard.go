// Package dashboard composes the locator, loader, resolver and aggregator into
// the snapshot the terminal views render.
package dashboard

import (
	"errors"
	"fmt"

	"github.com/Veraticus/sprout/internal/aggregate"
	"github.com/Veraticus/sprout/internal/common"
	"github.com/Veraticus/sprout/internal/model"
	"github.com/Veraticus/sprout/internal/resolve"
)

// Service opens boards over readings files.
type Service struct {
	locator  Locator
	loader   Loader
	resolver *resolve.Resolver
}

// NewService creates a service. A nil table uses the default keyword table.
func NewService(locator Locator, loader Loader, table resolve.KeywordTable) *Service {
	return &Service{
		locator:  locator,
		loader:   loader,
		resolver: resolve.NewResolver(table),
	}
}

// Open loads the readings at path, or locates them when path is empty.
// Errors wrap common.ErrSourceNotFound, common.ErrUnreadable or
// common.ErrEmptyDataset.
func (s *Service) Open(path string) (*Board, error) {
	if path == "" {
		located, err := s.locator.Locate()
		if err != nil {
			return nil, err
		}
		path = located
	}

	ds, err := s.loader.Load(path)
	if err != nil {
		return nil, err
	}
	return s.board(path, ds), nil
}

// Reload re-reads the readings at path, ignoring the loader's cache.
func (s *Service) Reload(path string) (*Board, error) {
	ds, err := s.loader.Reload(path)
	if err != nil {
		return nil, err
	}
	return s.board(path, ds), nil
}

func (s *Service) board(path string, ds *model.Dataset) *Board {
	binding := s.resolver.Resolve(ds)
	if missing := binding.Unresolved(); len(missing) > 0 {
		common.LogDebug("Some roles have no matching column", common.Fields{
			"path":       path,
			"unresolved": missing,
		})
	}

	return NewBoard(ds, binding)
}

// Board is an opened dataset with its role binding.
type Board struct {
	dataset *model.Dataset
	binding model.RoleBinding
	agg     *aggregate.Aggregator
}

// NewBoard wraps an already loaded dataset.
func NewBoard(ds *model.Dataset, binding model.RoleBinding) *Board {
	return &Board{dataset: ds, binding: binding, agg: aggregate.New(ds, binding)}
}

// Dataset returns the board's dataset.
func (b *Board) Dataset() *model.Dataset {
	return b.dataset
}

// Binding returns the resolved roles.
func (b *Board) Binding() model.RoleBinding {
	return b.binding
}

// Aggregator returns the board's aggregator.
func (b *Board) Aggregator() *aggregate.Aggregator {
	return b.agg
}

// Window is a half-open row range [From, To). The zero value means every row.
type Window struct {
	From int
	To   int
}

// Clamp bounds the window to n rows.
func (w Window) Clamp(n int) Window {
	if w.From == 0 && w.To == 0 {
		return Window{From: 0, To: n}
	}
	from, to := w.From, w.To
	if to <= 0 || to > n {
		to = n
	}
	if from < 0 {
		from = 0
	}
	if from > to {
		from = to
	}
	return Window{From: from, To: to}
}

// Len returns the number of rows in the window.
func (w Window) Len() int {
	return w.To - w.From
}

func (w Window) String() string {
	return fmt.Sprintf("[%d, %d)", w.From, w.To)
}

// Tile is one headline metric.
type Tile struct {
	Label  string
	Role   model.Role
	Column string
	Value  model.MetricResult
}

// Alerts counts raised flags over the whole dataset.
type Alerts struct {
	Irrigation int
	HeatStress int
}

// Snapshot is everything the dashboard displays for one window.
type Snapshot struct {
	Correlation  *model.CorrelationMatrix
	Source       string
	Trend        []aggregate.Point
	Tiles        []Tile
	Unresolved   []model.Role
	Gauge        aggregate.Gauge
	Window       Window
	Alerts       Alerts
	Rows         int
	Quality      float64
	TrendRole    model.Role
	Insufficient bool
}

var tileLabels = []struct {
	label string
	role  model.Role
}{
	{"Soil Moisture", model.RoleMoisture},
	{"Temperature", model.RoleTemperature},
	{"Humidity", model.RoleHumidity},
	{"Yield", model.RoleYield},
	{"Status", model.RoleStatus},
}

// Snapshot computes the dashboard for window. Metrics, alerts, gauge and
// correlation cover the whole dataset; the trend covers the window only.
func (b *Board) Snapshot(window Window) Snapshot {
	window = window.Clamp(b.dataset.Len())

	snap := Snapshot{
		Source:     b.dataset.Source(),
		Rows:       b.dataset.Len(),
		Window:     window,
		Quality:    b.dataset.Completeness(),
		Unresolved: b.binding.Unresolved(),
		TrendRole:  model.RoleMoisture,
		Alerts: Alerts{
			Irrigation: b.agg.CountRole(model.RoleIrrigation),
			HeatStress: b.agg.CountRole(model.RoleHeatStress),
		},
		Gauge: b.agg.Gauge(model.RoleMoisture),
	}

	for _, t := range tileLabels {
		col, _ := b.binding.Column(t.role)
		snap.Tiles = append(snap.Tiles, Tile{
			Label:  t.label,
			Role:   t.role,
			Column: col,
			Value:  b.agg.LastValue(t.role, aggregate.FormatterFor(t.role)),
		})
	}

	windowed := aggregate.New(b.dataset.Slice(window.From, window.To), b.binding)
	if points, ok := windowed.Series(model.RoleMoisture); ok {
		for i := range points {
			points[i].Index += window.From
		}
		snap.Trend = points
	}

	corr, err := b.agg.Correlation()
	switch {
	case err == nil:
		snap.Correlation = corr
	case errors.Is(err, common.ErrInsufficientData):
		snap.Insufficient = true
	default:
		common.LogError(err, "Correlation failed", common.Fields{"source": snap.Source})
		snap.Insufficient = true
	}

	return snap
}
