package dashboard

import (
	"fmt"
	"testing"

	"github.com/Veraticus/sprout/internal/aggregate"
	"github.com/Veraticus/sprout/internal/common"
	"github.com/Veraticus/sprout/internal/model"
	"github.com/Veraticus/sprout/internal/resolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLocator struct {
	err   error
	path  string
	calls int
}

func (f *fakeLocator) Locate() (string, error) {
	f.calls++
	return f.path, f.err
}

type fakeLoader struct {
	datasets map[string]*model.Dataset
	loads    []string
	reloads  []string
}

func (f *fakeLoader) Load(path string) (*model.Dataset, error) {
	f.loads = append(f.loads, path)
	return f.lookup(path)
}

func (f *fakeLoader) Reload(path string) (*model.Dataset, error) {
	f.reloads = append(f.reloads, path)
	return f.lookup(path)
}

func (f *fakeLoader) lookup(path string) (*model.Dataset, error) {
	ds, ok := f.datasets[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", common.ErrUnreadable, path)
	}
	return ds, nil
}

func sensorDataset(t *testing.T) *model.Dataset {
	t.Helper()
	n := model.Number
	ds, err := model.NewDataset("data/processed/dashboard_ready.csv",
		[]string{"Soil Moisture (%)", "Temp C", "Humidity", "Status", "Irrigation_Needed", "Heat_Stress"},
		[][]model.Value{
			{n(20), n(30), n(70), model.String("Dry"), model.Bool(true), model.Bool(false)},
			{n(35), n(33), n(65), model.String("Ok"), model.Bool(false), model.Bool(true)},
			{n(50), n(31), n(60), model.String("Ok"), model.Bool(false), model.Bool(false)},
			{model.Missing(), n(35), n(55), model.String("Hot"), model.Bool(true), model.Bool(true)},
			{n(65), model.Missing(), n(50), model.Missing(), model.Bool(false), model.Missing()},
		})
	require.NoError(t, err)
	return ds
}

func TestServiceOpen(t *testing.T) {
	ds := sensorDataset(t)
	locator := &fakeLocator{path: ds.Source()}
	loader := &fakeLoader{datasets: map[string]*model.Dataset{ds.Source(): ds}}
	svc := NewService(locator, loader, nil)

	board, err := svc.Open("")
	require.NoError(t, err)
	assert.Equal(t, 1, locator.calls)
	assert.Same(t, ds, board.Dataset())

	col, ok := board.Binding().Column(model.RoleMoisture)
	assert.True(t, ok)
	assert.Equal(t, "Soil Moisture (%)", col)

	// An explicit path skips the locator.
	_, err = svc.Open(ds.Source())
	require.NoError(t, err)
	assert.Equal(t, 1, locator.calls)

	_, err = svc.Reload(ds.Source())
	require.NoError(t, err)
	assert.Equal(t, []string{ds.Source()}, loader.reloads)
}

func TestServiceOpenErrors(t *testing.T) {
	svc := NewService(&fakeLocator{err: common.ErrSourceNotFound}, &fakeLoader{}, nil)
	_, err := svc.Open("")
	assert.ErrorIs(t, err, common.ErrSourceNotFound)

	_, err = svc.Open("missing.csv")
	assert.ErrorIs(t, err, common.ErrUnreadable)
}

func TestServiceKeywordOverrides(t *testing.T) {
	ds := sensorDataset(t)
	loader := &fakeLoader{datasets: map[string]*model.Dataset{ds.Source(): ds}}
	table := resolve.DefaultTable().Merge(map[model.Role][]string{model.RoleYield: {"humidity"}})

	board, err := NewService(&fakeLocator{}, loader, table).Open(ds.Source())
	require.NoError(t, err)

	col, ok := board.Binding().Column(model.RoleYield)
	assert.True(t, ok)
	assert.Equal(t, "Humidity", col)
}

func TestWindowClamp(t *testing.T) {
	tests := []struct {
		name string
		in   Window
		want Window
		n    int
	}{
		{name: "zero means all", in: Window{}, n: 10, want: Window{From: 0, To: 10}},
		{name: "inside", in: Window{From: 2, To: 5}, n: 10, want: Window{From: 2, To: 5}},
		{name: "open end", in: Window{From: 4}, n: 10, want: Window{From: 4, To: 10}},
		{name: "end past rows", in: Window{From: 8, To: 50}, n: 10, want: Window{From: 8, To: 10}},
		{name: "negative start", in: Window{From: -3, To: 2}, n: 10, want: Window{From: 0, To: 2}},
		{name: "start past end", in: Window{From: 20, To: 30}, n: 10, want: Window{From: 10, To: 10}},
		{name: "empty dataset", in: Window{From: 1, To: 3}, n: 0, want: Window{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Clamp(tt.n)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got.Len(), 0)
		})
	}

	assert.Equal(t, "[2, 5)", Window{From: 2, To: 5}.String())
}

func TestSnapshot(t *testing.T) {
	ds := sensorDataset(t)
	board := NewBoard(ds, resolve.Resolve(ds))

	snap := board.Snapshot(Window{From: 1, To: 4})

	assert.Equal(t, ds.Source(), snap.Source)
	assert.Equal(t, 5, snap.Rows)
	assert.Equal(t, Window{From: 1, To: 4}, snap.Window)
	assert.Equal(t, Alerts{Irrigation: 2, HeatStress: 2}, snap.Alerts)
	assert.Equal(t, []model.Role{model.RoleYield}, snap.Unresolved)

	values := map[string]string{}
	for _, tile := range snap.Tiles {
		values[tile.Label] = tile.Value.String()
	}
	assert.Equal(t, map[string]string{
		"Soil Moisture": "65.0%",
		"Temperature":   "35.0°C",
		"Humidity":      "50.0%",
		"Yield":         model.NotAvailable,
		"Status":        "Hot",
	}, values)

	// The gauge tracks the latest reading regardless of the window.
	assert.Equal(t, aggregate.Gauge{Value: 65, Band: aggregate.BandOptimal, Available: true}, snap.Gauge)

	require.Len(t, snap.Trend, 3)
	assert.Equal(t, 1, snap.Trend[0].Index)
	assert.InDelta(t, 35.0, snap.Trend[0].Value, 0)
	assert.True(t, snap.Trend[2].Missing)
	assert.Equal(t, 3, snap.Trend[2].Index)

	require.NotNil(t, snap.Correlation)
	assert.False(t, snap.Insufficient)
	assert.Equal(t, []string{"Soil Moisture (%)", "Temp C", "Humidity"}, snap.Correlation.Columns())

	assert.InDelta(t, 26.0/30.0*100, snap.Quality, 1e-9)
}

func TestSnapshotInsufficientCorrelation(t *testing.T) {
	ds, err := model.NewDataset("x.csv", []string{"Moisture", "Status"}, [][]model.Value{
		{model.Number(10), model.String("Ok")},
	})
	require.NoError(t, err)

	snap := NewBoard(ds, resolve.Resolve(ds)).Snapshot(Window{})
	assert.True(t, snap.Insufficient)
	assert.Nil(t, snap.Correlation)
	assert.Equal(t, Window{From: 0, To: 1}, snap.Window)
}

func TestSnapshotWithoutMoisture(t *testing.T) {
	ds, err := model.NewDataset("x.csv", []string{"Yield", "Temp"}, [][]model.Value{
		{model.Number(1), model.Number(2)},
	})
	require.NoError(t, err)

	snap := NewBoard(ds, resolve.Resolve(ds)).Snapshot(Window{})
	assert.Empty(t, snap.Trend)
	assert.False(t, snap.Gauge.Available)
}
