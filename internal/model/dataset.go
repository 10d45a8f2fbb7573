package model

import (
	"fmt"
)

// Record is one row keyed by column name.
type Record map[string]Value

// Dataset is an immutable table of sensor readings. Every row holds exactly one
// value per column, in column order.
type Dataset struct {
	index   map[string]int
	source  string
	columns []string
	rows    [][]Value
}

// NewDataset builds a dataset from columns and rows. Column names must be
// unique and every row must have len(columns) values.
func NewDataset(source string, columns []string, rows [][]Value) (*Dataset, error) {
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		index[name] = i
	}

	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d has %d values, want %d", i, len(row), len(columns))
		}
	}

	cols := make([]string, len(columns))
	copy(cols, columns)

	return &Dataset{
		source:  source,
		columns: cols,
		index:   index,
		rows:    rows,
	}, nil
}

// Source returns the path the dataset was loaded from.
func (d *Dataset) Source() string {
	return d.source
}

// Columns returns the column names in file order.
func (d *Dataset) Columns() []string {
	out := make([]string, len(d.columns))
	copy(out, d.columns)
	return out
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.rows)
}

// Width returns the number of columns.
func (d *Dataset) Width() int {
	return len(d.columns)
}

// Has reports whether the dataset has a column with exactly this name.
func (d *Dataset) Has(name string) bool {
	_, ok := d.index[name]
	return ok
}

// Column returns a copy of a column's values.
func (d *Dataset) Column(name string) ([]Value, bool) {
	idx, ok := d.index[name]
	if !ok {
		return nil, false
	}

	out := make([]Value, len(d.rows))
	for i, row := range d.rows {
		out[i] = row[idx]
	}
	return out, true
}

// At returns the value at row for the named column.
func (d *Dataset) At(row int, name string) (Value, bool) {
	idx, ok := d.index[name]
	if !ok || row < 0 || row >= len(d.rows) {
		return Value{}, false
	}
	return d.rows[row][idx], true
}

// Record returns a row as a column-keyed map.
func (d *Dataset) Record(row int) (Record, bool) {
	if row < 0 || row >= len(d.rows) {
		return nil, false
	}

	rec := make(Record, len(d.columns))
	for i, name := range d.columns {
		rec[name] = d.rows[row][i]
	}
	return rec, true
}

// Slice returns a read-only view of rows [from, to). Bounds are clamped.
func (d *Dataset) Slice(from, to int) *Dataset {
	from, to = clampRange(from, to, len(d.rows))
	return &Dataset{
		source:  d.source,
		columns: d.columns,
		index:   d.index,
		rows:    d.rows[from:to:to],
	}
}

// NumericColumns returns, in file order, the columns whose non-missing values
// are all numbers and that hold at least one number.
func (d *Dataset) NumericColumns() []string {
	var out []string
	for i, name := range d.columns {
		numbers := 0
		uniform := true
		for _, row := range d.rows {
			switch row[i].Kind() {
			case KindNumber:
				numbers++
			case KindMissing:
			default:
				uniform = false
			}
			if !uniform {
				break
			}
		}
		if uniform && numbers > 0 {
			out = append(out, name)
		}
	}
	return out
}

// Completeness returns the percentage of non-missing cells, 0 for an empty
// dataset.
func (d *Dataset) Completeness() float64 {
	total := len(d.rows) * len(d.columns)
	if total == 0 {
		return 0
	}

	present := 0
	for _, row := range d.rows {
		for _, v := range row {
			if !v.IsMissing() {
				present++
			}
		}
	}
	return float64(present) * 100 / float64(total)
}

func clampRange(from, to, n int) (int, int) {
	if from < 0 {
		from = 0
	}
	if to > n {
		to = n
	}
	if to < 0 {
		to = 0
	}
	if from > to {
		from = to
	}
	return from, to
}
