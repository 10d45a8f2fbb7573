package model

// Coefficient is one correlation cell. Defined is false for pairs that have no
// meaningful correlation (zero variance or too few shared observations).
type Coefficient struct {
	Value   float64
	Defined bool
}

// CorrelationMatrix is a square, symmetric Pearson matrix over numeric columns
// with a unit diagonal.
type CorrelationMatrix struct {
	index   map[string]int
	columns []string
	cells   [][]Coefficient
}

// NewCorrelationMatrix allocates an identity matrix over columns. Off-diagonal
// cells start undefined.
func NewCorrelationMatrix(columns []string) *CorrelationMatrix {
	m := &CorrelationMatrix{
		columns: append([]string(nil), columns...),
		index:   make(map[string]int, len(columns)),
		cells:   make([][]Coefficient, len(columns)),
	}
	for i, name := range columns {
		m.index[name] = i
		m.cells[i] = make([]Coefficient, len(columns))
		m.cells[i][i] = Coefficient{Value: 1, Defined: true}
	}
	return m
}

// Set stores r at (i, j) and (j, i). Diagonal cells are fixed at 1.
func (m *CorrelationMatrix) Set(i, j int, r float64) {
	if i == j {
		return
	}
	c := Coefficient{Value: r, Defined: true}
	m.cells[i][j] = c
	m.cells[j][i] = c
}

// Columns returns the matrix labels.
func (m *CorrelationMatrix) Columns() []string {
	return append([]string(nil), m.columns...)
}

// Size returns the number of rows (and columns).
func (m *CorrelationMatrix) Size() int {
	return len(m.columns)
}

// At returns the coefficient at (i, j); false means undefined or out of range.
func (m *CorrelationMatrix) At(i, j int) (float64, bool) {
	if i < 0 || j < 0 || i >= len(m.cells) || j >= len(m.cells) {
		return 0, false
	}
	c := m.cells[i][j]
	return c.Value, c.Defined
}

// Lookup returns the coefficient between two named columns.
func (m *CorrelationMatrix) Lookup(a, b string) (float64, bool) {
	i, ok := m.index[a]
	if !ok {
		return 0, false
	}
	j, ok := m.index[b]
	if !ok {
		return 0, false
	}
	return m.At(i, j)
}

// Rows returns the matrix with undefined cells as nil, for serialization.
func (m *CorrelationMatrix) Rows() [][]*float64 {
	out := make([][]*float64, len(m.cells))
	for i, row := range m.cells {
		out[i] = make([]*float64, len(row))
		for j, c := range row {
			if c.Defined {
				v := c.Value
				out[i][j] = &v
			}
		}
	}
	return out
}
