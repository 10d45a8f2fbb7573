package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelationMatrix(t *testing.T) {
	m := NewCorrelationMatrix([]string{"a", "b", "c"})
	require.Equal(t, 3, m.Size())

	for i := range 3 {
		v, ok := m.At(i, i)
		assert.True(t, ok)
		assert.InDelta(t, 1.0, v, 0)
	}

	_, ok := m.At(0, 1)
	assert.False(t, ok, "off-diagonal cells start undefined")

	m.Set(0, 2, -0.5)
	m.Set(1, 1, 0.2)

	v, ok := m.Lookup("c", "a")
	assert.True(t, ok)
	assert.InDelta(t, -0.5, v, 0)

	v, _ = m.At(1, 1)
	assert.InDelta(t, 1.0, v, 0, "diagonal is fixed")

	_, ok = m.Lookup("a", "missing")
	assert.False(t, ok)
	_, ok = m.At(5, 0)
	assert.False(t, ok)

	rows := m.Rows()
	require.Len(t, rows, 3)
	assert.Nil(t, rows[0][1])
	require.NotNil(t, rows[2][0])
	assert.InDelta(t, -0.5, *rows[2][0], 0)
}
