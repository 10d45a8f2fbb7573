package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricResult(t *testing.T) {
	m := Available("45.0%")
	v, ok := m.Get()
	assert.True(t, ok)
	assert.Equal(t, "45.0%", v)
	assert.Equal(t, "45.0%", m.String())

	u := Unavailable()
	assert.False(t, u.IsAvailable())
	assert.Equal(t, NotAvailable, u.String())
	assert.Equal(t, "-", u.Or("-"))
}

func TestMetricResultJSON(t *testing.T) {
	out, err := json.Marshal(map[string]MetricResult{
		"a": Available("21.0°C"),
		"b": Unavailable(),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"21.0°C","b":"N/A"}`, string(out))
}
