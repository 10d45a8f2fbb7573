package model

// NotAvailable is how an unavailable metric renders.
const NotAvailable = "N/A"

// MetricResult is either a display-formatted value or unavailable.
type MetricResult struct {
	value string
	ok    bool
}

// Available wraps a formatted metric value.
func Available(formatted string) MetricResult {
	return MetricResult{value: formatted, ok: true}
}

// Unavailable returns the metric sentinel for missing data.
func Unavailable() MetricResult {
	return MetricResult{}
}

// Get returns the formatted value and whether it is available.
func (m MetricResult) Get() (string, bool) {
	return m.value, m.ok
}

// IsAvailable reports whether the metric holds a value.
func (m MetricResult) IsAvailable() bool {
	return m.ok
}

// Or returns the value, or fallback when unavailable.
func (m MetricResult) Or(fallback string) string {
	if !m.ok {
		return fallback
	}
	return m.value
}

// String renders the metric, using NotAvailable for the sentinel.
func (m MetricResult) String() string {
	return m.Or(NotAvailable)
}

// MarshalText encodes unavailable metrics as NotAvailable.
func (m MetricResult) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
