package aggregate

import (
	"strconv"

	"github.com/Veraticus/sprout/internal/model"
)

// Formatter renders a non-missing value for display.
type Formatter func(model.Value) string

// Fixed formats numbers with the given decimals followed by suffix. Values
// that are not numbers fall back to their text.
func Fixed(decimals int, suffix string) Formatter {
	return func(v model.Value) string {
		f, ok := v.Float()
		if !ok {
			return v.Text()
		}
		return strconv.FormatFloat(f, 'f', decimals, 64) + suffix
	}
}

// Text renders the value as-is.
func Text() Formatter {
	return func(v model.Value) string {
		return v.Text()
	}
}

// FormatterFor returns the dashboard's display format for role.
func FormatterFor(role model.Role) Formatter {
	switch role {
	case model.RoleMoisture, model.RoleHumidity:
		return Fixed(1, "%")
	case model.RoleTemperature:
		return Fixed(1, "°C")
	case model.RoleYield:
		return Fixed(2, " t/ha")
	default:
		return Text()
	}
}
